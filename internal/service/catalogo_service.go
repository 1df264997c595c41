package service

import (
	"context"
	"strings"

	"github.com/IMANOL01277/BollitoPy/internal/dto"
	"github.com/IMANOL01277/BollitoPy/internal/model"
	"github.com/IMANOL01277/BollitoPy/internal/repository"

	"github.com/google/uuid"
)

// CatalogoService covers the reference data products point to: categories,
// suppliers and field sellers.
type CatalogoService interface {
	CrearCategoria(ctx context.Context, req dto.CrearCategoriaRequest) (*model.Categoria, error)
	ListarCategorias(ctx context.Context) ([]model.Categoria, error)
	OpcionesCategoria(ctx context.Context) ([]dto.OpcionCategoria, error)

	CrearProveedor(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error)
	ListarProveedores(ctx context.Context) ([]model.Proveedor, error)
	OpcionesProveedor(ctx context.Context) ([]dto.OpcionProveedor, error)

	CrearVendedor(ctx context.Context, req dto.CrearVendedorRequest) (*model.VendedorAmbulante, error)
	ListarVendedores(ctx context.Context) ([]model.VendedorAmbulante, error)
	EliminarVendedor(ctx context.Context, id uuid.UUID) error
}

type catalogoService struct {
	categorias  repository.CategoriaRepository
	proveedores repository.ProveedorRepository
	vendedores  repository.VendedorRepository
}

func NewCatalogoService(
	categorias repository.CategoriaRepository,
	proveedores repository.ProveedorRepository,
	vendedores repository.VendedorRepository,
) CatalogoService {
	return &catalogoService{categorias: categorias, proveedores: proveedores, vendedores: vendedores}
}

const mensajeNombreVacio = "El nombre no puede estar vacío"

func (s *catalogoService) CrearCategoria(ctx context.Context, req dto.CrearCategoriaRequest) (*model.Categoria, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, validacion(mensajeNombreVacio)
	}
	c := &model.Categoria{Nombre: nombre, Descripcion: strings.TrimSpace(req.Descripcion)}
	if err := s.categorias.Crear(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *catalogoService) ListarCategorias(ctx context.Context) ([]model.Categoria, error) {
	return s.categorias.Listar(ctx)
}

func (s *catalogoService) OpcionesCategoria(ctx context.Context) ([]dto.OpcionCategoria, error) {
	list, err := s.categorias.ListarPorNombre(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OpcionCategoria, 0, len(list))
	for _, c := range list {
		out = append(out, dto.OpcionCategoria{IDCategoria: c.ID.String(), Nombre: c.Nombre})
	}
	return out, nil
}

func (s *catalogoService) CrearProveedor(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, validacion(mensajeNombreVacio)
	}
	p := &model.Proveedor{
		Nombre:    nombre,
		Contacto:  strings.TrimSpace(req.Contacto),
		Telefono:  strings.TrimSpace(req.Telefono),
		Correo:    strings.TrimSpace(req.Correo),
		Direccion: strings.TrimSpace(req.Direccion),
	}
	if err := s.proveedores.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *catalogoService) ListarProveedores(ctx context.Context) ([]model.Proveedor, error) {
	return s.proveedores.List(ctx)
}

func (s *catalogoService) OpcionesProveedor(ctx context.Context) ([]dto.OpcionProveedor, error) {
	list, err := s.proveedores.ListByNombre(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OpcionProveedor, 0, len(list))
	for _, p := range list {
		out = append(out, dto.OpcionProveedor{IDProveedor: p.ID.String(), Nombre: p.Nombre})
	}
	return out, nil
}

func (s *catalogoService) CrearVendedor(ctx context.Context, req dto.CrearVendedorRequest) (*model.VendedorAmbulante, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, validacion(mensajeNombreVacio)
	}
	v := &model.VendedorAmbulante{
		Nombre:    nombre,
		Telefono:  strings.TrimSpace(req.Telefono),
		Direccion: strings.TrimSpace(req.Direccion),
	}
	if err := s.vendedores.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *catalogoService) ListarVendedores(ctx context.Context) ([]model.VendedorAmbulante, error) {
	return s.vendedores.List(ctx)
}

func (s *catalogoService) EliminarVendedor(ctx context.Context, id uuid.UUID) error {
	n, err := s.vendedores.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrVendedorNoEncontrado
	}
	return nil
}
