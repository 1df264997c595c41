package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/IMANOL01277/BollitoPy/internal/dto"
	"github.com/IMANOL01277/BollitoPy/internal/model"
	"github.com/IMANOL01277/BollitoPy/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	DescripcionStockInicial  = "Registro inicial de stock"
	DescripcionActualizacion = "Actualización de stock"
)

// ProductoService defines the catalog operations that touch stock. Every
// stock change is paired with a ledger entry in the same transaction.
type ProductoService interface {
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoDetalleResponse, error)
	ListarPorNombre(ctx context.Context) ([]model.Producto, error)
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoDetalleResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoDetalleResponse, error)
	// Eliminar deletes the product together with its whole ledger history.
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo        repository.ProductoRepository
	categorias  repository.CategoriaRepository
	proveedores repository.ProveedorRepository
	movimientos MovimientoService
}

func NewProductoService(
	repo repository.ProductoRepository,
	categorias repository.CategoriaRepository,
	proveedores repository.ProveedorRepository,
	movimientos MovimientoService,
) ProductoService {
	return &productoService{
		repo:        repo,
		categorias:  categorias,
		proveedores: proveedores,
		movimientos: movimientos,
	}
}

func productoToDetalle(p *model.Producto) *dto.ProductoDetalleResponse {
	resp := &dto.ProductoDetalleResponse{
		IDProducto:  p.ID.String(),
		Nombre:      p.Nombre,
		IDCategoria: p.CategoriaID.String(),
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Stock:       p.Stock,
	}
	if p.ProveedorID != nil {
		s := p.ProveedorID.String()
		resp.IDProveedor = &s
	}
	return resp
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, len(productos))
	for i, p := range productos {
		resp[i] = dto.ProductoResponse{
			IDProducto:  p.ID.String(),
			Nombre:      p.Nombre,
			Descripcion: p.Descripcion,
			Precio:      p.Precio,
			Stock:       p.Stock,
		}
		if p.Categoria != nil {
			resp[i].Categoria = &p.Categoria.Nombre
		}
		if p.Proveedor != nil {
			resp[i].Proveedor = &p.Proveedor.Nombre
		}
	}
	return resp, nil
}

func (s *productoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoDetalleResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrProductoNoEncontrado)
	}
	return productoToDetalle(p), nil
}

func (s *productoService) ListarPorNombre(ctx context.Context) ([]model.Producto, error) {
	return s.repo.ListByNombre(ctx)
}

// resolverReferencias checks the category and optional supplier exist.
func (s *productoService) resolverReferencias(ctx context.Context, req dto.CrearProductoRequest) (uuid.UUID, *uuid.UUID, error) {
	catID, err := uuid.Parse(req.IDCategoria)
	if err != nil {
		return uuid.Nil, nil, validacion("id_categoria inválido")
	}
	if _, err := s.categorias.ObtenerPorID(ctx, catID); err != nil {
		return uuid.Nil, nil, notFound(err, ErrCategoriaNoEncontrada)
	}
	if strings.TrimSpace(req.IDProveedor) == "" {
		return catID, nil, nil
	}
	provID, err := uuid.Parse(req.IDProveedor)
	if err != nil {
		return uuid.Nil, nil, validacion("id_proveedor inválido")
	}
	if _, err := s.proveedores.FindByID(ctx, provID); err != nil {
		return uuid.Nil, nil, notFound(err, ErrProveedorNoEncontrado)
	}
	return catID, &provID, nil
}

func validarProducto(req dto.CrearProductoRequest) error {
	if strings.TrimSpace(req.Nombre) == "" {
		return validacion("El nombre no puede estar vacío")
	}
	if req.Precio.IsNegative() {
		return validacion("El precio no puede ser negativo")
	}
	if req.Stock < 0 {
		return validacion("El stock no puede ser negativo")
	}
	return nil
}

// Crear inserts the product and, when the initial stock is positive, one
// inflow entry for that stock at the listed price.
func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoDetalleResponse, error) {
	if err := validarProducto(req); err != nil {
		return nil, err
	}
	catID, provID, err := s.resolverReferencias(ctx, req)
	if err != nil {
		return nil, err
	}

	p := &model.Producto{
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: strings.TrimSpace(req.Descripcion),
		Precio:      req.Precio,
		Stock:       req.Stock,
		CategoriaID: catID,
		ProveedorID: provID,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, p); err != nil {
			return fmt.Errorf("crear producto: %w", err)
		}
		if p.Stock > 0 {
			if _, err := s.movimientos.RegistrarTx(tx, p.ID, model.MovimientoEntrada, p.Stock, p.Precio, DescripcionStockInicial); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().Str("producto_id", p.ID.String()).Int("stock", p.Stock).Msg("producto creado")
	return productoToDetalle(p), nil
}

// Actualizar overwrites the product and records the stock delta, computed
// against the value read under lock before the write.
func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoDetalleResponse, error) {
	if err := validarProducto(req); err != nil {
		return nil, err
	}
	catID, provID, err := s.resolverReferencias(ctx, req)
	if err != nil {
		return nil, err
	}

	var actualizado *model.Producto
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		anterior, err := s.repo.FindByIDForUpdateTx(tx, id)
		if err != nil {
			return notFound(err, ErrProductoNoEncontrado)
		}
		stockAnterior := anterior.Stock
		precioAnterior := anterior.Precio

		actualizado = &model.Producto{
			ID:          id,
			Nombre:      strings.TrimSpace(req.Nombre),
			Descripcion: strings.TrimSpace(req.Descripcion),
			Precio:      req.Precio,
			Stock:       req.Stock,
			CategoriaID: catID,
			ProveedorID: provID,
			CreatedAt:   anterior.CreatedAt,
		}
		if err := s.repo.UpdateTx(tx, actualizado); err != nil {
			return fmt.Errorf("actualizar producto: %w", err)
		}

		delta := req.Stock - stockAnterior
		if delta == 0 {
			return nil
		}
		tipo := model.MovimientoEntrada
		if delta < 0 {
			tipo = model.MovimientoSalida
			delta = -delta
		}
		// A zero price would make the entry's total meaningless
		precio := req.Precio
		if !precio.IsPositive() {
			precio = precioAnterior
		}
		_, err = s.movimientos.RegistrarTx(tx, id, tipo, delta, precio, DescripcionActualizacion)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return productoToDetalle(actualizado), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.repo.FindByIDForUpdateTx(tx, id); err != nil {
			return notFound(err, ErrProductoNoEncontrado)
		}
		if err := s.movimientos.EliminarPorProductoTx(tx, id); err != nil {
			return fmt.Errorf("eliminar movimientos: %w", err)
		}
		n, err := s.repo.DeleteTx(tx, id)
		if err != nil {
			return fmt.Errorf("eliminar producto: %w", err)
		}
		if n == 0 {
			return ErrProductoNoEncontrado
		}
		log.Info().Str("producto_id", id.String()).Msg("producto eliminado junto con su historial")
		return nil
	})
}
