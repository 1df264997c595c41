package handler_test

import (
	"context"
	"time"

	"github.com/IMANOL01277/BollitoPy/internal/dto"
	"github.com/IMANOL01277/BollitoPy/internal/model"
	"github.com/IMANOL01277/BollitoPy/internal/service"
	"github.com/IMANOL01277/BollitoPy/internal/sesion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Services ─────────────────────────────────────────────────────────────────

type fakeProductos struct {
	productos map[uuid.UUID]*dto.ProductoDetalleResponse
	creados   []dto.CrearProductoRequest
}

func newFakeProductos() *fakeProductos {
	return &fakeProductos{productos: make(map[uuid.UUID]*dto.ProductoDetalleResponse)}
}

func (f *fakeProductos) Listar(_ context.Context) ([]dto.ProductoResponse, error) {
	var out []dto.ProductoResponse
	for _, p := range f.productos {
		out = append(out, dto.ProductoResponse{IDProducto: p.IDProducto, Nombre: p.Nombre, Precio: p.Precio, Stock: p.Stock})
	}
	return out, nil
}

func (f *fakeProductos) Obtener(_ context.Context, id uuid.UUID) (*dto.ProductoDetalleResponse, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, service.ErrProductoNoEncontrado
	}
	return p, nil
}

func (f *fakeProductos) ListarPorNombre(_ context.Context) ([]model.Producto, error) {
	return nil, nil
}

func (f *fakeProductos) Crear(_ context.Context, req dto.CrearProductoRequest) (*dto.ProductoDetalleResponse, error) {
	f.creados = append(f.creados, req)
	id := uuid.New()
	p := &dto.ProductoDetalleResponse{
		IDProducto:  id.String(),
		Nombre:      req.Nombre,
		IDCategoria: req.IDCategoria,
		Precio:      req.Precio,
		Stock:       req.Stock,
	}
	f.productos[id] = p
	return p, nil
}

func (f *fakeProductos) Actualizar(_ context.Context, id uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoDetalleResponse, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, service.ErrProductoNoEncontrado
	}
	p.Nombre, p.Precio, p.Stock = req.Nombre, req.Precio, req.Stock
	return p, nil
}

func (f *fakeProductos) Eliminar(_ context.Context, id uuid.UUID) error {
	if _, ok := f.productos[id]; !ok {
		return service.ErrProductoNoEncontrado
	}
	delete(f.productos, id)
	return nil
}

type fakeCatalogo struct {
	categorias []model.Categoria
}

func (f *fakeCatalogo) CrearCategoria(_ context.Context, req dto.CrearCategoriaRequest) (*model.Categoria, error) {
	if req.Nombre == "" {
		return nil, &service.ErrorValidacion{Mensaje: "El nombre no puede estar vacío"}
	}
	c := model.Categoria{ID: uuid.New(), Nombre: req.Nombre}
	f.categorias = append(f.categorias, c)
	return &c, nil
}

func (f *fakeCatalogo) ListarCategorias(_ context.Context) ([]model.Categoria, error) {
	return f.categorias, nil
}

func (f *fakeCatalogo) OpcionesCategoria(_ context.Context) ([]dto.OpcionCategoria, error) {
	var out []dto.OpcionCategoria
	for _, c := range f.categorias {
		out = append(out, dto.OpcionCategoria{IDCategoria: c.ID.String(), Nombre: c.Nombre})
	}
	return out, nil
}

func (f *fakeCatalogo) CrearProveedor(_ context.Context, _ dto.CrearProveedorRequest) (*model.Proveedor, error) {
	return &model.Proveedor{}, nil
}

func (f *fakeCatalogo) ListarProveedores(_ context.Context) ([]model.Proveedor, error) {
	return nil, nil
}

func (f *fakeCatalogo) OpcionesProveedor(_ context.Context) ([]dto.OpcionProveedor, error) {
	return []dto.OpcionProveedor{}, nil
}

func (f *fakeCatalogo) CrearVendedor(_ context.Context, _ dto.CrearVendedorRequest) (*model.VendedorAmbulante, error) {
	return &model.VendedorAmbulante{}, nil
}

func (f *fakeCatalogo) ListarVendedores(_ context.Context) ([]model.VendedorAmbulante, error) {
	return nil, nil
}

func (f *fakeCatalogo) EliminarVendedor(_ context.Context, _ uuid.UUID) error {
	return service.ErrVendedorNoEncontrado
}

type fakeMovimientos struct{}

func (fakeMovimientos) RegistrarTx(_ *gorm.DB, _ uuid.UUID, _ string, _ int, _ decimal.Decimal, _ string) (*model.MovimientoInventario, error) {
	return nil, nil
}

func (fakeMovimientos) EliminarPorProductoTx(_ *gorm.DB, _ uuid.UUID) error { return nil }

func (fakeMovimientos) Resumen(_ context.Context) (*dto.ResumenResponse, error) {
	hasta := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	return &dto.ResumenResponse{
		Entrada:  decimal.NewFromInt(100),
		Salida:   decimal.NewFromInt(250),
		Ganancia: decimal.NewFromInt(150),
		Desde:    hasta.AddDate(0, 0, -30),
		Hasta:    hasta,
	}, nil
}

func (fakeMovimientos) Listar(_ context.Context) ([]dto.MovimientoResponse, error) {
	return []dto.MovimientoResponse{{
		IDMovimiento:    uuid.NewString(),
		Tipo:            model.MovimientoSalida,
		Cantidad:        5,
		PrecioUnitario:  decimal.NewFromInt(50),
		Total:           decimal.NewFromInt(250),
		FechaMovimiento: "2024-03-30 10:00:00",
		Descripcion:     "Domicilio entregado por Luis",
		Producto:        "Bollo limpio",
	}}, nil
}

func (fakeMovimientos) Conciliar(_ context.Context) ([]dto.DesviacionStock, error) {
	return []dto.DesviacionStock{}, nil
}

type fakeDomicilios struct{}

func (fakeDomicilios) Crear(_ context.Context, _ dto.CrearDomicilioRequest) (*model.Domicilio, error) {
	return &model.Domicilio{}, nil
}
func (fakeDomicilios) Listar(_ context.Context) ([]model.Domicilio, error) { return nil, nil }
func (fakeDomicilios) Eliminar(_ context.Context, _ uuid.UUID) error       { return nil }

type fakeAuth struct {
	usuarios map[string]*sesion.Identidad // correo → identidad, contraseña fija
}

const claveValida = "Secreta#1"

func (f *fakeAuth) Registrar(_ context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	if req.Contrasena != req.Confirmar {
		return nil, &service.ErrorValidacion{Mensaje: service.MensajeNoCoinciden}
	}
	return &dto.UsuarioResponse{Nombre: req.Nombre, Correo: req.Correo}, nil
}

func (f *fakeAuth) Autenticar(_ context.Context, correo, contrasena string) (*sesion.Identidad, error) {
	id, ok := f.usuarios[correo]
	if !ok || contrasena != claveValida {
		return nil, service.ErrCredenciales
	}
	return id, nil
}

func (f *fakeAuth) ListarUsuarios(_ context.Context) ([]dto.UsuarioResponse, error) {
	var out []dto.UsuarioResponse
	for _, u := range f.usuarios {
		out = append(out, dto.UsuarioResponse{IDUsuario: u.UsuarioID.String(), Nombre: u.Nombre, Correo: u.Correo, Rol: u.Rol})
	}
	return out, nil
}

func (f *fakeAuth) CrearUsuario(_ context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	return &dto.UsuarioResponse{IDUsuario: uuid.NewString(), Nombre: req.Nombre, Correo: req.Correo, Rol: req.Rol}, nil
}

func (f *fakeAuth) ActualizarUsuario(_ context.Context, _ uuid.UUID, _ dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	return nil, service.ErrUsuarioNoEncontrado
}

func (f *fakeAuth) EliminarUsuario(_ context.Context, _ uuid.UUID) error {
	return service.ErrUsuarioNoEncontrado
}

type fakeRevocaciones struct{ revocadas map[string]bool }

func (f *fakeRevocaciones) Revocar(_ context.Context, jti string, _ time.Duration) error {
	f.revocadas[jti] = true
	return nil
}

func (f *fakeRevocaciones) EstaRevocada(_ context.Context, jti string) (bool, error) {
	return f.revocadas[jti], nil
}
