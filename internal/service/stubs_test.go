package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/IMANOL01277/BollitoPy/internal/model"
	"github.com/IMANOL01277/BollitoPy/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory Repository Stubs ────────────────────────────────────────────────
//
// DB() returns nil on every stub, so runTx calls the callback directly with a
// nil transaction.

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubProductoRepo) ListByNombre(ctx context.Context) ([]model.Producto, error) {
	out, _ := r.List(ctx)
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *stubProductoRepo) CreateTx(_ *gorm.DB, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *stubProductoRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductoRepo) UpdateTx(_ *gorm.DB, p *model.Producto) error {
	if _, ok := r.productos[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *stubProductoRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Stock += delta
	return nil
}

func (r *stubProductoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := r.productos[id]; !ok {
		return 0, nil
	}
	delete(r.productos, id)
	return 1, nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

type stubMovimientoRepo struct {
	productos *stubProductoRepo
	movs      []model.MovimientoInventario
}

func newStubMovimientoRepo(productos *stubProductoRepo) *stubMovimientoRepo {
	return &stubMovimientoRepo{productos: productos}
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoInventario) error {
	m.ID = uuid.New()
	r.movs = append(r.movs, *m)
	return nil
}

func (r *stubMovimientoRepo) DeleteByProductoTx(_ *gorm.DB, productoID uuid.UUID) error {
	kept := r.movs[:0]
	for _, m := range r.movs {
		if m.ProductoID != productoID {
			kept = append(kept, m)
		}
	}
	r.movs = kept
	return nil
}

func (r *stubMovimientoRepo) ListBetween(_ context.Context, desde, hasta time.Time) ([]model.MovimientoInventario, error) {
	out := make([]model.MovimientoInventario, 0)
	for _, m := range r.movs {
		if m.FechaMovimiento.Before(desde) || m.FechaMovimiento.After(hasta) {
			continue
		}
		if p, ok := r.productos.productos[m.ProductoID]; ok {
			m.Producto = p
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaMovimiento.After(out[j].FechaMovimiento) })
	return out, nil
}

func (r *stubMovimientoRepo) TotalesPorTipo(ctx context.Context, desde, hasta time.Time) (map[string]decimal.Decimal, error) {
	movs, _ := r.ListBetween(ctx, desde, hasta)
	out := make(map[string]decimal.Decimal)
	for _, m := range movs {
		out[m.Tipo] = out[m.Tipo].Add(m.Total)
	}
	return out, nil
}

func (r *stubMovimientoRepo) Saldos(_ context.Context) ([]repository.SaldoProducto, error) {
	saldos := make([]repository.SaldoProducto, 0, len(r.productos.productos))
	for _, p := range r.productos.productos {
		s := repository.SaldoProducto{ProductoID: p.ID, Nombre: p.Nombre, Stock: p.Stock}
		for _, m := range r.movs {
			if m.ProductoID == p.ID {
				s.StockLedger += signo(m) * m.Cantidad
			}
		}
		saldos = append(saldos, s)
	}
	sort.Slice(saldos, func(i, j int) bool { return saldos[i].Nombre < saldos[j].Nombre })
	return saldos, nil
}

// porProducto returns the entries recorded for one product, oldest first.
func (r *stubMovimientoRepo) porProducto(id uuid.UUID) []model.MovimientoInventario {
	var out []model.MovimientoInventario
	for _, m := range r.movs {
		if m.ProductoID == id {
			out = append(out, m)
		}
	}
	return out
}

var _ repository.MovimientoRepository = (*stubMovimientoRepo)(nil)

type stubCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uuid.UUID]*model.Categoria)}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context) ([]model.Categoria, error) {
	out := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) ListarPorNombre(ctx context.Context) ([]model.Categoria, error) {
	out, _ := r.Listar(ctx)
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

type stubProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	p.ID = uuid.New()
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) List(_ context.Context) ([]model.Proveedor, error) {
	out := make([]model.Proveedor, 0, len(r.proveedores))
	for _, p := range r.proveedores {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProveedorRepo) ListByNombre(ctx context.Context) ([]model.Proveedor, error) {
	out, _ := r.List(ctx)
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

type stubVendedorRepo struct {
	vendedores map[uuid.UUID]*model.VendedorAmbulante
}

func newStubVendedorRepo() *stubVendedorRepo {
	return &stubVendedorRepo{vendedores: make(map[uuid.UUID]*model.VendedorAmbulante)}
}

func (r *stubVendedorRepo) Create(_ context.Context, v *model.VendedorAmbulante) error {
	v.ID = uuid.New()
	r.vendedores[v.ID] = v
	return nil
}

func (r *stubVendedorRepo) List(_ context.Context) ([]model.VendedorAmbulante, error) {
	out := make([]model.VendedorAmbulante, 0, len(r.vendedores))
	for _, v := range r.vendedores {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVendedorRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.vendedores[id]; !ok {
		return 0, nil
	}
	delete(r.vendedores, id)
	return 1, nil
}

var _ repository.VendedorRepository = (*stubVendedorRepo)(nil)

type stubDomicilioRepo struct {
	domicilios map[uuid.UUID]*model.Domicilio
}

func newStubDomicilioRepo() *stubDomicilioRepo {
	return &stubDomicilioRepo{domicilios: make(map[uuid.UUID]*model.Domicilio)}
}

func (r *stubDomicilioRepo) CreateTx(_ *gorm.DB, d *model.Domicilio) error {
	d.ID = uuid.New()
	cp := *d
	r.domicilios[d.ID] = &cp
	return nil
}

func (r *stubDomicilioRepo) List(_ context.Context) ([]model.Domicilio, error) {
	out := make([]model.Domicilio, 0, len(r.domicilios))
	for _, d := range r.domicilios {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaRegistro.After(out[j].FechaRegistro) })
	return out, nil
}

func (r *stubDomicilioRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.domicilios[id]; !ok {
		return 0, nil
	}
	delete(r.domicilios, id)
	return 1, nil
}

var _ repository.DomicilioRepository = (*stubDomicilioRepo)(nil)

type stubUsuarioRepo struct {
	users map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUsuarioRepo) FindByCorreo(_ context.Context, correo string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Correo == correo {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Fixtures ──────────────────────────────────────────────────────────────────

type fixture struct {
	productos   *stubProductoRepo
	movimientos *stubMovimientoRepo
	categorias  *stubCategoriaRepo
	proveedores *stubProveedorRepo
	domicilios  *stubDomicilioRepo
	ahora       time.Time
}

func newFixture() *fixture {
	productos := newStubProductoRepo()
	return &fixture{
		productos:   productos,
		movimientos: newStubMovimientoRepo(productos),
		categorias:  newStubCategoriaRepo(),
		proveedores: newStubProveedorRepo(),
		domicilios:  newStubDomicilioRepo(),
		ahora:       time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) reloj() time.Time { return f.ahora }

func (f *fixture) categoria() *model.Categoria {
	c := &model.Categoria{Nombre: "Panadería"}
	_ = f.categorias.Crear(context.Background(), c)
	return c
}

type alerta struct {
	producto string
	stock    int
}

type stubNotificador struct {
	alertas []alerta
	err     error
}

func (n *stubNotificador) AlertarStockNegativo(_ context.Context, producto string, stock int) error {
	n.alertas = append(n.alertas, alerta{producto, stock})
	return n.err
}

// signo mirrors the CASE expression of the Saldos query.
func signo(m model.MovimientoInventario) int {
	if m.Tipo == model.MovimientoSalida {
		return -1
	}
	return 1
}
