package repository

import (
	"context"

	"github.com/IMANOL01277/BollitoPy/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// so unit tests can run against in-memory stubs.
type ProductoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	// List returns every product with its category and supplier, newest first.
	List(ctx context.Context) ([]model.Producto, error)
	// ListByNombre feeds product pickers (delivery form).
	ListByNombre(ctx context.Context) ([]model.Producto, error)

	// Used inside transactions; callers must pass the tx instance
	CreateTx(tx *gorm.DB, p *model.Producto) error
	// FindByIDForUpdateTx reads the row with FOR UPDATE so a concurrent
	// edit or delivery cannot interleave between read and write.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error)
	UpdateTx(tx *gorm.DB, p *model.Producto) error
	UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Preload("Categoria").
		Preload("Proveedor").
		Order("created_at DESC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ListByNombre(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) CreateTx(tx *gorm.DB, p *model.Producto) error {
	return tx.Create(p).Error
}

func (r *productoRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) UpdateTx(tx *gorm.DB, p *model.Producto) error {
	return tx.Model(&model.Producto{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"nombre":       p.Nombre,
		"descripcion":  p.Descripcion,
		"precio":       p.Precio,
		"stock":        p.Stock,
		"id_categoria": p.CategoriaID,
		"id_proveedor": p.ProveedorID,
		"updated_at":   gorm.Expr("NOW()"),
	}).Error
}

func (r *productoRepo) UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *productoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) (int64, error) {
	res := tx.Where("id = ?", id).Delete(&model.Producto{})
	return res.RowsAffected, res.Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
