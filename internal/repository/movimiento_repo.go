package repository

import (
	"context"
	"time"

	"github.com/IMANOL01277/BollitoPy/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaldoProducto pairs a product's cached stock with the quantity implied by
// its ledger (Σ entradas − Σ salidas).
type SaldoProducto struct {
	ProductoID  uuid.UUID
	Nombre      string
	Stock       int
	StockLedger int
}

type MovimientoRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error
	DeleteByProductoTx(tx *gorm.DB, productoID uuid.UUID) error
	// ListBetween returns entries with desde <= fecha_movimiento <= hasta,
	// newest first, with the product preloaded.
	ListBetween(ctx context.Context, desde, hasta time.Time) ([]model.MovimientoInventario, error)
	// TotalesPorTipo sums Total per Tipo over the same closed window.
	TotalesPorTipo(ctx context.Context, desde, hasta time.Time) (map[string]decimal.Decimal, error)
	Saldos(ctx context.Context) ([]SaldoProducto, error)
}

type movimientoRepo struct{ db *gorm.DB }

func NewMovimientoRepository(db *gorm.DB) MovimientoRepository {
	return &movimientoRepo{db: db}
}

func (r *movimientoRepo) CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error {
	return tx.Create(m).Error
}

func (r *movimientoRepo) DeleteByProductoTx(tx *gorm.DB, productoID uuid.UUID) error {
	return tx.Where("id_producto = ?", productoID).Delete(&model.MovimientoInventario{}).Error
}

func (r *movimientoRepo) ListBetween(ctx context.Context, desde, hasta time.Time) ([]model.MovimientoInventario, error) {
	var movs []model.MovimientoInventario
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("fecha_movimiento BETWEEN ? AND ?", desde, hasta).
		Order("fecha_movimiento DESC").
		Find(&movs).Error
	return movs, err
}

func (r *movimientoRepo) TotalesPorTipo(ctx context.Context, desde, hasta time.Time) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Tipo  string
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&model.MovimientoInventario{}).
		Select("tipo, COALESCE(SUM(total), 0) AS total").
		Where("fecha_movimiento BETWEEN ? AND ?", desde, hasta).
		Group("tipo").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		out[row.Tipo] = row.Total
	}
	return out, nil
}

func (r *movimientoRepo) Saldos(ctx context.Context) ([]SaldoProducto, error) {
	var saldos []SaldoProducto
	err := r.db.WithContext(ctx).Raw(`
SELECT p.id AS producto_id, p.nombre, p.stock,
       COALESCE(SUM(CASE m.tipo WHEN 'entrada' THEN m.cantidad ELSE -m.cantidad END), 0) AS stock_ledger
FROM productos p
LEFT JOIN movimientos_inventario m ON m.id_producto = p.id
GROUP BY p.id, p.nombre, p.stock
ORDER BY p.nombre ASC`).Scan(&saldos).Error
	return saldos, err
}
