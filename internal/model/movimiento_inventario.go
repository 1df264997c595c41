package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
)

// MovimientoInventario is one immutable ledger entry. Entries are never
// updated; they are only removed together with their product.
type MovimientoInventario struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID      uuid.UUID       `gorm:"type:uuid;not null;index;column:id_producto"`
	Tipo            string          `gorm:"type:varchar(10);not null"` // "entrada" | "salida"
	Cantidad        int             `gorm:"not null"`                  // always > 0; direction lives in Tipo
	PrecioUnitario  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total           decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	FechaMovimiento time.Time       `gorm:"not null;index"`
	Descripcion     string

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

// TableName keeps the table name used by the reports.
func (MovimientoInventario) TableName() string { return "movimientos_inventario" }
