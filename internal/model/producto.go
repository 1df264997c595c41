package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog item. Stock is a cached value: it must only change
// together with a MovimientoInventario inside the same transaction.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion string
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	CategoriaID uuid.UUID       `gorm:"type:uuid;not null;index;column:id_categoria"`
	ProveedorID *uuid.UUID      `gorm:"type:uuid;index;column:id_proveedor"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

func (Producto) TableName() string { return "productos" }
