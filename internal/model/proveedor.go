package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor represents a supplier and its contact data.
type Proveedor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Contacto  string
	Telefono  string
	Correo    string
	Direccion string
	CreatedAt time.Time
}

func (Proveedor) TableName() string { return "proveedores" }
