package model

import (
	"time"

	"github.com/google/uuid"
)

// Domicilio records an outbound delivery.
// Producto is a snapshot of the product name at creation time, not a foreign
// key: renaming or deleting the product leaves past deliveries untouched.
type Domicilio struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConductorResponsable string    `gorm:"not null"`
	MatriculaVehiculo    string    `gorm:"not null"`
	Observaciones        string
	Producto             string    `gorm:"not null"`
	FechaRegistro        time.Time `gorm:"not null;index"`
}

func (Domicilio) TableName() string { return "domicilios" }
