package model

import (
	"time"

	"github.com/google/uuid"
)

// VendedorAmbulante is a field seller registered by an administrator.
type VendedorAmbulante struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Telefono  string
	Direccion string
	CreatedAt time.Time
}

func (VendedorAmbulante) TableName() string { return "vendedores_ambulantes" }
