package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RolEmpleado      = "empleado"
	RolAdministrador = "administrador"
)

// Usuario stores an account able to log into the panel.
// Rol: "empleado" | "administrador"
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"not null"`
	Correo       string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null;default:'empleado'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
