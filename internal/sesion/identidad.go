// Package sesion models the logged-in identity and the signed cookie that
// carries it between requests.
package sesion

import (
	"context"

	"github.com/IMANOL01277/BollitoPy/internal/model"

	"github.com/google/uuid"
)

// Identidad is the current user as seen by every gated operation.
type Identidad struct {
	UsuarioID uuid.UUID
	Nombre    string
	Correo    string
	Rol       string
}

// EsAdministrador reports whether the identity holds the elevated role.
func (i *Identidad) EsAdministrador() bool {
	return i != nil && i.Rol == model.RolAdministrador
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id *Identidad) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity stored in ctx, or nil.
func FromContext(ctx context.Context) *Identidad {
	id, _ := ctx.Value(ctxKey{}).(*Identidad)
	return id
}
