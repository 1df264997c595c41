package middleware

import (
	"net/http"

	"github.com/IMANOL01277/BollitoPy/internal/sesion"
	"github.com/IMANOL01277/BollitoPy/internal/web"

	"github.com/gin-gonic/gin"
)

// Decision is the outcome of checking one access rule.
type Decision int

const (
	Permitido Decision = iota
	RedirigirLogin
	Denegado
)

func (d Decision) String() string {
	switch d {
	case Permitido:
		return "permitido"
	case RedirigirLogin:
		return "redirigir_login"
	case Denegado:
		return "denegado"
	}
	return "desconocido"
}

const MensajeSinPermisos = "No tienes permisos para acceder a esta sección"

// Regla is a single access predicate over the current identity, which is
// nil for anonymous requests.
type Regla func(id *sesion.Identidad) Decision

// Autenticado requires a logged-in identity.
func Autenticado(id *sesion.Identidad) Decision {
	if id == nil {
		return RedirigirLogin
	}
	return Permitido
}

// Administrador requires the administrator role.
func Administrador(id *sesion.Identidad) Decision {
	if !id.EsAdministrador() {
		return Denegado
	}
	return Permitido
}

// Evaluar applies reglas in order and returns the first non-Permitido outcome.
func Evaluar(id *sesion.Identidad, reglas ...Regla) Decision {
	for _, r := range reglas {
		if d := r(id); d != Permitido {
			return d
		}
	}
	return Permitido
}

// Requiere gates the remaining handlers on reglas. Rejected requests never
// reach the handler.
func Requiere(reglas ...Regla) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch Evaluar(GetIdentidad(c), reglas...) {
		case RedirigirLogin:
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		case Denegado:
			web.Flashear(c, web.FlashAdvertencia, MensajeSinPermisos)
			c.Redirect(http.StatusFound, "/panel")
			c.Abort()
		default:
			c.Next()
		}
	}
}
