package middleware

import (
	"context"
	"net/http"

	"github.com/IMANOL01277/BollitoPy/internal/sesion"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	IdentidadKey = "identidad"
	ClaimsKey    = "claims"
)

// Revocaciones answers whether a logged-out session id is still blocked.
type Revocaciones interface {
	EstaRevocada(ctx context.Context, jti string) (bool, error)
}

// Sesion decodes the session cookie, when present, and exposes the identity
// through the gin context and the request context. Requests without a valid
// session continue anonymously; the gate decides what they may reach.
func Sesion(m *sesion.Manager, rev Revocaciones) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(sesion.CookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		claims, err := m.Validar(raw)
		if err != nil {
			BorrarCookieSesion(c)
			c.Next()
			return
		}
		if rev != nil {
			revocada, err := rev.EstaRevocada(c.Request.Context(), claims.ID)
			if err != nil {
				// Fail closed: without the revocation list the session can't be trusted
				log.Warn().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("no se pudo consultar sesiones revocadas")
				c.Next()
				return
			}
			if revocada {
				BorrarCookieSesion(c)
				c.Next()
				return
			}
		}
		id, err := claims.Identidad()
		if err != nil {
			BorrarCookieSesion(c)
			c.Next()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(IdentidadKey, id)
		c.Request = c.Request.WithContext(sesion.NewContext(c.Request.Context(), id))
		c.Next()
	}
}

// GetIdentidad returns the identity of the current request, or nil.
func GetIdentidad(c *gin.Context) *sesion.Identidad {
	v, ok := c.Get(IdentidadKey)
	if !ok {
		return nil
	}
	id, _ := v.(*sesion.Identidad)
	return id
}

// GetClaims returns the verified session claims, or nil.
func GetClaims(c *gin.Context) *sesion.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*sesion.Claims)
	return claims
}

// EscribirCookieSesion stores a signed session on the client.
func EscribirCookieSesion(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sesion.CookieName, token, maxAge, "/", "", secure, true)
}

func BorrarCookieSesion(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sesion.CookieName, "", -1, "/", "", false, true)
}
