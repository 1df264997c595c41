package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/IMANOL01277/BollitoPy/internal/dto"
	"github.com/IMANOL01277/BollitoPy/internal/middleware"
	"github.com/IMANOL01277/BollitoPy/internal/service"
	"github.com/IMANOL01277/BollitoPy/internal/sesion"
	"github.com/IMANOL01277/BollitoPy/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Revocador blocks a session id until it would have expired.
type Revocador interface {
	Revocar(ctx context.Context, jti string, ttl time.Duration) error
}

type AuthHandler struct {
	svc      service.AuthService
	sesiones *sesion.Manager
	revocar  Revocador
	secure   bool
}

// NewAuthHandler builds the login/registration pages. secure marks the
// session cookie HTTPS-only.
func NewAuthHandler(svc service.AuthService, sesiones *sesion.Manager, revocar Revocador, secure bool) *AuthHandler {
	return &AuthHandler{svc: svc, sesiones: sesiones, revocar: revocar, secure: secure}
}

func (h *AuthHandler) Inicio(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.html", "Iniciar sesión", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if msg := bindForm(c, &req); msg != "" {
		web.Flashear(c, web.FlashError, service.ErrCredenciales.Error())
		render(c, http.StatusOK, "login.html", "Iniciar sesión", nil)
		return
	}

	id, err := h.svc.Autenticar(c.Request.Context(), req.Correo, req.Contrasena)
	if errors.Is(err, service.ErrCredenciales) {
		web.Flashear(c, web.FlashError, err.Error())
		render(c, http.StatusOK, "login.html", "Iniciar sesión", nil)
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	token, _, err := h.sesiones.Emitir(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	middleware.EscribirCookieSesion(c, token, int(h.sesiones.Duracion().Seconds()), h.secure)
	log.Info().Str("usuario_id", id.UsuarioID.String()).Str("rol", id.Rol).Msg("inicio de sesión")
	c.Redirect(http.StatusFound, "/panel")
}

func (h *AuthHandler) RegistroForm(c *gin.Context) {
	render(c, http.StatusOK, "registro.html", "Registro", nil)
}

func (h *AuthHandler) Registro(c *gin.Context) {
	var req dto.RegistroRequest
	if err := c.ShouldBind(&req); err != nil {
		web.Flashear(c, web.FlashError, "Datos del formulario inválidos")
		render(c, http.StatusOK, "registro.html", "Registro", nil)
		return
	}

	_, err := h.svc.Registrar(c.Request.Context(), req)
	if service.EsValidacion(err) {
		web.Flashear(c, web.FlashError, err.Error())
		render(c, http.StatusOK, "registro.html", "Registro", gin.H{"Nombre": req.Nombre, "Correo": req.Correo})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	volver(c, "/login", web.FlashExito, "Registro exitoso. Ahora puedes iniciar sesión")
}

// Logout revokes the current session id and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if claims := middleware.GetClaims(c); claims != nil && h.revocar != nil && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := h.revocar.Revocar(c.Request.Context(), claims.ID, ttl); err != nil {
			log.Warn().Err(err).Str("request_id", c.GetString(middleware.RequestIDKey)).Msg("no se pudo revocar la sesión")
		}
	}
	middleware.BorrarCookieSesion(c)
	c.Redirect(http.StatusFound, "/login")
}
