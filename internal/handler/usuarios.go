package handler

import (
	"net/http"

	"github.com/IMANOL01277/BollitoPy/internal/apierror"
	"github.com/IMANOL01277/BollitoPy/internal/dto"
	"github.com/IMANOL01277/BollitoPy/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// API dispatches /api/usuarios on the action parameter. Administrators only.
// @Summary Usuarios
// @Tags usuarios
// @Produce json
// @Param action query string true "list | create | update | delete"
// @Success 200 {object} map[string]interface{}
// @Router /api/usuarios [get]
// @Router /api/usuarios [post]
func (h *UsuariosHandler) API(c *gin.Context) {
	ctx := c.Request.Context()
	switch accion(c) {
	case "list":
		users, err := h.svc.ListarUsuarios(ctx)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, apierror.OK("", gin.H{"users": users}))

	case "create":
		var req dto.CrearUsuarioRequest
		if !bindAndValidate(c, &req) {
			return
		}
		resp, err := h.svc.CrearUsuario(ctx, req)
		if err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, apierror.OK("Usuario creado", gin.H{"user": resp}))

	case "update":
		var req dto.ActualizarUsuarioRequest
		if !bindAndValidate(c, &req) {
			return
		}
		resp, err := h.svc.ActualizarUsuario(ctx, uuid.MustParse(req.IDUsuario), req)
		if err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, apierror.OK("Usuario actualizado", gin.H{"user": resp}))

	case "delete":
		var req dto.EliminarUsuarioRequest
		if !bindAndValidate(c, &req) {
			return
		}
		if err := h.svc.EliminarUsuario(ctx, uuid.MustParse(req.IDUsuario)); err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, apierror.OK("Usuario eliminado", nil))

	default:
		c.JSON(http.StatusBadRequest, apierror.New(MensajeAccionInvalida))
	}
}
