package handler

import (
	"net/http"

	"github.com/IMANOL01277/BollitoPy/internal/apierror"
	"github.com/IMANOL01277/BollitoPy/internal/dto"
	"github.com/IMANOL01277/BollitoPy/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductosHandler struct {
	svc      service.ProductoService
	catalogo service.CatalogoService
}

func NewProductosHandler(svc service.ProductoService, catalogo service.CatalogoService) *ProductosHandler {
	return &ProductosHandler{svc: svc, catalogo: catalogo}
}

// API dispatches /api/productos on the action parameter.
// @Summary Productos
// @Tags productos
// @Produce json
// @Param action query string true "list | categories | proveedores | create | get | update | delete"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apierror.APIError
// @Router /api/productos [get]
// @Router /api/productos [post]
func (h *ProductosHandler) API(c *gin.Context) {
	switch accion(c) {
	case "list":
		h.listar(c)
	case "categories":
		h.categorias(c)
	case "proveedores":
		h.proveedores(c)
	case "create":
		h.crear(c)
	case "get":
		h.obtener(c)
	case "update":
		h.actualizar(c)
	case "delete":
		h.eliminar(c)
	default:
		c.JSON(http.StatusBadRequest, apierror.New(MensajeAccionInvalida))
	}
}

func (h *ProductosHandler) listar(c *gin.Context) {
	list, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK("", gin.H{"products": list}))
}

func (h *ProductosHandler) categorias(c *gin.Context) {
	opts, err := h.catalogo.OpcionesCategoria(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK("", gin.H{"categorias": opts}))
}

func (h *ProductosHandler) proveedores(c *gin.Context) {
	opts, err := h.catalogo.OpcionesProveedor(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK("", gin.H{"proveedores": opts}))
}

func (h *ProductosHandler) crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Producto creado correctamente", gin.H{"product": resp}))
}

func (h *ProductosHandler) obtener(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		raw = c.Query("id_producto")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK("", gin.H{"product": resp}))
}

func (h *ProductosHandler) actualizar(c *gin.Context) {
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), uuid.MustParse(req.IDProducto), req.CrearProductoRequest)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Producto actualizado correctamente", gin.H{"product": resp}))
}

func (h *ProductosHandler) eliminar(c *gin.Context) {
	var req dto.EliminarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), uuid.MustParse(req.IDProducto)); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK("Producto eliminado", nil))
}
