package handler

import (
	"net/http"

	"github.com/IMANOL01277/BollitoPy/internal/dto"
	"github.com/IMANOL01277/BollitoPy/internal/service"
	"github.com/IMANOL01277/BollitoPy/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaginasHandler serves the server-rendered sections behind the login.
type PaginasHandler struct {
	productos  service.ProductoService
	domicilios service.DomicilioService
	catalogo   service.CatalogoService
}

func NewPaginasHandler(productos service.ProductoService, domicilios service.DomicilioService, catalogo service.CatalogoService) *PaginasHandler {
	return &PaginasHandler{productos: productos, domicilios: domicilios, catalogo: catalogo}
}

func (h *PaginasHandler) Panel(c *gin.Context) {
	render(c, http.StatusOK, "panel.html", "Panel", nil)
}

func (h *PaginasHandler) Inventario(c *gin.Context) {
	render(c, http.StatusOK, "inventario.html", "Inventario", nil)
}

func (h *PaginasHandler) Estadisticas(c *gin.Context) {
	render(c, http.StatusOK, "estadisticas.html", "Estadísticas", nil)
}

func (h *PaginasHandler) Usuarios(c *gin.Context) {
	render(c, http.StatusOK, "usuarios.html", "Usuarios", nil)
}

// ── Domicilios ────────────────────────────────────────────────────────────────

func (h *PaginasHandler) Domicilios(c *gin.Context) {
	ctx := c.Request.Context()
	domicilios, err := h.domicilios.Listar(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}
	productos, err := h.productos.ListarPorNombre(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, "domicilios.html", "Domicilios", gin.H{
		"Domicilios": domicilios,
		"Productos":  productos,
	})
}

func (h *PaginasHandler) DomiciliosPost(c *gin.Context) {
	switch c.PostForm("action") {
	case "create":
		var req dto.CrearDomicilioRequest
		if msg := bindForm(c, &req); msg != "" {
			volver(c, "/domicilios", web.FlashAdvertencia, service.MensajeProductoOCantidad)
			return
		}
		_, err := h.domicilios.Crear(c.Request.Context(), req)
		if service.EsValidacion(err) {
			volver(c, "/domicilios", web.FlashAdvertencia, err.Error())
			return
		}
		if err != nil {
			_ = c.Error(err)
			return
		}
		volver(c, "/domicilios", web.FlashExito, "Domicilio registrado correctamente")

	case "delete":
		var req dto.EliminarDomicilioRequest
		if msg := bindForm(c, &req); msg != "" {
			volver(c, "/domicilios", web.FlashAdvertencia, msg)
			return
		}
		err := h.domicilios.Eliminar(c.Request.Context(), uuid.MustParse(req.IDDomicilio))
		if service.EsNoEncontrado(err) {
			volver(c, "/domicilios", web.FlashAdvertencia, err.Error())
			return
		}
		if err != nil {
			_ = c.Error(err)
			return
		}
		volver(c, "/domicilios", web.FlashInfo, "Domicilio eliminado")

	default:
		c.Redirect(http.StatusFound, "/domicilios")
	}
}

// ── Catálogo (administrador) ──────────────────────────────────────────────────

func (h *PaginasHandler) Categorias(c *gin.Context) {
	list, err := h.catalogo.ListarCategorias(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, "categorias.html", "Categorías", gin.H{"Categorias": list})
}

func (h *PaginasHandler) CategoriasPost(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if msg := bindForm(c, &req); msg != "" {
		volver(c, "/categorias", web.FlashError, msg)
		return
	}
	_, err := h.catalogo.CrearCategoria(c.Request.Context(), req)
	if service.EsValidacion(err) {
		volver(c, "/categorias", web.FlashError, err.Error())
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	volver(c, "/categorias", web.FlashExito, "Categoría creada correctamente")
}

func (h *PaginasHandler) Proveedores(c *gin.Context) {
	list, err := h.catalogo.ListarProveedores(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, "proveedores.html", "Proveedores", gin.H{"Proveedores": list})
}

func (h *PaginasHandler) ProveedoresPost(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if msg := bindForm(c, &req); msg != "" {
		volver(c, "/proveedores", web.FlashError, msg)
		return
	}
	_, err := h.catalogo.CrearProveedor(c.Request.Context(), req)
	if service.EsValidacion(err) {
		volver(c, "/proveedores", web.FlashError, err.Error())
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	volver(c, "/proveedores", web.FlashExito, "Proveedor agregado correctamente")
}

// Vendedores lists field sellers; ?eliminar=<id> deletes one first.
func (h *PaginasHandler) Vendedores(c *gin.Context) {
	if raw := c.Query("eliminar"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			volver(c, "/vendedores", web.FlashAdvertencia, service.ErrVendedorNoEncontrado.Error())
			return
		}
		err = h.catalogo.EliminarVendedor(c.Request.Context(), id)
		if service.EsNoEncontrado(err) {
			volver(c, "/vendedores", web.FlashAdvertencia, err.Error())
			return
		}
		if err != nil {
			_ = c.Error(err)
			return
		}
		volver(c, "/vendedores", web.FlashInfo, "Vendedor eliminado")
		return
	}

	list, err := h.catalogo.ListarVendedores(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	render(c, http.StatusOK, "vendedores.html", "Vendedores", gin.H{"Vendedores": list})
}

func (h *PaginasHandler) VendedoresPost(c *gin.Context) {
	if _, ok := c.GetPostForm("add_vendedor"); !ok {
		c.Redirect(http.StatusFound, "/vendedores")
		return
	}
	var req dto.CrearVendedorRequest
	if msg := bindForm(c, &req); msg != "" {
		volver(c, "/vendedores", web.FlashError, msg)
		return
	}
	_, err := h.catalogo.CrearVendedor(c.Request.Context(), req)
	if service.EsValidacion(err) {
		volver(c, "/vendedores", web.FlashError, err.Error())
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	volver(c, "/vendedores", web.FlashExito, "Vendedor agregado correctamente")
}
