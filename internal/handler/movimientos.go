package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/IMANOL01277/BollitoPy/internal/apierror"
	"github.com/IMANOL01277/BollitoPy/internal/dto"
	"github.com/IMANOL01277/BollitoPy/internal/infra"
	"github.com/IMANOL01277/BollitoPy/internal/middleware"
	"github.com/IMANOL01277/BollitoPy/internal/service"

	"github.com/gin-gonic/gin"
)

type MovimientosHandler struct{ svc service.MovimientoService }

func NewMovimientosHandler(svc service.MovimientoService) *MovimientosHandler {
	return &MovimientosHandler{svc: svc}
}

// API dispatches /api/movimientos on the action parameter.
// @Summary Movimientos de inventario
// @Tags movimientos
// @Produce json
// @Param action query string true "resumen | list | conciliacion"
// @Success 200 {object} map[string]interface{}
// @Router /api/movimientos [get]
func (h *MovimientosHandler) API(c *gin.Context) {
	switch c.Query("action") {
	case "resumen":
		resumen, err := h.svc.Resumen(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, apierror.OK("", gin.H{"resumen": resumen}))
	case "list":
		movs, err := h.svc.Listar(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, apierror.OK("", gin.H{"movs": movs}))
	case "conciliacion":
		if middleware.Evaluar(middleware.GetIdentidad(c), middleware.Administrador) != middleware.Permitido {
			c.JSON(http.StatusForbidden, apierror.New(middleware.MensajeSinPermisos))
			return
		}
		desvios, err := h.svc.Conciliar(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, apierror.OK("", gin.H{"desviaciones": desvios}))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(MensajeAccionInvalida))
	}
}

type exportador struct {
	contentType string
	extension   string
	escribir    func(io.Writer, *dto.ResumenResponse, []dto.MovimientoResponse) error
}

var exportadores = map[string]exportador{
	"pdf":  {"application/pdf", "pdf", infra.EscribirReportePDF},
	"xlsx": {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", infra.EscribirReporteXLSX},
}

// Exportar downloads the 30-day summary and ledger as PDF or XLSX.
// @Summary Exportar movimientos
// @Tags movimientos
// @Produce application/pdf
// @Param formato query string true "pdf | xlsx"
// @Router /api/movimientos/exportar [get]
func (h *MovimientosHandler) Exportar(c *gin.Context) {
	exp, ok := exportadores[c.DefaultQuery("formato", "pdf")]
	if !ok {
		c.JSON(http.StatusBadRequest, apierror.New("Formato no soportado"))
		return
	}
	resumen, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	movs, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	// Rendered in memory so a failure can still produce a clean 500
	var buf bytes.Buffer
	if err := exp.escribir(&buf, resumen, movs); err != nil {
		_ = c.Error(fmt.Errorf("exportar %s: %w", exp.extension, err))
		return
	}
	nombre := fmt.Sprintf("movimientos_%s.%s", resumen.Hasta.Format("20060102"), exp.extension)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, nombre))
	c.Data(http.StatusOK, exp.contentType, buf.Bytes())
}
