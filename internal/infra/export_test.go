package infra

import (
	"bytes"
	"testing"
	"time"

	"github.com/IMANOL01277/BollitoPy/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reporteDePrueba() (*dto.ResumenResponse, []dto.MovimientoResponse) {
	hasta := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	resumen := &dto.ResumenResponse{
		Entrada:  decimal.NewFromInt(100),
		Salida:   decimal.NewFromInt(150),
		Ganancia: decimal.NewFromInt(50),
		Desde:    hasta.AddDate(0, 0, -30),
		Hasta:    hasta,
	}
	movs := []dto.MovimientoResponse{{
		IDMovimiento:    "m1",
		IDProducto:      "p1",
		Tipo:            "salida",
		Cantidad:        3,
		PrecioUnitario:  decimal.NewFromInt(50),
		Total:           decimal.NewFromInt(150),
		FechaMovimiento: hasta.Format(dto.FormatoFecha),
		Descripcion:     "Domicilio entregado por José",
		Producto:        "Pan de bono",
	}}
	return resumen, movs
}

func TestEscribirReportePDF(t *testing.T) {
	resumen, movs := reporteDePrueba()
	var buf bytes.Buffer
	require.NoError(t, EscribirReportePDF(&buf, resumen, movs))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestEscribirReportePDFSinMovimientos(t *testing.T) {
	resumen, _ := reporteDePrueba()
	var buf bytes.Buffer
	require.NoError(t, EscribirReportePDF(&buf, resumen, nil))
	assert.NotZero(t, buf.Len())
}

func TestEscribirReporteXLSX(t *testing.T) {
	resumen, movs := reporteDePrueba()
	var buf bytes.Buffer
	require.NoError(t, EscribirReporteXLSX(&buf, resumen, movs))
	// xlsx is a zip archive
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}
