package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amounts go out as JSON numbers (12.5, not "12.5"), matching what the
// inventory and statistics pages read.
func init() { decimal.MarshalJSONWithoutQuotes = true }

// FormatoFecha is how ledger timestamps are rendered in JSON and exports.
const FormatoFecha = "2006-01-02 15:04:05"

// ResumenResponse aggregates the trailing 30-day window.
// Ganancia = Salida - Entrada: every outflow counts as revenue and every
// inflow as cost.
type ResumenResponse struct {
	Entrada  decimal.Decimal `json:"entrada"`
	Salida   decimal.Decimal `json:"salida"`
	Ganancia decimal.Decimal `json:"ganancia"`
	Desde    time.Time       `json:"desde"`
	Hasta    time.Time       `json:"hasta"`
}

type MovimientoResponse struct {
	IDMovimiento    string          `json:"id_movimiento"`
	IDProducto      string          `json:"id_producto"`
	Tipo            string          `json:"tipo"`
	Cantidad        int             `json:"cantidad"`
	PrecioUnitario  decimal.Decimal `json:"precio_unitario"`
	Total           decimal.Decimal `json:"total"`
	FechaMovimiento string          `json:"fecha_movimiento"`
	Descripcion     string          `json:"descripcion"`
	Producto        string          `json:"producto"`
}

// DesviacionStock reports a product whose cached stock disagrees with the
// quantity implied by its ledger entries.
type DesviacionStock struct {
	IDProducto  string `json:"id_producto"`
	Producto    string `json:"producto"`
	StockActual int    `json:"stock_actual"`
	StockLedger int    `json:"stock_ledger"`
	Diferencia  int    `json:"diferencia"`
}
