package infra

// pdf.go: movement report using go-pdf/fpdf.
// One A4 page (more if needed) with:
//   - business header and reporting window
//   - 30-day totals (entradas, salidas, ganancia)
//   - ledger table (fecha, producto, tipo, cantidad, total)

import (
	"fmt"
	"io"

	"github.com/IMANOL01277/BollitoPy/internal/dto"

	"github.com/go-pdf/fpdf"
)

// EscribirReportePDF renders the summary and the ledger rows to w.
func EscribirReportePDF(w io.Writer, resumen *dto.ResumenResponse, movs []dto.MovimientoResponse) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate accents coming from UTF-8 strings
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "Mi Bollito", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Movimientos de inventario del %s al %s",
		resumen.Desde.Format("02/01/2006"), resumen.Hasta.Format("02/01/2006"))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	totales := []struct {
		label string
		valor string
	}{
		{"Entradas:", "$" + resumen.Entrada.StringFixed(2)},
		{"Salidas:", "$" + resumen.Salida.StringFixed(2)},
		{"Ganancia:", "$" + resumen.Ganancia.StringFixed(2)},
	}
	for _, t := range totales {
		pdf.CellFormat(contentW*0.3, 6, t.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.3, 6, t.valor, "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// ── Table ─────────────────────────────────────────────────────────────────
	cols := []float64{contentW * 0.22, contentW * 0.36, contentW * 0.12, contentW * 0.12, contentW * 0.18}
	pdf.SetFont("Helvetica", "B", 8)
	for i, h := range []string{"Fecha", "Producto", "Tipo", "Cantidad", "Total"} {
		align := "L"
		if i >= 3 {
			align = "R"
		}
		pdf.CellFormat(cols[i], 6, h, "B", 0, align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, m := range movs {
		producto := m.Producto
		if len([]rune(producto)) > 40 {
			producto = string([]rune(producto)[:39]) + "..."
		}
		pdf.CellFormat(cols[0], 5, m.FechaMovimiento, "", 0, "L", false, 0, "")
		pdf.CellFormat(cols[1], 5, tr(producto), "", 0, "L", false, 0, "")
		pdf.CellFormat(cols[2], 5, m.Tipo, "", 0, "L", false, 0, "")
		pdf.CellFormat(cols[3], 5, fmt.Sprintf("%d", m.Cantidad), "", 0, "R", false, 0, "")
		pdf.CellFormat(cols[4], 5, "$"+m.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}
	if len(movs) == 0 {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(contentW, 6, tr("Sin movimientos en el período"), "", 1, "C", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: write report: %w", err)
	}
	return nil
}
