package infra

import (
	"fmt"
	"io"

	"github.com/IMANOL01277/BollitoPy/internal/dto"

	"github.com/tealeg/xlsx"
)

// EscribirReporteXLSX writes a workbook with a "Resumen" sheet and a
// "Movimientos" sheet holding one row per ledger entry.
func EscribirReporteXLSX(w io.Writer, resumen *dto.ResumenResponse, movs []dto.MovimientoResponse) error {
	file := xlsx.NewFile()

	hoja, err := file.AddSheet("Resumen")
	if err != nil {
		return fmt.Errorf("xlsx: add sheet: %w", err)
	}
	for _, par := range [][2]string{
		{"Desde", resumen.Desde.Format(dto.FormatoFecha)},
		{"Hasta", resumen.Hasta.Format(dto.FormatoFecha)},
		{"Entradas", resumen.Entrada.StringFixed(2)},
		{"Salidas", resumen.Salida.StringFixed(2)},
		{"Ganancia", resumen.Ganancia.StringFixed(2)},
	} {
		row := hoja.AddRow()
		row.AddCell().SetString(par[0])
		row.AddCell().SetString(par[1])
	}

	hoja, err = file.AddSheet("Movimientos")
	if err != nil {
		return fmt.Errorf("xlsx: add sheet: %w", err)
	}
	header := hoja.AddRow()
	for _, h := range []string{"ID", "Fecha", "Producto", "Tipo", "Cantidad", "Precio unitario", "Total", "Descripcion"} {
		header.AddCell().SetString(h)
	}
	for _, m := range movs {
		row := hoja.AddRow()
		row.AddCell().SetString(m.IDMovimiento)
		row.AddCell().SetString(m.FechaMovimiento)
		row.AddCell().SetString(m.Producto)
		row.AddCell().SetString(m.Tipo)
		row.AddCell().SetInt(m.Cantidad)
		precio, _ := m.PrecioUnitario.Float64()
		row.AddCell().SetFloat(precio)
		total, _ := m.Total.Float64()
		row.AddCell().SetFloat(total)
		row.AddCell().SetString(m.Descripcion)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("xlsx: write workbook: %w", err)
	}
	return nil
}
