package service

import (
	"context"
	"fmt"
	"time"

	"github.com/IMANOL01277/BollitoPy/internal/dto"
	"github.com/IMANOL01277/BollitoPy/internal/model"
	"github.com/IMANOL01277/BollitoPy/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentanaResumen is the trailing window used by the summary and the list.
const VentanaResumen = 30 * 24 * time.Hour

// Reloj returns the server clock; tests replace it.
type Reloj func() time.Time

// MovimientoService owns the inventory ledger.
type MovimientoService interface {
	// RegistrarTx appends one entry inside the caller's transaction.
	RegistrarTx(tx *gorm.DB, productoID uuid.UUID, tipo string, cantidad int, precio decimal.Decimal, descripcion string) (*model.MovimientoInventario, error)
	// EliminarPorProductoTx drops a product's history; only product deletion uses it.
	EliminarPorProductoTx(tx *gorm.DB, productoID uuid.UUID) error
	Resumen(ctx context.Context) (*dto.ResumenResponse, error)
	Listar(ctx context.Context) ([]dto.MovimientoResponse, error)
	// Conciliar lists products whose stock differs from their ledger balance.
	Conciliar(ctx context.Context) ([]dto.DesviacionStock, error)
}

type movimientoService struct {
	repo  repository.MovimientoRepository
	ahora Reloj
}

func NewMovimientoService(repo repository.MovimientoRepository, reloj Reloj) MovimientoService {
	if reloj == nil {
		reloj = time.Now
	}
	return &movimientoService{repo: repo, ahora: reloj}
}

func (s *movimientoService) RegistrarTx(tx *gorm.DB, productoID uuid.UUID, tipo string, cantidad int, precio decimal.Decimal, descripcion string) (*model.MovimientoInventario, error) {
	if cantidad <= 0 {
		return nil, fmt.Errorf("movimiento: cantidad debe ser positiva, recibido %d", cantidad)
	}
	if tipo != model.MovimientoEntrada && tipo != model.MovimientoSalida {
		return nil, fmt.Errorf("movimiento: tipo desconocido %q", tipo)
	}
	m := &model.MovimientoInventario{
		ProductoID:      productoID,
		Tipo:            tipo,
		Cantidad:        cantidad,
		PrecioUnitario:  precio,
		Total:           precio.Mul(decimal.NewFromInt(int64(cantidad))),
		FechaMovimiento: s.ahora(),
		Descripcion:     descripcion,
	}
	if err := s.repo.CreateTx(tx, m); err != nil {
		return nil, fmt.Errorf("movimiento: insert: %w", err)
	}
	return m, nil
}

func (s *movimientoService) EliminarPorProductoTx(tx *gorm.DB, productoID uuid.UUID) error {
	return s.repo.DeleteByProductoTx(tx, productoID)
}

func (s *movimientoService) ventana() (time.Time, time.Time) {
	hasta := s.ahora()
	return hasta.Add(-VentanaResumen), hasta
}

func (s *movimientoService) Resumen(ctx context.Context) (*dto.ResumenResponse, error) {
	desde, hasta := s.ventana()
	totales, err := s.repo.TotalesPorTipo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	entrada := totales[model.MovimientoEntrada]
	salida := totales[model.MovimientoSalida]
	return &dto.ResumenResponse{
		Entrada:  entrada,
		Salida:   salida,
		Ganancia: salida.Sub(entrada),
		Desde:    desde,
		Hasta:    hasta,
	}, nil
}

func (s *movimientoService) Listar(ctx context.Context) ([]dto.MovimientoResponse, error) {
	desde, hasta := s.ventana()
	movs, err := s.repo.ListBetween(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		nombre := ""
		if m.Producto != nil {
			nombre = m.Producto.Nombre
		}
		out = append(out, dto.MovimientoResponse{
			IDMovimiento:    m.ID.String(),
			IDProducto:      m.ProductoID.String(),
			Tipo:            m.Tipo,
			Cantidad:        m.Cantidad,
			PrecioUnitario:  m.PrecioUnitario,
			Total:           m.Total,
			FechaMovimiento: m.FechaMovimiento.Format(dto.FormatoFecha),
			Descripcion:     m.Descripcion,
			Producto:        nombre,
		})
	}
	return out, nil
}

func (s *movimientoService) Conciliar(ctx context.Context) ([]dto.DesviacionStock, error) {
	saldos, err := s.repo.Saldos(ctx)
	if err != nil {
		return nil, err
	}
	desvios := make([]dto.DesviacionStock, 0)
	for _, sp := range saldos {
		if sp.Stock == sp.StockLedger {
			continue
		}
		desvios = append(desvios, dto.DesviacionStock{
			IDProducto:  sp.ProductoID.String(),
			Producto:    sp.Nombre,
			StockActual: sp.Stock,
			StockLedger: sp.StockLedger,
			Diferencia:  sp.Stock - sp.StockLedger,
		})
	}
	if len(desvios) > 0 {
		log.Warn().Int("productos", len(desvios)).Msg("conciliacion: stock desalineado con movimientos")
	}
	return desvios, nil
}
