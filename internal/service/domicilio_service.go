package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IMANOL01277/BollitoPy/internal/dto"
	"github.com/IMANOL01277/BollitoPy/internal/model"
	"github.com/IMANOL01277/BollitoPy/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	MensajeProductoOCantidad = "Producto inválido o cantidad incorrecta"
	// MensajeConductorMatricula rejects a blank driver or plate.
	MensajeConductorMatricula = "Conductor y matrícula son obligatorios"
)

// Notificador receives stock alerts once a delivery has committed.
type Notificador interface {
	AlertarStockNegativo(ctx context.Context, producto string, stock int) error
}

type DomicilioService interface {
	// Crear registers the delivery, decrements stock and appends the outflow
	// entry atomically. Stock may go negative.
	Crear(ctx context.Context, req dto.CrearDomicilioRequest) (*model.Domicilio, error)
	Listar(ctx context.Context) ([]model.Domicilio, error)
	// Eliminar removes the record only. Stock and ledger stay as they are.
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type domicilioService struct {
	repo        repository.DomicilioRepository
	productos   repository.ProductoRepository
	movimientos MovimientoService
	notificador Notificador // nil = no alerts
	ahora       Reloj
}

func NewDomicilioService(
	repo repository.DomicilioRepository,
	productos repository.ProductoRepository,
	movimientos MovimientoService,
	notificador Notificador,
	reloj Reloj,
) DomicilioService {
	if reloj == nil {
		reloj = time.Now
	}
	return &domicilioService{
		repo:        repo,
		productos:   productos,
		movimientos: movimientos,
		notificador: notificador,
		ahora:       reloj,
	}
}

func DescripcionDomicilio(conductor string) string {
	return fmt.Sprintf("Domicilio entregado por %s", conductor)
}

func (s *domicilioService) Crear(ctx context.Context, req dto.CrearDomicilioRequest) (*model.Domicilio, error) {
	conductor := strings.TrimSpace(req.ConductorResponsable)
	if conductor == "" || strings.TrimSpace(req.MatriculaVehiculo) == "" {
		return nil, validacion(MensajeConductorMatricula)
	}
	productoID, err := uuid.Parse(req.IDProducto)
	if err != nil || req.Cantidad <= 0 {
		return nil, validacion(MensajeProductoOCantidad)
	}

	var (
		d          *model.Domicilio
		stockFinal int
	)
	txErr := runTx(ctx, s.productos.DB(), func(tx *gorm.DB) error {
		p, err := s.productos.FindByIDForUpdateTx(tx, productoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validacion(MensajeProductoOCantidad)
			}
			return err
		}

		d = &model.Domicilio{
			ConductorResponsable: conductor,
			MatriculaVehiculo:    strings.TrimSpace(req.MatriculaVehiculo),
			Observaciones:        strings.TrimSpace(req.Observaciones),
			Producto:             p.Nombre,
			FechaRegistro:        s.ahora(),
		}
		if err := s.repo.CreateTx(tx, d); err != nil {
			return fmt.Errorf("crear domicilio: %w", err)
		}
		if err := s.productos.UpdateStockTx(tx, p.ID, -req.Cantidad); err != nil {
			return fmt.Errorf("descontar stock: %w", err)
		}
		if _, err := s.movimientos.RegistrarTx(tx, p.ID, model.MovimientoSalida, req.Cantidad, p.Precio, DescripcionDomicilio(conductor)); err != nil {
			return err
		}
		stockFinal = p.Stock - req.Cantidad
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().
		Str("domicilio_id", d.ID.String()).
		Str("producto", d.Producto).
		Int("cantidad", req.Cantidad).
		Int("stock", stockFinal).
		Msg("domicilio registrado")

	if stockFinal < 0 && s.notificador != nil {
		// Best-effort: the delivery is already committed
		if err := s.notificador.AlertarStockNegativo(ctx, d.Producto, stockFinal); err != nil {
			log.Warn().Err(err).Str("producto", d.Producto).Msg("no se pudo encolar alerta de stock")
		}
	}
	return d, nil
}

func (s *domicilioService) Listar(ctx context.Context) ([]model.Domicilio, error) {
	return s.repo.List(ctx)
}

func (s *domicilioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDomicilioNoEncontrado
	}
	return nil
}
