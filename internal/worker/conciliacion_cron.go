package worker

// conciliacion_cron.go
// Background goroutine that periodically compares each product's stock with
// its ledger balance and logs every drift it finds. It never writes.

import (
	"context"
	"time"

	"github.com/IMANOL01277/BollitoPy/internal/dto"

	"github.com/rs/zerolog/log"
)

// Conciliador is satisfied by service.MovimientoService.
type Conciliador interface {
	Conciliar(ctx context.Context) ([]dto.DesviacionStock, error)
}

// StartConciliacionCron runs an audit every interval until ctx is cancelled.
func StartConciliacionCron(ctx context.Context, svc Conciliador, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Info().Dur("interval", interval).Msg("conciliacion_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("conciliacion_cron: shutting down")
				return
			case <-ticker.C:
				auditar(ctx, svc)
			}
		}
	}()
}

// auditar runs one pass and returns the number of drifting products.
func auditar(ctx context.Context, svc Conciliador) int {
	desvios, err := svc.Conciliar(ctx)
	if err != nil {
		log.Error().Err(err).Msg("conciliacion_cron: audit failed")
		return 0
	}
	for _, d := range desvios {
		log.Warn().
			Str("producto_id", d.IDProducto).
			Str("producto", d.Producto).
			Int("stock", d.StockActual).
			Int("stock_ledger", d.StockLedger).
			Int("diferencia", d.Diferencia).
			Msg("conciliacion_cron: stock drift")
	}
	return len(desvios)
}
