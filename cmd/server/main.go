package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IMANOL01277/BollitoPy/internal/config"
	"github.com/IMANOL01277/BollitoPy/internal/infra"
	"github.com/IMANOL01277/BollitoPy/internal/repository"
	"github.com/IMANOL01277/BollitoPy/internal/router"
	"github.com/IMANOL01277/BollitoPy/internal/service"
	"github.com/IMANOL01277/BollitoPy/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger: pretty in dev, JSON in prod
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Alert mails: the dispatcher is handed to the delivery service, the
	// pool drains the queue through the SMTP circuit breaker.
	mailer := infra.NewMailer(cfg)
	destinatario := cfg.AlertasCorreo
	if !mailer.Configurado() && destinatario != "" {
		log.Warn().Msg("ALERTAS_CORREO set without SMTP_HOST; stock alerts disabled")
		destinatario = ""
	}
	dispatcher := worker.NewDispatcher(rdb, destinatario)
	emailWorker := worker.NewEmailWorker(mailer, infra.NewCircuitBreaker(infra.DefaultCBConfig()))
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, emailWorker)

	if cfg.ConciliacionIntervalMinutes > 0 {
		movimientos := service.NewMovimientoService(repository.NewMovimientoRepository(db), nil)
		worker.StartConciliacionCron(ctx, movimientos, time.Duration(cfg.ConciliacionIntervalMinutes)*time.Minute)
	}

	r := router.New(cfg, db, rdb, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Mi Bollito listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("redis close")
	}
	log.Info().Msg("server exited")
}
