package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueAlertas = "jobs:alertas"

	JobEmail = "email"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Cola is the part of the Redis client used to push jobs.
type Cola interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	cola         Cola
	destinatario string // empty = alerts disabled
}

func NewDispatcher(cola Cola, destinatario string) *Dispatcher {
	return &Dispatcher{cola: cola, destinatario: destinatario}
}

// AlertarStockNegativo queues an e-mail telling the configured address that
// a delivery left a product below zero.
func (d *Dispatcher) AlertarStockNegativo(ctx context.Context, producto string, stock int) error {
	if d.destinatario == "" {
		return nil
	}
	return d.enqueue(ctx, QueueAlertas, JobEmail, EmailJobPayload{
		ToEmail: d.destinatario,
		Subject: fmt.Sprintf("Stock negativo: %s", producto),
		Body: fmt.Sprintf(
			"El producto %q quedó con stock %d después de registrar un domicilio.\n"+
				"Revisa el inventario y registra la entrada correspondiente.", producto, stock),
	})
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.cola.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the alert queue.
// Each goroutine blocks on BRPOP, so idle workers cost nothing.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, email *EmailWorker) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i, email)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, email *EmailWorker) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop: waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueAlertas).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, email, result[0], result[1])
		}
	}
}

// processJob runs one job; failures go straight to the dead letter queue.
func processJob(ctx context.Context, dlq Cola, email *EmailWorker, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		crudo, _ := json.Marshal(raw)
		SendToDLQ(ctx, dlq, queue, Job{Type: "desconocido", Payload: crudo}, fmt.Errorf("payload ilegible: %w", err))
		return
	}

	var err error
	switch job.Type {
	case JobEmail:
		err = email.Process(ctx, job.Payload)
	default:
		err = fmt.Errorf("tipo de job desconocido %q", job.Type)
	}
	if err != nil {
		SendToDLQ(ctx, dlq, queue, job, err)
		return
	}
	log.Debug().Str("type", job.Type).Str("queue", queue).Msg("job processed")
}
