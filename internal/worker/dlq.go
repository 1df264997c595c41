package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DLQPrefix namespaces the dead letter list of each queue: dlq:{cola}.
const DLQPrefix = "dlq:"

// JobFallido is what lands in the dead letter list. The original job is kept
// verbatim so it can be re-pushed by hand once the cause is fixed.
type JobFallido struct {
	Cola      string `json:"cola"`
	Job       Job    `json:"job"`
	Motivo    string `json:"motivo"`
	FallidoEn string `json:"fallido_en"` // RFC 3339, UTC
}

// SendToDLQ parks a job that could not be processed. Push errors are only
// logged: the worker has nowhere else to put the job.
func SendToDLQ(ctx context.Context, cola Cola, queue string, job Job, motivo error) {
	data, err := json.Marshal(JobFallido{
		Cola:      queue,
		Job:       job,
		Motivo:    motivo.Error(),
		FallidoEn: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: no se pudo serializar el job")
		return
	}

	key := DLQPrefix + queue
	if err := cola.LPush(ctx, key, data).Err(); err != nil {
		log.Error().Err(err).Str("dlq_key", key).Str("job_type", job.Type).Msg("dlq: push fallido, job perdido")
		return
	}
	log.Warn().Str("queue", queue).Str("job_type", job.Type).AnErr("motivo", motivo).Msg("dlq: job movido a la cola de fallidos")
}

// DLQLength returns the number of entries in a DLQ; /health reports it.
func DLQLength(ctx context.Context, rdb redis.Cmdable, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}
