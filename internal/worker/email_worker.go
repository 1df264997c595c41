package worker

// email_worker.go
// Sends the stock alert mails queued by the Dispatcher. Every send goes
// through the circuit breaker so a dead SMTP relay fails fast.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IMANOL01277/BollitoPy/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueAlertas.
type EmailJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Enviador delivers one plain-text message. *infra.Mailer implements it.
type Enviador interface {
	Enviar(to, subject, body string) error
}

type EmailWorker struct {
	mailer Enviador
	cb     *infra.CircuitBreaker
}

func NewEmailWorker(mailer Enviador, cb *infra.CircuitBreaker) *EmailWorker {
	return &EmailWorker{mailer: mailer, cb: cb}
}

// Process sends one alert. A returned error means the job should be parked
// in the DLQ.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("email_worker: invalid payload: %w", err)
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email, skipping")
		return nil
	}

	err := w.cb.Execute(func() error {
		return w.mailer.Enviar(payload.ToEmail, payload.Subject, payload.Body)
	})
	if errors.Is(err, infra.ErrCircuitOpen) {
		log.Warn().Str("to", payload.ToEmail).Msg("email_worker: circuit open, not sending")
		return err
	}
	if err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: failed to send email")
		return err
	}
	log.Info().Str("to", payload.ToEmail).Str("subject", payload.Subject).Msg("email_worker: alert sent")
	return nil
}
