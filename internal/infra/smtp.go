package infra

import (
	"fmt"
	"net/smtp"

	"github.com/IMANOL01277/BollitoPy/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for outgoing notifications.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Configurado is false when no SMTP host was given.
func (m *Mailer) Configurado() bool { return m.host != "" }

// Enviar sends a plain-text message.
func (m *Mailer) Enviar(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	if err := e.Send(m.addr, auth); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}
