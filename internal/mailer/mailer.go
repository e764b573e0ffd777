// Package mailer delivers transactional email such as password reset links.
package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"quemjoga-backend/internal/config"
	"quemjoga-backend/internal/logger"
)

// SendFunc matches smtp.SendMail
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends mail over SMTP or logs it when no server is configured
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	send     SendFunc
}

// New creates a mailer from the application configuration
func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		send:     smtp.SendMail,
	}
}

// WithSendFunc replaces the SMTP transport, mainly for tests
func (m *Mailer) WithSendFunc(send SendFunc) *Mailer {
	m.send = send
	return m
}

// Enabled reports whether an SMTP server is configured
func (m *Mailer) Enabled() bool {
	return m.host != ""
}

// SendPasswordReset mails the reset link to the given address
func (m *Mailer) SendPasswordReset(ctx context.Context, to, name, link string) error {
	log := logger.WithContext(ctx).WithField("to", to)

	if !m.Enabled() {
		log.WithField("link", link).Info("SMTP not configured, password reset link logged instead of mailed")
		return nil
	}

	subject := "Redefinição de senha"
	body := fmt.Sprintf("Olá %s,\n\nPara redefinir sua senha acesse o link abaixo:\n\n%s\n\nSe você não pediu a redefinição, ignore este e-mail.\n", name, link)

	if err := m.sendMessage(to, subject, body); err != nil {
		log.WithError(err).Error("Failed to send password reset email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info("Password reset email sent")
	return nil
}

func (m *Mailer) sendMessage(to, subject, body string) error {
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))
	return m.send(addr, auth, m.from, []string{to}, buildMessage(m.from, to, subject, body))
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}
