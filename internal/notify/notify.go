// Package notify fans push notifications out to the delivery worker over NATS.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quemjoga-backend/internal/logger"

	"github.com/nats-io/nats.go"
)

// Notification is the payload handed to the push delivery worker
type Notification struct {
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Tokens []string          `json:"tokens"`
	Data   map[string]string `json:"data,omitempty"`
}

// Conn is the subset of *nats.Conn used for publishing
type Conn interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes notifications as JSON messages on one subject
type NATSPublisher struct {
	conn    Conn
	subject string
}

// Connect dials the NATS server and returns a publisher for subject
func Connect(url, subject string) (*NATSPublisher, *nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("quemjoga-backend"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return NewNATSPublisher(nc, subject), nc, nil
}

// NewNATSPublisher wraps an existing connection
func NewNATSPublisher(conn Conn, subject string) *NATSPublisher {
	return &NATSPublisher{conn: conn, subject: subject}
}

// Notify publishes n. Notifications without device tokens are dropped.
func (p *NATSPublisher) Notify(ctx context.Context, n Notification) error {
	if len(n.Tokens) == 0 {
		return nil
	}

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"subject": p.subject,
		"devices": len(n.Tokens),
	}).Debug("notification published")
	return nil
}

// LogPublisher records notifications in the log when no broker is configured
type LogPublisher struct{}

// NewLogPublisher creates a log-only publisher
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

// Notify logs the notification
func (p *LogPublisher) Notify(ctx context.Context, n Notification) error {
	if len(n.Tokens) == 0 {
		return nil
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"title":   n.Title,
		"devices": len(n.Tokens),
	}).Info("notification not published, NATS not configured")
	return nil
}
