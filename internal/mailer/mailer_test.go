package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"quemjoga-backend/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPasswordResetLogsWhenDisabled(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	m := New(&config.Config{SMTPFrom: "no-reply@quemjoga.app"})
	m.WithSendFunc(func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called without an SMTP host")
		return nil
	})

	require.NoError(t, m.SendPasswordReset(context.Background(), "ana@example.com", "Ana", "http://app/reset?token=abc"))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "http://app/reset?token=abc", entry.Data["link"])
	assert.Equal(t, "ana@example.com", entry.Data["to"])
}

func TestSendPasswordResetUsesSMTP(t *testing.T) {
	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  string
		gotAuth smtp.Auth
	)

	m := New(&config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     2525,
		SMTPUser:     "mailer",
		SMTPPassword: "secret",
		SMTPFrom:     "no-reply@quemjoga.app",
	})
	m.WithSendFunc(func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, string(msg)
		return nil
	})

	require.NoError(t, m.SendPasswordReset(context.Background(), "ana@example.com", "Ana", "http://app/reset?token=abc"))

	assert.Equal(t, "smtp.example.com:2525", gotAddr)
	assert.NotNil(t, gotAuth)
	assert.Equal(t, "no-reply@quemjoga.app", gotFrom)
	assert.Equal(t, []string{"ana@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "To: ana@example.com\r\n")
	assert.Contains(t, gotMsg, "http://app/reset?token=abc")
}

func TestSendPasswordResetWrapsTransportError(t *testing.T) {
	m := New(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: 25})
	m.WithSendFunc(func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	})

	err := m.SendPasswordReset(context.Background(), "ana@example.com", "Ana", "link")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
