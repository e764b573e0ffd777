package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConn struct {
	subject string
	data    []byte
	err     error
	calls   int
}

func (c *recordingConn) Publish(subject string, data []byte) error {
	c.calls++
	c.subject = subject
	c.data = data
	return c.err
}

func TestNATSPublisherPublishesJSON(t *testing.T) {
	conn := &recordingConn{}
	p := NewNATSPublisher(conn, "quemjoga.notifications")

	err := p.Notify(context.Background(), Notification{
		Title:  "Nova partida",
		Body:   "Sábado 10:00",
		Tokens: []string{"tok-1", "tok-2"},
		Data:   map[string]string{"match_id": "m-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "quemjoga.notifications", conn.subject)

	var got Notification
	require.NoError(t, json.Unmarshal(conn.data, &got))
	assert.Equal(t, "Nova partida", got.Title)
	assert.Equal(t, []string{"tok-1", "tok-2"}, got.Tokens)
	assert.Equal(t, "m-1", got.Data["match_id"])
}

func TestNATSPublisherSkipsEmptyTokens(t *testing.T) {
	conn := &recordingConn{}
	p := NewNATSPublisher(conn, "subj")

	require.NoError(t, p.Notify(context.Background(), Notification{Title: "x"}))
	assert.Zero(t, conn.calls)
}

func TestNATSPublisherWrapsError(t *testing.T) {
	conn := &recordingConn{err: errors.New("nats: connection closed")}
	p := NewNATSPublisher(conn, "subj")

	err := p.Notify(context.Background(), Notification{Tokens: []string{"t"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection closed")
}

func TestLogPublisher(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	require.NoError(t, NewLogPublisher().Notify(context.Background(), Notification{Title: "Pagamento aprovado", Tokens: []string{"t"}}))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Pagamento aprovado", entry.Data["title"])
	assert.Equal(t, 1, entry.Data["devices"])
}
