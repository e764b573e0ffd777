package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContextAddsUserAndRequest(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx := ContextWithUserID(context.Background(), "user-123")
	ctx = ContextWithRequestID(ctx, "req-1")

	WithContext(ctx).WithField("group_id", "g-1").Info("created")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "user-123", entry.Data["user"])
	assert.Equal(t, "req-1", entry.Data["request_id"])
	assert.Equal(t, "g-1", entry.Data["group_id"])
}

func TestWithContextAnonymous(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	WithContext(context.Background()).WithError(errors.New("boom")).Warn("failed")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "anonymous", entry.Data["user"])
	assert.NotContains(t, entry.Data, "request_id")
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "boom")
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Equal(t, "abc", RequestIDFromContext(ContextWithRequestID(context.Background(), "abc")))
}
