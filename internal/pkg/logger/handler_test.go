package logger

import (
	"bytes"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	l.InfoContext(WithTraceID(context.Background(), "abc"), "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "abc", record[TraceIDKey])
}

func TestTeeSkipsRemoteWithoutTraceID(t *testing.T) {
	var local, remote bytes.Buffer
	l := log.New(&ContextHandler{&TeeHandler{handlers: []log.Handler{
		log.NewJSONHandler(&local, nil),
		&RemoteFilterHandler{next: log.NewJSONHandler(&remote, nil)},
	}}})

	l.Info("startup")
	assert.Contains(t, local.String(), "startup")
	assert.Empty(t, remote.String())

	l.InfoContext(NewJobContext("job"), "tick")
	assert.Contains(t, remote.String(), "tick")
	assert.True(t, strings.Contains(remote.String(), `"trace_id":"job-`))
}

type brokenHandler struct {
	log.Handler
}

func (brokenHandler) Handle(context.Context, log.Record) error {
	return errors.New("connection reset")
}

func TestTeeKeepsWritingAfterFailure(t *testing.T) {
	var local bytes.Buffer
	tee := &TeeHandler{handlers: []log.Handler{
		brokenHandler{log.NewJSONHandler(&bytes.Buffer{}, nil)},
		log.NewJSONHandler(&local, nil),
	}}

	err := tee.Handle(context.Background(), log.NewRecord(time.Now(), log.LevelInfo, "still here", 0))
	assert.ErrorContains(t, err, "connection reset")
	assert.Contains(t, local.String(), "still here")
}

func TestTeeEnabledIfAnyHandlerIs(t *testing.T) {
	tee := &TeeHandler{handlers: []log.Handler{
		log.NewJSONHandler(&bytes.Buffer{}, &log.HandlerOptions{Level: log.LevelError}),
		log.NewJSONHandler(&bytes.Buffer{}, &log.HandlerOptions{Level: log.LevelDebug}),
	}}
	assert.True(t, tee.Enabled(context.Background(), log.LevelDebug))
}
