package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/logger"
)

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := slog.New(&logger.Handler{Handler: slog.NewJSONHandler(buf, nil)}).With("service", "test")

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithRunID(ctx, "run-1")

	l.InfoContext(ctx, "hello")

	var rec map[string]any

	err := json.Unmarshal(buf.Bytes(), &rec)
	require.NoError(t, err)
	require.Equal(t, "req-1", rec["request_id"])
	require.Equal(t, "run-1", rec["run_id"])
	require.Equal(t, "test", rec["service"])
	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))
	require.Empty(t, logger.RequestIDFromCtx(context.Background()))
}

func TestNew_UnknownLevel(t *testing.T) { //nolint:paralleltest
	_, err := logger.New("loud", "json")
	require.Error(t, err)

	_, err = logger.New("info", "xml")
	require.Error(t, err)
}
