package transport_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/logger"
	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/transport"
)

//nolint:paralleltest
func TestRoundTripper_RoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)

	now := time.Now().Format(time.DateOnly)

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "time" {
				return slog.Attr{Key: a.Key, Value: slog.StringValue(now)}
			}
			return a
		},
	})))

	var gotReqID, gotAPIKey string

	mux := http.NewServeMux()
	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get("X-Request-Id")
		gotAPIKey = r.Header.Get("X-Api-Key")
		_, _ = fmt.Fprintf(w, `{"message": "hello world"}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewRoundTripper(http.DefaultTransport, "secret"),
	}

	ctx := logger.WithRequestID(context.Background(), "req-42")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL+"/test", strings.NewReader(`{"data": "hi server"}`))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, "req-42", gotReqID)
	require.Equal(t, "secret", gotAPIKey)
	require.Empty(t, req.Header.Get("X-Api-Key"), "caller request must not be mutated")

	require.Equal(t,
		fmt.Sprintf(`{"time":"%s","level":"INFO","msg":"outgoing request","request":"POST %s/test"}
{"time":"%s","level":"INFO","msg":"incoming response","response":"POST %s/test","status":200}
`, now, server.URL, now, server.URL), buf.String())
}
