package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/logger"
)

// RoundTripper forwards the request id and API key of outgoing calls and logs them.
type RoundTripper struct {
	Transport http.RoundTripper
	APIKey    string
}

func NewRoundTripper(transport http.RoundTripper, apiKey string) *RoundTripper {
	return &RoundTripper{Transport: transport, APIKey: apiKey}
}

func (t *RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	r = r.Clone(ctx)

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	if t.APIKey != "" {
		r.Header.Set("X-Api-Key", t.APIKey)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := t.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()), "status", resp.StatusCode)

	return resp, nil
}
