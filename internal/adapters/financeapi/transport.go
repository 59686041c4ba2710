package financeapi

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport logs each backend round trip at debug level.
type loggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

func newLoggingTransport(base http.RoundTripper, logger *slog.Logger) *loggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &loggingTransport{base: base, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.DebugContext(req.Context(), "finance api request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)
		return nil, err
	}

	t.logger.DebugContext(req.Context(), "finance api",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)
	return resp, nil
}
