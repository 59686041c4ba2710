package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/target/finance-web/config"
	"github.com/target/finance-web/internal/adapters/financeapi"
)

// BuildFinanceClient creates the backend client. A zero timeout leaves
// requests bounded only by their context. FINANCE_API_DEBUG logs every call.
func BuildFinanceClient(cfg config.APIConfig, logger *slog.Logger) (*financeapi.Client, error) {
	opts := financeapi.Options{
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.Debug {
		opts.Logger = logger
	}

	client, err := financeapi.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("build finance client: %w", err)
	}
	return client, nil
}
