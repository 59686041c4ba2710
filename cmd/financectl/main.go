package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/subcommands"
	jmespath "github.com/jmespath-community/go-jmespath"
	"github.com/target/finance-web/internal/adapters/financeapi"
	"github.com/target/finance-web/internal/bootstrap"
	"github.com/target/finance-web/internal/service"
	"golang.org/x/net/publicsuffix"
)

const defaultTimeout = 30 * time.Second

// cli holds what every command shares: IO, the backend client and the services over it.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	logger *slog.Logger

	baseURL string
	timeout time.Duration
	debug   bool

	auth    *service.AuthService
	finance *service.FinanceService
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr)) //nolint:forbidigo // CLI exit status
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{
		stdin:  stdin,
		stdout: stdout,
		logger: bootstrap.NewLoggerTo(stderr, false),
	}

	cfg, err := bootstrap.LoadAPIConfig()
	if err != nil {
		c.logger.ErrorContext(ctx, "load config", "error", err)
		return int(subcommands.ExitFailure)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	name := path.Base(args[0])
	top := flag.NewFlagSet(name, flag.ContinueOnError)
	top.SetOutput(stderr)
	top.StringVar(&c.baseURL, "base-url", cfg.BaseURL, "finance backend root (FINANCE_API_BASE_URL)")
	top.DurationVar(&c.timeout, "timeout", timeout, "per-request timeout (FINANCE_API_TIMEOUT), 0 disables it")
	top.BoolVar(&c.debug, "debug", cfg.Debug, "log every backend request (FINANCE_API_DEBUG)")

	commander := subcommands.NewCommander(top, name)
	commander.Output = stdout
	commander.Error = stderr
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, cmd := range commands(c) {
		commander.Register(cmd, "finance")
	}

	if err := top.Parse(args[1:]); err != nil {
		return int(subcommands.ExitUsageError)
	}
	if c.debug {
		c.logger = bootstrap.NewLoggerTo(stderr, true)
	}
	if top.NArg() > 0 && !isBuiltin(top.Arg(0)) {
		if err := c.connect(); err != nil {
			c.logger.ErrorContext(ctx, "build client", "error", err)
			return int(subcommands.ExitFailure)
		}
	}
	return int(commander.Execute(ctx))
}

func isBuiltin(name string) bool {
	switch name {
	case "help", "commands", "flags":
		return true
	}
	return false
}

// connect builds the backend client. The cookie jar keeps backend session
// cookies for the lifetime of the process.
func (c *cli) connect() error {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return fmt.Errorf("create cookie jar: %w", err)
	}
	opts := financeapi.Options{
		BaseURL:    c.baseURL,
		HTTPClient: &http.Client{Timeout: c.timeout, Jar: jar},
	}
	if c.debug {
		opts.Logger = c.logger
	}

	client, err := financeapi.NewClient(opts)
	if err != nil {
		return err
	}
	c.auth = service.NewAuthService(service.AuthServiceOptions{API: client})
	c.finance = service.NewFinanceService(service.FinanceServiceOptions{API: client})
	return nil
}

// fail logs err and maps it onto an exit status.
func (c *cli) fail(ctx context.Context, cmd string, err error) subcommands.ExitStatus {
	if errors.Is(err, errUsage) {
		c.logger.ErrorContext(ctx, "invalid usage", "command", cmd, "error", err)
		return subcommands.ExitUsageError
	}
	c.logger.ErrorContext(ctx, "command failed", "command", cmd, "error", err)
	return subcommands.ExitFailure
}

// emit writes v as indented JSON, filtered through query when one is given.
func (c *cli) emit(v any, query string) error {
	if q := strings.TrimSpace(query); q != "" {
		generic, err := toGeneric(v)
		if err != nil {
			return err
		}
		v, err = jmespath.Search(q, generic)
		if err != nil {
			return fmt.Errorf("query %q: %w", q, err)
		}
	}
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// toGeneric round-trips v through JSON so typed values become maps and slices.
func toGeneric(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}
	return out, nil
}
