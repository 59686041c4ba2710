package financeapi

// Package financeapi is the HTTP client for the finance backend REST API.
// It maps one method onto one request and hands back the raw response.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the backend root used when Options.BaseURL is empty.
const DefaultBaseURL = "http://localhost:8080/api"

const (
	pathFinance        = "/finance"
	pathStatistics     = "/finance/statistics"
	pathClear          = "/finance/clear"
	pathLogin          = "/users/login"
	pathChangePassword = "/users/change-password"

	contentTypeJSON = "application/json"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the backend root, e.g. "http://localhost:8080/api". Defaults to DefaultBaseURL.
	BaseURL string
	// HTTPClient performs the requests. Defaults to a zero http.Client (no timeout).
	HTTPClient *http.Client
	// Logger, when set, logs every request at debug level.
	Logger *slog.Logger
}

// Client issues requests against the finance backend. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient validates the base URL and constructs a Client.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", base)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	if opts.Logger != nil {
		wrapped := *hc
		wrapped.Transport = newLoggingTransport(hc.Transport, opts.Logger)
		hc = &wrapped
	}

	return &Client{baseURL: u.String(), http: hc}, nil
}

// BaseURL returns the backend root the client sends requests to.
func (c *Client) BaseURL() string { return c.baseURL }

// GetAllRecords issues GET /finance.
func (c *Client) GetAllRecords(ctx context.Context) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, pathFinance, nil)
}

// GetRecord issues GET /finance/{id}.
func (c *Client) GetRecord(ctx context.Context, id any) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, recordPath(id), nil)
}

// CreateRecord issues POST /finance with record as the JSON body.
func (c *Client) CreateRecord(ctx context.Context, record any) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, pathFinance, jsonBody{record})
}

// UpdateRecord issues PUT /finance/{id} with record as the JSON body.
func (c *Client) UpdateRecord(ctx context.Context, id, record any) (*http.Response, error) {
	return c.do(ctx, http.MethodPut, recordPath(id), jsonBody{record})
}

// DeleteRecord issues DELETE /finance/{id}.
func (c *Client) DeleteRecord(ctx context.Context, id any) (*http.Response, error) {
	return c.do(ctx, http.MethodDelete, recordPath(id), nil)
}

// GetStatistics issues GET /finance/statistics.
func (c *Client) GetStatistics(ctx context.Context) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, pathStatistics, nil)
}

// ClearAllData issues DELETE /finance/clear.
func (c *Client) ClearAllData(ctx context.Context) (*http.Response, error) {
	return c.do(ctx, http.MethodDelete, pathClear, nil)
}

// Login issues POST /users/login with credentials as the JSON body.
func (c *Client) Login(ctx context.Context, credentials any) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, pathLogin, jsonBody{credentials})
}

// ChangePassword issues POST /users/change-password with passwordData as the JSON body.
func (c *Client) ChangePassword(ctx context.Context, passwordData any) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, pathChangePassword, jsonBody{passwordData})
}

// jsonBody marks a payload to encode, even a nil one; requests passing a bare nil send no body.
type jsonBody struct{ v any }

func recordPath(id any) string {
	return pathFinance + "/" + url.PathEscape(fmt.Sprint(id))
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if b, ok := body.(jsonBody); ok {
		data, err := json.Marshal(b.v)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newResponseError(req, resp)
	}
	return resp, nil
}

// DecodeJSON decodes the response body into dst and closes it.
func DecodeJSON(resp *http.Response, dst any) error {
	if resp == nil || resp.Body == nil {
		return errors.New("decode response: no body")
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// DiscardBody drains and closes the response body so the connection can be reused.
func DiscardBody(resp *http.Response) error {
	if resp == nil || resp.Body == nil {
		return nil
	}
	_, copyErr := io.Copy(io.Discard, resp.Body)
	closeErr := resp.Body.Close()
	return errors.Join(copyErr, closeErr)
}
