package financeapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody caps how much of a failed response is kept in memory.
const maxErrorBody = 1 << 20

// ResponseError is returned when the backend answers with a non-2xx status.
// It carries the raw response status, headers and body; nothing is translated.
type ResponseError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

// newResponseError snapshots resp into a ResponseError and closes its body.
func newResponseError(req *http.Request, resp *http.Response) *ResponseError {
	defer resp.Body.Close()

	// A read error keeps the partial body; the status is what callers branch on.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	return &ResponseError{
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header.Clone(),
		Body:       body,
	}
}

// StatusCode returns the backend status carried by err, if err is or wraps a ResponseError.
func StatusCode(err error) (int, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode, true
	}
	return 0, false
}
