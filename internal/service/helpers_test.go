package service

import (
	"io"
	"net/http"
	"strings"

	"github.com/target/finance-web/internal/adapters/financeapi"
)

// jsonResponse builds a 200 response carrying body, the way the API client hands it back.
func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func responseError(code int) error {
	return &financeapi.ResponseError{
		Method:     http.MethodPost,
		URL:        "http://backend/api",
		StatusCode: code,
		Status:     http.StatusText(code),
	}
}
