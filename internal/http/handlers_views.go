package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/target/finance-web/internal/adapters/financeapi"
	"github.com/target/finance-web/internal/domain/finance"
	"github.com/target/finance-web/internal/service"
)

// FinanceServiceInterface is what the views need from the finance service.
type FinanceServiceInterface interface {
	Dashboard(ctx context.Context) (*service.Dashboard, error)
	Statistics(ctx context.Context) (*finance.Statistics, error)
	CreateRecord(ctx context.Context, record finance.Record) error
	UpdateRecord(ctx context.Context, id string, record finance.Record) error
	DeleteRecord(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

// ViewHandlers serves the guarded pages and their form actions.
type ViewHandlers struct {
	Finance  FinanceServiceInterface
	Auth     AuthServiceInterface
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

func (h *ViewHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Home renders the record list with the statistics summary.
// GET /home.
func (h *ViewHandlers) Home(w http.ResponseWriter, r *http.Request) {
	dash, err := h.Finance.Dashboard(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := NewTemplateData(r, PageMeta{Title: "Records", CurrentPage: PageHome}).
		With("Records", dash.Records).
		With("Statistics", dash.Statistics).
		Build()
	h.render(w, r, PageHome, data)
}

// Statistics renders the per-category totals.
// GET /statistics.
func (h *ViewHandlers) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Finance.Statistics(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := NewTemplateData(r, PageMeta{Title: "Statistics", CurrentPage: PageStatistics}).
		With("Statistics", stats).
		Build()
	h.render(w, r, PageStatistics, data)
}

// CreateRecord handles POST /home/records.
func (h *ViewHandlers) CreateRecord(w http.ResponseWriter, r *http.Request) {
	record, err := recordFromForm(r)
	if err != nil {
		h.renderError(w, r, badRequest(err))
		return
	}
	if err := h.Finance.CreateRecord(r.Context(), record); err != nil {
		h.renderError(w, r, err)
		return
	}
	redirectHome(w, r, "created")
}

// UpdateRecord handles POST /home/records/{id}.
func (h *ViewHandlers) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	record, err := recordFromForm(r)
	if err != nil {
		h.renderError(w, r, badRequest(err))
		return
	}
	if err := h.Finance.UpdateRecord(r.Context(), id, record); err != nil {
		h.renderError(w, r, err)
		return
	}
	redirectHome(w, r, "updated")
}

// DeleteRecord handles POST /home/records/{id}/delete.
func (h *ViewHandlers) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.Finance.DeleteRecord(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.renderError(w, r, err)
		return
	}
	redirectHome(w, r, "deleted")
}

// ClearAll handles POST /home/clear.
func (h *ViewHandlers) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Finance.ClearAll(r.Context()); err != nil {
		h.renderError(w, r, err)
		return
	}
	redirectHome(w, r, "cleared")
}

// ChangePassword handles POST /home/password. In session mode the username
// comes from the session; otherwise from the form.
func (h *ViewHandlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, badRequest(err))
		return
	}

	change := finance.PasswordChange{
		Username:    strings.TrimSpace(r.PostFormValue(formUsername)),
		OldPassword: r.PostFormValue(formOldPassword),
		NewPassword: r.PostFormValue(formNewPassword),
	}
	if session, ok := GetSessionFromContext(r.Context()); ok {
		change.Username = session.Username
	}
	if change.Username == "" || change.NewPassword == "" {
		h.renderError(w, r, badRequest(errors.New("username and new password are required")))
		return
	}

	if err := h.Auth.ChangePassword(r.Context(), change); err != nil {
		h.renderError(w, r, err)
		return
	}
	redirectHome(w, r, "password")
}

func redirectHome(w http.ResponseWriter, r *http.Request, done string) {
	http.Redirect(w, r, defaultAfterLogin+"?done="+done, http.StatusSeeOther)
}

// recordFromForm builds a record from the submitted form. Amounts are sent
// as JSON numbers; empty fields are omitted.
func recordFromForm(r *http.Request) (finance.Record, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}

	record := finance.Record{}
	for _, name := range []string{finance.FieldIncome, finance.FieldExpense} {
		raw := strings.TrimSpace(r.PostFormValue(name))
		if raw == "" {
			continue
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", name)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("%s must be non-negative", name)
		}
		record[name] = amountNumber(amount)
	}
	for _, name := range []string{finance.FieldCategory, finance.FieldDate, finance.FieldNotes} {
		if v := strings.TrimSpace(r.PostFormValue(name)); v != "" {
			record[name] = v
		}
	}
	return record, nil
}

// amountNumber keeps the exact decimal text while encoding as a JSON number.
func amountNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// requestError marks a failure caused by the browser's input rather than the backend.
type requestError struct{ err error }

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func badRequest(err error) error { return &requestError{err: err} }

// errorStatus maps a handler failure to the status of the rendered error page.
func errorStatus(err error) int {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return http.StatusBadRequest
	}
	if code, ok := financeapi.StatusCode(err); ok {
		if code >= http.StatusBadRequest && code < http.StatusInternalServerError {
			return code
		}
		return http.StatusBadGateway
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

func (h *ViewHandlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger().ErrorContext(r.Context(), "finance backend call failed",
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}

	data := NewTemplateData(r, PageMeta{Title: http.StatusText(status), CurrentPage: PageError}).
		With("Status", status).
		WithError(err.Error()).
		Build()
	if renderErr := h.Renderer.Render(w, status, PageError, data); renderErr != nil {
		http.Error(w, http.StatusText(status), status)
	}
}

func (h *ViewHandlers) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	if err := h.Renderer.Render(w, http.StatusOK, page, data); err != nil {
		h.logger().ErrorContext(r.Context(), "render page", slog.String("page", page), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
