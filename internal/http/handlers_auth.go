package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/target/finance-web/internal/adapters/financeapi"
	domainauth "github.com/target/finance-web/internal/domain/auth"
	"github.com/target/finance-web/internal/domain/finance"
	"github.com/target/finance-web/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, creds finance.Credentials) (*service.LoginResult, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
	ChangePassword(ctx context.Context, change finance.PasswordChange) error
}

// AuthHandlers provides HTTP handlers for the login page and logout.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	Renderer     *TemplateRenderer
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login serves the login route. GET renders the form and is always allowed;
// POST submits the credentials to the backend.
// GET|POST /?redirect=<optional_path>.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.submitLogin(w, r)
		return
	}
	h.renderLogin(w, r, loginView{
		Status:   http.StatusOK,
		Redirect: r.URL.Query().Get(loginRedirectParam),
	})
}

type loginView struct {
	Status   int
	Redirect string
	Username string
	Error    string
}

func (h *AuthHandlers) renderLogin(w http.ResponseWriter, r *http.Request, v loginView) {
	data := NewTemplateData(r, PageMeta{Title: "Sign in", CurrentPage: PageLogin}).
		With("Redirect", v.Redirect).
		With("Username", v.Username).
		WithError(v.Error).
		Build()
	if err := h.Renderer.Render(w, v.Status, PageLogin, data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *AuthHandlers) submitLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, loginView{Status: http.StatusBadRequest, Error: "Malformed form submission."})
		return
	}

	redirect := r.PostFormValue(formRedirect)
	creds := finance.Credentials{
		Username: strings.TrimSpace(r.PostFormValue(formUsername)),
		Password: r.PostFormValue(formPassword),
	}
	view := loginView{Redirect: redirect, Username: creds.Username}

	if creds.Username == "" || creds.Password == "" {
		view.Status = http.StatusBadRequest
		view.Error = "Username and password are required."
		h.renderLogin(w, r, view)
		return
	}

	result, err := h.Svc.Login(r.Context(), creds)
	if err != nil {
		view.Status, view.Error = loginFailure(err)
		if view.Status >= http.StatusInternalServerError {
			h.logger().WarnContext(r.Context(), "login failed", "username", creds.Username, "error", err)
		}
		h.renderLogin(w, r, view)
		return
	}

	if result.Session != nil {
		setSessionCookie(w, r, *result.Session, h.CookieDomain)
	} else {
		setLoginFlag(w, r, h.CookieDomain)
	}

	http.Redirect(w, r, postLoginRedirect(redirect), http.StatusSeeOther)
}

func loginFailure(err error) (int, string) {
	if errors.Is(err, service.ErrInvalidCredentials) {
		return http.StatusUnauthorized, "Invalid username or password."
	}
	if code, ok := financeapi.StatusCode(err); ok && code < http.StatusInternalServerError {
		return code, "The finance service rejected the login."
	}
	return http.StatusBadGateway, "The finance service is unavailable. Try again later."
}

// Logout clears the login flag and any server-side session.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie(domainauth.SessionCookie); err == nil && sessionCookie.Value != "" {
		if logoutErr := h.Svc.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	clearCookie(w, r, domainauth.SessionCookie, h.CookieDomain)
	clearCookie(w, r, domainauth.FlagKey, h.CookieDomain)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// postLoginRedirect picks the landing page after a successful login.
func postLoginRedirect(candidate string) string {
	target := safeRedirectPath(candidate)
	if target == "/" {
		return defaultAfterLogin
	}
	return target
}

// safeRedirectPath allows only same-origin relative paths.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(candidate, "//") {
		return "/"
	}
	return candidate
}
