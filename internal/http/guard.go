package httpx

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	domainauth "github.com/target/finance-web/internal/domain/auth"
)

// Authenticator decides whether a request comes from a logged-in browser.
// Lookup failures count as "not authenticated"; the guard has no error path.
type Authenticator interface {
	Authenticate(r *http.Request) (*domainauth.Session, bool)
}

// FlagAuthenticator trusts the client-side login flag: the isAuthenticated
// cookie being present with any non-empty value.
type FlagAuthenticator struct{}

func (FlagAuthenticator) Authenticate(r *http.Request) (*domainauth.Session, bool) {
	c, err := r.Cookie(domainauth.FlagKey)
	if err != nil {
		return nil, false
	}
	return nil, c.Value != ""
}

// SessionLookup is the subset of the auth service the session guard needs.
type SessionLookup interface {
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

// SessionAuthenticator accepts a request whose session cookie names a live
// server-side session.
type SessionAuthenticator struct {
	Sessions SessionLookup
}

func (a SessionAuthenticator) Authenticate(r *http.Request) (*domainauth.Session, bool) {
	if a.Sessions == nil {
		return nil, false
	}
	c, err := r.Cookie(domainauth.SessionCookie)
	if err != nil || c.Value == "" {
		return nil, false
	}
	session, err := a.Sessions.GetSession(r.Context(), c.Value)
	if err != nil || session == nil {
		return nil, false
	}
	return session, true
}

// RequiresAuth reports whether any route in the matched chain is guarded.
func RequiresAuth(chain []Route) bool {
	for _, rt := range chain {
		if rt.RequiresAuth {
			return true
		}
	}
	return false
}

// Decision is the outcome of one guard check.
type Decision struct {
	Allow bool
	// RedirectTo is set when Allow is false.
	RedirectTo string
	// Session is set when a session-backed authenticator accepted the request.
	Session *domainauth.Session
}

// Guard is the navigation interceptor run before every matched route.
type Guard struct {
	Auth Authenticator
	// LoginPath defaults to "/".
	LoginPath string
}

// Check decides a navigation to the route at the end of chain.
func (g *Guard) Check(r *http.Request, chain []Route) Decision {
	if !RequiresAuth(chain) {
		return Decision{Allow: true}
	}

	auth := g.Auth
	if auth == nil {
		auth = FlagAuthenticator{}
	}
	if session, ok := auth.Authenticate(r); ok {
		return Decision{Allow: true, Session: session}
	}

	return Decision{RedirectTo: g.loginURL(redirectTarget(r, chain))}
}

func (g *Guard) loginURL(target string) string {
	login := g.LoginPath
	if login == "" {
		login = "/"
	}
	return login + "?" + loginRedirectParam + "=" + url.QueryEscape(target)
}

// redirectTarget is the path to return to after login. Non-GET navigations
// fall back to the nearest routable ancestor so the login lands on a page.
func redirectTarget(r *http.Request, chain []Route) string {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return r.URL.RequestURI()
	}
	full := ""
	target := "/"
	for _, rt := range chain {
		full = joinPath(full, rt.Path)
		if allowsGet(rt) {
			target = full
		}
	}
	return target
}

func allowsGet(rt Route) bool {
	for _, m := range rt.Methods {
		if m == http.MethodGet {
			return true
		}
	}
	return false
}

// Middleware applies Check to every request matched by the router. chains maps
// route names to their chains; unnamed or unknown routes are not guarded.
func (g *Guard) Middleware(chains map[string][]Route) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var chain []Route
			if route := mux.CurrentRoute(r); route != nil {
				chain = chains[route.GetName()]
			}

			d := g.Check(r, chain)
			if !d.Allow {
				http.Redirect(w, r, d.RedirectTo, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetSessionInContext(r.Context(), d.Session)))
		})
	}
}
