package httpx

import (
	"net/http"
	"strings"
	"time"

	domainauth "github.com/target/finance-web/internal/domain/auth"
)

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// cookieParams groups the values needed to set a browser cookie.
type cookieParams struct {
	Name    string
	Value   string
	Domain  string
	Expires time.Time // zero means a browser-session cookie
}

func setCookie(w http.ResponseWriter, r *http.Request, p cookieParams) {
	c := &http.Cookie{
		Name:     p.Name,
		Value:    p.Value,
		Path:     "/",
		Domain:   p.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
	if !p.Expires.IsZero() {
		c.Expires = p.Expires.UTC()
	}
	http.SetCookie(w, c)
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors the attributes used when setting cookies so browsers match it.
func clearCookie(w http.ResponseWriter, r *http.Request, name, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// setLoginFlag writes the client-side login flag. It has no expiry.
func setLoginFlag(w http.ResponseWriter, r *http.Request, domain string) {
	setCookie(w, r, cookieParams{Name: domainauth.FlagKey, Value: domainauth.FlagValue, Domain: domain})
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, session domainauth.Session, domain string) {
	setCookie(w, r, cookieParams{
		Name:    domainauth.SessionCookie,
		Value:   session.ID,
		Domain:  domain,
		Expires: session.ExpiresAt,
	})
}
