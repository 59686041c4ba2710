package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/target/finance-web/internal/domain/auth"
	"go.uber.org/mock/gomock"
)

func TestRoutes_Table(t *testing.T) {
	routes := Routes()
	require.Len(t, routes, 3)

	assert.Equal(t, RouteLogin, routes[0].Name)
	assert.Equal(t, "/", routes[0].Path)
	assert.False(t, routes[0].RequiresAuth)

	assert.Equal(t, RouteHome, routes[1].Name)
	assert.Equal(t, "/home", routes[1].Path)
	assert.True(t, routes[1].RequiresAuth)

	assert.Equal(t, RouteStatistics, routes[2].Name)
	assert.Equal(t, "/statistics", routes[2].Path)
	assert.True(t, routes[2].RequiresAuth)

	routes[1].RequiresAuth = false
	assert.True(t, Routes()[1].RequiresAuth, "Routes must return a fresh copy")
}

func TestFlatten_ChildrenInheritChain(t *testing.T) {
	byName := map[string]MatchedRoute{}
	for _, mr := range Flatten(Routes()) {
		byName[mr.Name] = mr
	}

	del, ok := byName[RouteRecordDelete]
	require.True(t, ok)
	assert.Equal(t, "/home/records/{id}/delete", del.FullPath)
	assert.False(t, del.RequiresAuth, "the child itself declares nothing")
	require.Len(t, del.Chain, 2)
	assert.Equal(t, RouteHome, del.Chain[0].Name)
	assert.True(t, RequiresAuth(del.Chain))

	login := byName[RouteLogin]
	assert.Equal(t, "/", login.FullPath)
	assert.False(t, RequiresAuth(login.Chain))
}

func TestNewRouter_NamedRoutes(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	r, ok := env.Handler.(*mux.Router)
	require.True(t, ok)

	for name, want := range map[string]string{
		RouteLogin:      "/",
		RouteHome:       "/home",
		RouteStatistics: "/statistics",
	} {
		route := r.Get(name)
		require.NotNil(t, route, name)
		u, err := route.URLPath()
		require.NoError(t, err)
		assert.Equal(t, want, u.Path)
	}

	u, err := r.Get(RouteRecordUpdate).URLPath("id", "7")
	require.NoError(t, err)
	assert.Equal(t, "/home/records/7", u.Path)
}

func TestGuard_LoginAlwaysAllowed(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	for _, cookie := range []*http.Cookie{nil, flagCookie("true"), flagCookie("")} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rec := env.do(req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sign in")
	}
}

func TestGuard_StatisticsWithoutFlagRedirects(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	rec := env.do(httptest.NewRequest(http.MethodGet, "/statistics", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/statistics", redirectQuery(t, rec))
}

func TestGuard_KeepsFullPathInRedirect(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	rec := env.do(httptest.NewRequest(http.MethodGet, "/home?done=created", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/home?done=created", redirectQuery(t, rec))
}

func TestGuard_HomeWithFlagPasses(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.API.EXPECT().GetAllRecords(gomock.Any()).Return(jsonResponse(recordsJSON), nil)
	env.API.EXPECT().GetStatistics(gomock.Any()).Return(jsonResponse(statsJSON), nil)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(flagCookie("true"))
	rec := env.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Records")
}

func TestGuard_AnyNonEmptyFlagValuePasses(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.API.EXPECT().GetStatistics(gomock.Any()).Return(jsonResponse(statsJSON), nil)

	req := httptest.NewRequest(http.MethodGet, "/statistics", nil)
	req.AddCookie(flagCookie("false"))
	rec := env.do(req)

	assert.Equal(t, http.StatusOK, rec.Code, "the flag value is never inspected")
}

func TestGuard_EmptyFlagRedirects(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(flagCookie(""))
	rec := env.do(req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/home", redirectQuery(t, rec))
}

func TestGuard_NestedChildIsGuarded(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	for _, target := range []string{"/home/records", "/home/records/7", "/home/records/7/delete", "/home/clear", "/home/password"} {
		rec := env.do(httptest.NewRequest(http.MethodPost, target, nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code, target)
		assert.Equal(t, "/home", redirectQuery(t, rec), target)
	}
}

func TestGuard_UnmatchedRoutesAreNotGuarded(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	rec := env.do(httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuard_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	rec := env.do(httptest.NewRequest(http.MethodDelete, "/statistics", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGuard_SessionMode(t *testing.T) {
	now := time.Now()
	env := newTestEnv(t, envOptions{SessionMode: true, Now: func() time.Time { return now }})
	require.NoError(t, env.Sessions.Save(context.Background(), domainauth.Session{
		ID:        "live",
		Username:  "admin",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}))

	t.Run("valid session passes", func(t *testing.T) {
		env.API.EXPECT().GetStatistics(gomock.Any()).Return(jsonResponse(statsJSON), nil)
		req := httptest.NewRequest(http.MethodGet, "/statistics", nil)
		req.AddCookie(&http.Cookie{Name: domainauth.SessionCookie, Value: "live"})
		rec := env.do(req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "admin")
	})

	t.Run("unknown session redirects", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/statistics", nil)
		req.AddCookie(&http.Cookie{Name: domainauth.SessionCookie, Value: "forged"})
		rec := env.do(req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/statistics", redirectQuery(t, rec))
	})

	t.Run("flag cookie alone is not enough", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/home", nil)
		req.AddCookie(flagCookie("true"))
		rec := env.do(req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestGuard_SessionModeExpired(t *testing.T) {
	created := time.Now()
	later := created.Add(2 * time.Hour)
	env := newTestEnv(t, envOptions{SessionMode: true, Now: func() time.Time { return later }})
	require.NoError(t, env.Sessions.Save(context.Background(), domainauth.Session{
		ID:        "stale",
		Username:  "admin",
		CreatedAt: created,
		ExpiresAt: created.Add(time.Hour),
	}))

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: domainauth.SessionCookie, Value: "stale"})
	rec := env.do(req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/home", redirectQuery(t, rec))
	assert.Equal(t, 0, env.Sessions.Len(), "expired session is cleaned up")
}
