package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/target/finance-web/internal/adapters/financeapi"
	"github.com/target/finance-web/internal/adapters/memory"
	domainauth "github.com/target/finance-web/internal/domain/auth"
	"github.com/target/finance-web/internal/mocks"
	"github.com/target/finance-web/internal/service"
	"go.uber.org/mock/gomock"
)

// testEnv bundles a router wired to real services over a mocked backend.
type testEnv struct {
	API      *mocks.MockFinanceAPI
	Sessions *memory.SessionStore
	Auth     *service.AuthService
	Handler  http.Handler
}

type envOptions struct {
	SessionMode bool
	Now         func() time.Time
}

func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockFinanceAPI(ctrl)

	env := &testEnv{API: api}
	authOpts := service.AuthServiceOptions{API: api, Now: opts.Now}
	var authenticator Authenticator = FlagAuthenticator{}
	if opts.SessionMode {
		env.Sessions = memory.NewSessionStore()
		authOpts.Sessions = env.Sessions
	}
	env.Auth = service.NewAuthService(authOpts)
	if opts.SessionMode {
		authenticator = SessionAuthenticator{Sessions: env.Auth}
	}

	h, err := NewRouter(RouterServices{
		Auth:          env.Auth,
		Finance:       service.NewFinanceService(service.FinanceServiceOptions{API: api}),
		Authenticator: authenticator,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	env.Handler = h
	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.Handler.ServeHTTP(rec, req)
	return rec
}

func flagCookie(value string) *http.Cookie {
	return &http.Cookie{Name: domainauth.FlagKey, Value: value}
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// jsonResponse builds a 200 response carrying body, the way the API client hands it back.
func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func backendError(code int) error {
	return &financeapi.ResponseError{
		Method:     http.MethodGet,
		URL:        "http://backend/api/finance",
		StatusCode: code,
		Status:     http.StatusText(code),
	}
}

// redirectQuery returns the redirect query value of a login redirect.
func redirectQuery(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "/", loc.Path, "guard must redirect to the login route")
	return loc.Query().Get(loginRedirectParam)
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

const statsJSON = `{
	"totalIncome": 5000,
	"totalExpense": 1200.5,
	"balance": 3799.5,
	"incomeByCategory": [{"category": "Salary", "total": 5000}],
	"expenseByCategory": [{"category": "Food", "total": 1200.5}]
}`

const recordsJSON = `[
	{"id": 1, "category": "Salary", "income": 5000, "recordDate": "2024-03-01"},
	{"id": 2, "category": "Food", "expense": 1200.5, "notes": "groceries"}
]`
