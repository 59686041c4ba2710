package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	financeweb "github.com/target/finance-web"
)

// Names of the routes in the navigation table.
const (
	RouteLogin      = "login"
	RouteHome       = "home"
	RouteStatistics = "statistics"

	RouteRecordCreate   = "home.records.create"
	RouteRecordUpdate   = "home.records.update"
	RouteRecordDelete   = "home.records.delete"
	RouteClearAll       = "home.clear"
	RouteChangePassword = "home.password"
)

// Route is one entry of the navigation table.
// Child paths are relative to their parent; a child is guarded whenever any
// ancestor declares RequiresAuth.
type Route struct {
	Name         string
	Path         string
	Methods      []string
	RequiresAuth bool
	Children     []Route
}

// Routes returns the navigation table. The returned slice is a fresh copy.
func Routes() []Route {
	return []Route{
		{Name: RouteLogin, Path: "/", Methods: []string{http.MethodGet, http.MethodHead, http.MethodPost}},
		{
			Name:         RouteHome,
			Path:         "/home",
			Methods:      []string{http.MethodGet, http.MethodHead},
			RequiresAuth: true,
			Children: []Route{
				{Name: RouteRecordCreate, Path: "/records", Methods: []string{http.MethodPost}},
				{Name: RouteRecordUpdate, Path: "/records/{id}", Methods: []string{http.MethodPost}},
				{Name: RouteRecordDelete, Path: "/records/{id}/delete", Methods: []string{http.MethodPost}},
				{Name: RouteClearAll, Path: "/clear", Methods: []string{http.MethodPost}},
				{Name: RouteChangePassword, Path: "/password", Methods: []string{http.MethodPost}},
			},
		},
		{Name: RouteStatistics, Path: "/statistics", Methods: []string{http.MethodGet, http.MethodHead}, RequiresAuth: true},
	}
}

// MatchedRoute is a flattened Route with its full path and the chain of
// routes from the root of the table down to itself.
type MatchedRoute struct {
	Route
	FullPath string
	Chain    []Route
}

// Flatten walks the table depth-first, parents before children.
func Flatten(routes []Route) []MatchedRoute {
	var out []MatchedRoute
	var walk func(rs []Route, prefix string, parents []Route)
	walk = func(rs []Route, prefix string, parents []Route) {
		for _, rt := range rs {
			full := joinPath(prefix, rt.Path)
			chain := append(append([]Route(nil), parents...), rt)
			out = append(out, MatchedRoute{Route: rt, FullPath: full, Chain: chain})
			walk(rt.Children, full, chain)
		}
	}
	walk(routes, "", nil)
	return out
}

func joinPath(prefix, p string) string {
	switch {
	case prefix == "" || prefix == "/":
		return p
	case p == "" || p == "/":
		return prefix
	default:
		return prefix + p
	}
}

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth          AuthServiceInterface
	Finance       FinanceServiceInterface
	Authenticator Authenticator
	CookieDomain  string
	// TemplateFS overrides the page templates; defaults to the embedded set.
	TemplateFS fs.FS
	IsDev      bool         // Development mode: templates are read from disk
	Logger     *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter builds the gorilla/mux router: every table route is registered by
// name, and the navigation guard runs before any matched handler.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS(services),
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Renderer:     renderer,
		Logger:       logger,
	}
	viewHandlers := &ViewHandlers{
		Finance:  services.Finance,
		Auth:     services.Auth,
		Renderer: renderer,
		Logger:   logger,
	}

	handlers := map[string]http.HandlerFunc{
		RouteLogin:          authHandlers.Login,
		RouteHome:           viewHandlers.Home,
		RouteStatistics:     viewHandlers.Statistics,
		RouteRecordCreate:   viewHandlers.CreateRecord,
		RouteRecordUpdate:   viewHandlers.UpdateRecord,
		RouteRecordDelete:   viewHandlers.DeleteRecord,
		RouteClearAll:       viewHandlers.ClearAll,
		RouteChangePassword: viewHandlers.ChangePassword,
	}

	r := mux.NewRouter()
	r.StrictSlash(true)

	chains := make(map[string][]Route)
	for _, mr := range Flatten(Routes()) {
		h, ok := handlers[mr.Name]
		if !ok {
			continue
		}
		chains[mr.Name] = mr.Chain
		r.Handle(mr.FullPath, h).Methods(mr.Methods...).Name(mr.Name)
	}

	r.HandleFunc("/logout", authHandlers.Logout).Methods(http.MethodPost).Name("logout")
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet, http.MethodHead).Name("health")
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	guard := &Guard{Auth: services.Authenticator}
	r.Use(guard.Middleware(chains))

	return r, nil
}

func templateFS(services RouterServices) fs.FS {
	if services.TemplateFS != nil {
		return services.TemplateFS
	}
	// Dev mode: serve from disk for hot reloading
	if services.IsDev {
		if _, err := os.Stat(TemplatePathFromRoot); err == nil {
			return os.DirFS(TemplatePathFromRoot)
		}
	}
	sub, err := fs.Sub(financeweb.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		return financeweb.TemplateFS
	}
	return sub
}
