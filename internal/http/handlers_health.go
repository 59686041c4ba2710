package httpx

import (
	"errors"
	"net/http"
)

// healthHandler returns a simple 200 OK status for readiness/liveness checks.
// It never calls the finance backend.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteError(w, ErrorParams{
		Code:    http.StatusNotFound,
		ErrCode: "not_found",
		Err:     errors.New("no route for " + r.URL.Path),
	})
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	WriteError(w, ErrorParams{
		Code:    http.StatusMethodNotAllowed,
		ErrCode: "method_not_allowed",
		Err:     errors.New(r.Method + " not allowed on " + r.URL.Path),
	})
}
