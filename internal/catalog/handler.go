package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"pokesearch/internal/logger"
	"pokesearch/internal/lookup"

	"github.com/gorilla/mux"
)

// NewHandler serves cat over the same route the lookup client calls:
// GET /api/Pokemon/name/{name}.
func NewHandler(cat Catalog) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc(lookup.ResourcePath+"{name}", lookupHandler(cat)).Methods(http.MethodGet)
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "no such route")
	})
	r.Use(logRequests)
	return r
}

func lookupHandler(cat Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		e, err := cat.Get(name)
		if errors.Is(err, ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "no entry named "+name)
			return
		}
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, e.Result())
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("catalog: %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("catalog: writing response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
