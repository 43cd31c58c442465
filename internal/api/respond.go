package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"demo-api/internal/core"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("JSON encode error", "error", err)
	}
}

// writeError maps a core error kind to its status code. Anything that is not
// a *core.Error is an internal error and logged as such.
func writeError(w http.ResponseWriter, err error) {
	var opErr *core.Error
	if errors.As(err, &opErr) {
		writeJSON(w, statusFor(opErr.Kind), errorResponse{Error: opErr.Message})
		return
	}
	slog.Error("Unexpected error", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
}

func statusFor(kind core.Kind) int {
	switch kind {
	case core.KindNotFound:
		return http.StatusNotFound
	case core.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// decodeJSON parses the request body into v; a malformed body is an
// InvalidInput-equivalent 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		slog.Warn("Bad request body", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON in request body."})
		return false
	}
	return true
}

// idParam parses the {id} path segment. A non-numeric id matches no entity,
// so it responds 404 like an unknown route.
func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}
