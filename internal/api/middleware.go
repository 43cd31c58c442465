package api

import (
	"log/slog"
	"net/http"
	"strings"
)

// RateLimit rejects clients that exceed the per-IP request budget tracked in
// redis. With no cache configured it passes everything through.
func (h *Handler) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := r.RemoteAddr
		if idx := strings.LastIndex(clientIP, ":"); idx != -1 {
			clientIP = clientIP[:idx]
		}

		if h.cache.IsRateLimited(r.Context(), clientIP) {
			slog.Warn("Rate limit exceeded", "ip", clientIP)
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
