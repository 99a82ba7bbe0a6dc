package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// SessionChecker reports whether operator mode is unlocked. Satisfied by
// *operator.Session.
type SessionChecker interface {
	IsOperator() bool
}

// RequireOperator rejects requests while the session is in guest mode.
// Catalog mutations sit behind this gate.
func RequireOperator(session SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.IsOperator() {
				writeJSON(w, http.StatusForbidden, map[string]string{"error": "operator mode required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON response")
	}
}
