package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acai-real/storefront/internal/operator"
)

// SessionHandler handles the operator login endpoints.
type SessionHandler struct {
	session *operator.Session
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(session *operator.Session) *SessionHandler {
	return &SessionHandler{session: session}
}

// RegisterRoutes registers operator session endpoints on the given Chi router.
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Status)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
}

// --- Request / Response types ---

type loginRequest struct {
	Code string `json:"code"`
}

type sessionResponse struct {
	Operator bool `json:"operator"`
}

// --- Handlers ---

// Status reports whether operator mode is unlocked.
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionResponse{Operator: h.session.IsOperator()})
}

// Login attempts to unlock operator mode with the supplied access code.
// A wrong code leaves the session untouched; there is no lockout.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Code == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "code is required"})
		return
	}

	if !h.session.Login(req.Code) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid code"})
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Operator: true})
}

// Logout returns the session to guest mode unconditionally.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout()
	writeJSON(w, http.StatusOK, sessionResponse{Operator: false})
}
