package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/store"
)

// SessionHandler handles read-only HTTP requests for session statistics.
// Sessions are created and finished by the pipeline, never over the API.
type SessionHandler struct {
	store *store.Store
}

// NewSessionHandler creates a new SessionHandler with the given store.
func NewSessionHandler(s *store.Store) *SessionHandler {
	return &SessionHandler{store: s}
}

// ServeHTTP implements the http.Handler interface.
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Expected paths: /api/sessions or /api/sessions/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/sessions")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		h.list(w, r)
		return
	}
	h.get(w, r, path)
}

type listSessionsResponse struct {
	Sessions []*store.Session `json:"sessions"`
}

// list handles GET /api/sessions and returns all sessions.
func (h *SessionHandler) list(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.Sessions().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	if sessions == nil {
		sessions = []*store.Session{}
	}

	writeJSON(w, http.StatusOK, listSessionsResponse{Sessions: sessions})
}

// get handles GET /api/sessions/{id} and returns a single session.
func (h *SessionHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	session, err := h.store.Sessions().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	writeJSON(w, http.StatusOK, session)
}
