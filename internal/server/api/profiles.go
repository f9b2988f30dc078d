// Package api provides HTTP API handlers for the mudra virtual mouse.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/store"
)

// ProfileHandler handles HTTP requests for controller tuning profiles.
type ProfileHandler struct {
	store *store.Store
}

// NewProfileHandler creates a new ProfileHandler with the given store.
func NewProfileHandler(s *store.Store) *ProfileHandler {
	return &ProfileHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/profiles or /api/profiles/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/profiles")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type profileRequest struct {
	Name              string   `json:"name"`
	Smoothing         *float64 `json:"smoothing"`
	Margin            *int     `json:"margin"`
	LeftThreshold     *float64 `json:"left_threshold"`
	RightThreshold    *float64 `json:"right_threshold"`
	ScrollSensitivity *float64 `json:"scroll_sensitivity"`
	InvertScroll      *bool    `json:"invert_scroll"`
}

type profileResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Smoothing         float64 `json:"smoothing"`
	Margin            int     `json:"margin"`
	LeftThreshold     float64 `json:"left_threshold"`
	RightThreshold    float64 `json:"right_threshold"`
	ScrollSensitivity float64 `json:"scroll_sensitivity"`
	InvertScroll      bool    `json:"invert_scroll"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type listProfilesResponse struct {
	Profiles []profileResponse `json:"profiles"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a store.Profile to a profileResponse.
func toResponse(p *store.Profile) profileResponse {
	return profileResponse{
		ID:                p.ID,
		Name:              p.Name,
		Smoothing:         p.Smoothing,
		Margin:            p.Margin,
		LeftThreshold:     p.LeftThreshold,
		RightThreshold:    p.RightThreshold,
		ScrollSensitivity: p.ScrollSensitivity,
		InvertScroll:      p.InvertScroll,
		CreatedAt:         p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:         p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// applyRequest copies the provided fields of a profileRequest onto a profile.
// Nil pointers leave the existing value untouched.
func applyRequest(p *store.Profile, req *profileRequest) error {
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Smoothing != nil {
		if *req.Smoothing <= 0 || *req.Smoothing >= 1 {
			return errors.New("smoothing must be between 0 and 1 exclusive")
		}
		p.Smoothing = *req.Smoothing
	}
	if req.Margin != nil {
		if *req.Margin < 0 {
			return errors.New("margin must not be negative")
		}
		p.Margin = *req.Margin
	}
	if req.LeftThreshold != nil {
		if *req.LeftThreshold <= 0 {
			return errors.New("left_threshold must be positive")
		}
		p.LeftThreshold = *req.LeftThreshold
	}
	if req.RightThreshold != nil {
		if *req.RightThreshold <= 0 {
			return errors.New("right_threshold must be positive")
		}
		p.RightThreshold = *req.RightThreshold
	}
	if req.ScrollSensitivity != nil {
		if *req.ScrollSensitivity <= 0 {
			return errors.New("scroll_sensitivity must be positive")
		}
		p.ScrollSensitivity = *req.ScrollSensitivity
	}
	if req.InvertScroll != nil {
		p.InvertScroll = *req.InvertScroll
	}
	return nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/profiles and returns all profiles.
func (h *ProfileHandler) list(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.Profiles().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list profiles")
		return
	}

	response := listProfilesResponse{
		Profiles: make([]profileResponse, 0, len(profiles)),
	}

	for _, p := range profiles {
		response.Profiles = append(response.Profiles, toResponse(p))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/profiles/{id} and returns a single profile.
func (h *ProfileHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(profile))
}

// create handles POST /api/profiles and creates a new profile.
func (h *ProfileHandler) create(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	profile := store.DefaultProfile(uuid.New().String(), req.Name)
	if err := applyRequest(profile, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Profiles().Create(profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create profile")
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(profile))
}

// update handles PUT /api/profiles/{id} and updates an existing profile.
func (h *ProfileHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := applyRequest(profile, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Profiles().Update(profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(profile))
}

// delete handles DELETE /api/profiles/{id} and removes a profile.
func (h *ProfileHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Profiles().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
