package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Validate validates the ChatRequest using the validator
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleChat answers one chat request: profile lookup, one agent turn, and
// the agent's response verbatim. Profile absence is a 404; storage failure
// is a 503, not a 404.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		verr := &ErrValidation{Message: "invalid JSON body"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}
	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), "user_id and message are required")
		return
	}

	profile, err := s.store.GetUserProfile(ctx, req.UserID)
	if err != nil {
		log.Printf("Error fetching user profile for user_id %s: %v", req.UserID, err)
		serr := &ErrStorageUnavailable{Cause: err}
		s.errorResponse(w, HTTPStatus(serr), "storage unavailable")
		return
	}
	if profile == nil {
		nferr := &ErrProfileNotFound{UserID: req.UserID}
		s.errorResponse(w, HTTPStatus(nferr), "User profile not found")
		return
	}

	response := s.agent.Chat(ctx, req.Message, *profile, s.store)
	s.jsonResponse(w, http.StatusOK, response)
}

// HealthResponse reports storage connectivity
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// handleHealth probes the database with a single round trip
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		s.jsonResponse(w, http.StatusOK, HealthResponse{
			Status:   "error",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, HealthResponse{Status: "ok", Database: "connected"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
