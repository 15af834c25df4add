package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lexjuris/ruling-analyzer/internal/api/response"
	"github.com/lexjuris/ruling-analyzer/internal/service"
)

// SessionHandler handles session inspection endpoints
type SessionHandler struct {
	analysisService *service.AnalysisService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(analysisService *service.AnalysisService) *SessionHandler {
	return &SessionHandler{analysisService: analysisService}
}

// Get returns a session with its full query history
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.analysisService.GetSession(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, session)
}
