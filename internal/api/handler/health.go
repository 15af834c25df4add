package handler

import (
	"net/http"

	"github.com/lexjuris/ruling-analyzer/internal/api/response"
	"github.com/lexjuris/ruling-analyzer/internal/llm"
	"github.com/lexjuris/ruling-analyzer/internal/service"
)

// HealthCheck returns liveness plus the live session count
func HealthCheck(analysisService *service.AnalysisService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]any{
			"status":   "ok",
			"sessions": analysisService.SessionCount(r.Context()),
		})
	}
}

// ListProviders returns the registered completion backends
func ListProviders(router *llm.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]any{
			"providers":        router.GetProvidersInfo(),
			"default_provider": router.DefaultProvider(),
		})
	}
}
