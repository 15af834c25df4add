package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/lexjuris/ruling-analyzer/internal/api/handler"
	customMiddleware "github.com/lexjuris/ruling-analyzer/internal/api/middleware"
	"github.com/lexjuris/ruling-analyzer/internal/config"
	"github.com/lexjuris/ruling-analyzer/internal/llm"
	"github.com/lexjuris/ruling-analyzer/internal/llm/anthropic"
	"github.com/lexjuris/ruling-analyzer/internal/llm/deepseek"
	"github.com/lexjuris/ruling-analyzer/internal/llm/gemini"
	"github.com/lexjuris/ruling-analyzer/internal/llm/ollama"
	"github.com/lexjuris/ruling-analyzer/internal/llm/openai"
	"github.com/lexjuris/ruling-analyzer/internal/pdf"
	"github.com/lexjuris/ruling-analyzer/internal/repository/memory"
	"github.com/lexjuris/ruling-analyzer/internal/service"
	"github.com/lexjuris/ruling-analyzer/internal/web"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config) (http.Handler, error) {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Completion providers, registered only when configured
	llmRouter := llm.NewRouter(cfg.LLM.DefaultProvider)
	log.Info().Msgf("Initializing completion providers. Default: %s", cfg.LLM.DefaultProvider)

	if cfg.LLM.Ollama.Host != "" {
		llmRouter.RegisterProvider(ollama.NewProvider(cfg.LLM.Ollama.Host, cfg.LLM.Ollama.DefaultModel))
	}
	if cfg.LLM.OpenAI.APIKey != "" {
		llmRouter.RegisterProvider(openai.NewProvider(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model))
	}
	if cfg.LLM.Anthropic.APIKey != "" {
		llmRouter.RegisterProvider(anthropic.NewProvider(cfg.LLM.Anthropic.APIKey, cfg.LLM.Anthropic.Model))
	}
	if cfg.LLM.DeepSeek.APIKey != "" {
		llmRouter.RegisterProvider(deepseek.NewProvider(cfg.LLM.DeepSeek.APIKey, cfg.LLM.DeepSeek.Model))
	}
	if cfg.LLM.Gemini.APIKey != "" {
		llmRouter.RegisterProvider(gemini.NewProvider(cfg.LLM.Gemini))
	}

	gateway := llm.NewGateway(llmRouter, "")

	// Initialize services
	extractor := pdf.NewExtractor()
	sessionStore := memory.NewSessionStore()
	analysisService := service.NewAnalysisService(
		extractor,
		gateway,
		sessionStore,
		cfg.Analysis.MaxDocumentChars,
		cfg.Analysis.MaxBatchFiles,
	)

	// Initialize handlers
	pageHandler, err := handler.NewPageHandler(analysisService)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	sessionHandler := handler.NewSessionHandler(analysisService)

	// Routes
	r.Get("/", pageHandler.Home)
	r.Post("/analyze", pageHandler.Analyze)
	r.Post("/analyze_json", analysisHandler.AnalyzeJSON)
	r.Post("/analyze_batch", analysisHandler.AnalyzeBatch)
	r.Post("/analyze_session", analysisHandler.AnalyzeSession)
	r.Get("/session/{sessionID}", sessionHandler.Get)
	r.Get("/healthz", handler.HealthCheck(analysisService))
	r.Get("/providers", handler.ListProviders(llmRouter))
	r.Handle("/static/*", http.FileServer(http.FS(web.Static)))

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler())
	}

	return r, nil
}
