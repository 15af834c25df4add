package llm

import (
	"context"
	"fmt"

	"github.com/lexjuris/ruling-analyzer/internal/domain"
	"github.com/rs/zerolog/log"
)

// completionTemperature is fixed low to favor deterministic extraction.
const completionTemperature = 0.2

// Gateway executes prompts against the single configured completion backend.
// One request, one response: no streaming, no retries, no fallback provider
// or model. Every backend failure surfaces as domain.ErrServiceFailure with a
// human-readable cause.
type Gateway struct {
	router *Router
	model  string
}

// NewGateway creates a gateway bound to the router's default provider. model
// may be empty to use the provider's default.
func NewGateway(router *Router, model string) *Gateway {
	return &Gateway{router: router, model: model}
}

// Complete sends one system+user exchange and returns the model's answer.
func (g *Gateway) Complete(ctx context.Context, system, prompt string) (string, error) {
	provider, err := g.router.GetProvider("")
	if err != nil {
		completionsTotal.WithLabelValues(g.router.DefaultProvider(), "error").Inc()
		return "", fmt.Errorf("%w: %v", domain.ErrServiceFailure, err)
	}

	resp, err := provider.Complete(ctx, Request{
		System:      system,
		Prompt:      prompt,
		Temperature: completionTemperature,
	}, g.model)
	if err != nil {
		completionsTotal.WithLabelValues(provider.Name(), "error").Inc()
		log.Error().Err(err).Str("provider", provider.Name()).Msg("completion failed")
		return "", fmt.Errorf("%w: %v", domain.ErrServiceFailure, err)
	}

	completionsTotal.WithLabelValues(provider.Name(), "ok").Inc()
	log.Debug().
		Str("provider", provider.Name()).
		Str("model", resp.Model).
		Int("tokens_used", resp.TokensUsed).
		Int64("latency_ms", resp.LatencyMs).
		Msg("completion succeeded")

	return resp.Answer, nil
}
