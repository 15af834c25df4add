package llm

import "context"

// Request contains the inputs for one chat completion call.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
}

// Response contains a completion result.
type Response struct {
	Answer     string
	Model      string
	TokensUsed int
	LatencyMs  int64
}

// Provider defines the interface for completion backends.
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// AvailableModels returns list of supported models
	AvailableModels() []string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Complete executes a single non-streaming chat completion
	Complete(ctx context.Context, req Request, model string) (*Response, error)
}
