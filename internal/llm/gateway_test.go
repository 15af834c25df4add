package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lexjuris/ruling-analyzer/internal/domain"
	"github.com/lexjuris/ruling-analyzer/internal/llm"
)

// stubProvider is a canned llm.Provider for gateway tests.
type stubProvider struct {
	name       string
	configured bool
	answer     string
	err        error
	lastReq    llm.Request
	lastModel  string
	calls      int
}

func (p *stubProvider) Name() string              { return p.name }
func (p *stubProvider) AvailableModels() []string { return []string{"stub-model"} }
func (p *stubProvider) DefaultModel() string      { return "stub-model" }
func (p *stubProvider) IsConfigured() bool        { return p.configured }

func (p *stubProvider) Complete(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	p.calls++
	p.lastReq = req
	p.lastModel = model
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Response{Answer: p.answer, Model: model}, nil
}

func TestGateway_Complete(t *testing.T) {
	stub := &stubProvider{name: "stub", configured: true, answer: "the holding is X"}

	router := llm.NewRouter("stub")
	router.RegisterProvider(stub)
	gateway := llm.NewGateway(router, "gpt-4o-mini")

	answer, err := gateway.Complete(context.Background(), "system text", "prompt text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "the holding is X" {
		t.Errorf("answer = %q, want %q", answer, "the holding is X")
	}

	if stub.lastReq.System != "system text" {
		t.Errorf("system = %q, want %q", stub.lastReq.System, "system text")
	}
	if stub.lastReq.Prompt != "prompt text" {
		t.Errorf("prompt = %q, want %q", stub.lastReq.Prompt, "prompt text")
	}
	if stub.lastReq.Temperature != 0.2 {
		t.Errorf("temperature = %v, want 0.2", stub.lastReq.Temperature)
	}
	if stub.lastModel != "gpt-4o-mini" {
		t.Errorf("model = %q, want %q", stub.lastModel, "gpt-4o-mini")
	}
}

func TestGateway_ProviderError(t *testing.T) {
	stub := &stubProvider{name: "stub", configured: true, err: errors.New("upstream 500")}

	router := llm.NewRouter("stub")
	router.RegisterProvider(stub)
	gateway := llm.NewGateway(router, "")

	_, err := gateway.Complete(context.Background(), "system", "prompt")
	if !errors.Is(err, domain.ErrServiceFailure) {
		t.Fatalf("expected ErrServiceFailure, got %v", err)
	}
}

func TestGateway_ProviderNotConfigured(t *testing.T) {
	stub := &stubProvider{name: "stub", configured: false}

	router := llm.NewRouter("stub")
	router.RegisterProvider(stub)
	gateway := llm.NewGateway(router, "")

	_, err := gateway.Complete(context.Background(), "system", "prompt")
	if !errors.Is(err, domain.ErrServiceFailure) {
		t.Fatalf("expected ErrServiceFailure, got %v", err)
	}
	if stub.calls != 0 {
		t.Errorf("unconfigured provider must not be called, got %d calls", stub.calls)
	}
}

func TestGateway_ProviderMissing(t *testing.T) {
	router := llm.NewRouter("ghost")
	gateway := llm.NewGateway(router, "")

	_, err := gateway.Complete(context.Background(), "system", "prompt")
	if !errors.Is(err, domain.ErrServiceFailure) {
		t.Fatalf("expected ErrServiceFailure, got %v", err)
	}
}
