package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lexjuris/ruling-analyzer/internal/llm"
)

// MockTextExtractor mocks the domain.TextExtractor interface
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(content []byte) (string, error) {
	args := m.Called(content)
	return args.String(0), args.Error(1)
}

// MockProvider mocks llm.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProvider) AvailableModels() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockProvider) DefaultModel() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProvider) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockProvider) Complete(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	args := m.Called(ctx, req, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Response), args.Error(1)
}
