package service

import (
	"context"

	"github.com/mkerins/ai-friend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockProvider mocks the llm.Provider interface
type MockProvider struct {
	mock.Mock
}

// Name matches the router's default so GetProvider("") resolves the mock.
func (m *MockProvider) Name() string {
	return "groq"
}

func (m *MockProvider) DefaultModel() string {
	return "mock-model"
}

func (m *MockProvider) IsConfigured() bool {
	return true
}

func (m *MockProvider) Complete(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}

// MockLogger mocks the domain.ConversationLogger interface
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Append(userName, question, answer string) error {
	args := m.Called(userName, question, answer)
	return args.Error(0)
}

// MockExporter mocks the domain.TranscriptExporter interface
type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(displayName string, exchanges []domain.Exchange) ([]byte, error) {
	args := m.Called(displayName, exchanges)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
