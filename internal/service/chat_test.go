package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mkerins/ai-friend/internal/domain"
	"github.com/mkerins/ai-friend/internal/llm"
	"github.com/mkerins/ai-friend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, apiKey string, provider llm.Provider) (*ChatService, *session.Store, uuid.UUID, *MockLogger, *MockExporter) {
	t.Helper()

	store := session.NewStore()
	sess := store.Create()

	router := llm.NewRouter("groq")
	if provider != nil {
		router.RegisterProvider(provider)
	}

	logger := new(MockLogger)
	exporter := new(MockExporter)

	svc := NewChatService(store, router, logger, exporter, apiKey)
	return svc, store, sess.ID, logger, exporter
}

func TestChatService_Ask(t *testing.T) {
	ctx := context.Background()

	t.Run("success appends exchange then log row", func(t *testing.T) {
		provider := new(MockProvider)
		svc, store, sessionID, logger, _ := newTestService(t, "test-key", provider)
		require.NoError(t, store.SetName(sessionID, "Ada"))

		provider.On("Complete", ctx, "What is 2+2?").Return("4", nil)
		logger.On("Append", "Ada", "What is 2+2?", "4").Return(nil)

		exchange, err := svc.Ask(ctx, sessionID, "What is 2+2?")
		require.NoError(t, err)
		assert.Equal(t, "What is 2+2?", exchange.Question)
		assert.Equal(t, "4", exchange.Answer)
		assert.NotEmpty(t, exchange.Timestamp)

		history, err := svc.History(sessionID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, *exchange, history[0])

		provider.AssertExpectations(t)
		logger.AssertExpectations(t)
	})

	t.Run("rename during the completion call reaches the log row", func(t *testing.T) {
		provider := new(MockProvider)
		svc, store, sessionID, logger, _ := newTestService(t, "test-key", provider)
		require.NoError(t, store.SetName(sessionID, "Ada"))

		// The log row carries the name as of log time, not submission time.
		provider.On("Complete", ctx, "q").Run(func(args mock.Arguments) {
			require.NoError(t, store.SetName(sessionID, "Grace"))
		}).Return("a", nil)
		logger.On("Append", "Grace", "q", "a").Return(nil)

		_, err := svc.Ask(ctx, sessionID, "q")
		require.NoError(t, err)
		logger.AssertExpectations(t)
	})

	t.Run("missing credential is a config error and a no-op", func(t *testing.T) {
		provider := new(MockProvider)
		svc, _, sessionID, logger, _ := newTestService(t, "", provider)

		_, err := svc.Ask(ctx, sessionID, "anything")
		assert.ErrorIs(t, err, domain.ErrAPIKeyMissing)

		history, _ := svc.History(sessionID)
		assert.Empty(t, history)
		logger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
		provider.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	})

	t.Run("missing provider is a dependency error and a no-op", func(t *testing.T) {
		svc, _, sessionID, logger, _ := newTestService(t, "test-key", nil)

		_, err := svc.Ask(ctx, sessionID, "anything")
		assert.ErrorIs(t, err, domain.ErrProviderUnavailable)

		history, _ := svc.History(sessionID)
		assert.Empty(t, history)
		logger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("completion failure becomes an Error answer and is still recorded", func(t *testing.T) {
		provider := new(MockProvider)
		svc, store, sessionID, logger, _ := newTestService(t, "test-key", provider)
		require.NoError(t, store.SetName(sessionID, "Ada"))

		provider.On("Complete", ctx, "q").Return("", errors.New("connection refused"))
		logger.On("Append", "Ada", "q", "Error: connection refused").Return(nil)

		exchange, err := svc.Ask(ctx, sessionID, "q")
		require.NoError(t, err)
		assert.Equal(t, "Error: connection refused", exchange.Answer)

		history, _ := svc.History(sessionID)
		require.Len(t, history, 1)
		assert.Equal(t, "Error: connection refused", history[0].Answer)
		logger.AssertExpectations(t)
	})

	t.Run("blank question is rejected", func(t *testing.T) {
		provider := new(MockProvider)
		svc, _, sessionID, _, _ := newTestService(t, "test-key", provider)

		_, err := svc.Ask(ctx, sessionID, "   \n\t ")
		assert.ErrorIs(t, err, domain.ErrEmptyQuestion)
		provider.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	})

	t.Run("unknown session", func(t *testing.T) {
		provider := new(MockProvider)
		svc, _, _, _, _ := newTestService(t, "test-key", provider)

		_, err := svc.Ask(ctx, uuid.New(), "q")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("log failure propagates after the exchange is recorded", func(t *testing.T) {
		provider := new(MockProvider)
		svc, _, sessionID, logger, _ := newTestService(t, "test-key", provider)

		provider.On("Complete", ctx, "q").Return("a", nil)
		logger.On("Append", "", "q", "a").Return(errors.New("permission denied"))

		_, err := svc.Ask(ctx, sessionID, "q")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")

		// History append precedes the log write, so the exchange survives.
		history, _ := svc.History(sessionID)
		assert.Len(t, history, 1)
	})
}

func TestChatService_ExportPDF(t *testing.T) {
	provider := new(MockProvider)
	svc, store, sessionID, _, exporter := newTestService(t, "test-key", provider)
	require.NoError(t, store.SetName(sessionID, "Ada"))
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC) }

	exporter.On("Export", "Ada", mock.AnythingOfType("[]domain.Exchange")).Return([]byte("%PDF-stub"), nil)

	filename, data, err := svc.ExportPDF(sessionID)
	require.NoError(t, err)
	assert.Equal(t, "Ada_chat_2026-09-01_153000.pdf", filename)
	assert.Equal(t, []byte("%PDF-stub"), data)

	_, _, err = svc.ExportPDF(uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
