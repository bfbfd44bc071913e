package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkerins/ai-friend/internal/domain"
	"github.com/mkerins/ai-friend/internal/export"
	"github.com/mkerins/ai-friend/internal/llm"
	"github.com/rs/zerolog/log"
)

// ChatService orchestrates one user interaction: completion call, session
// history update, conversation log append, transcript export.
type ChatService struct {
	store     domain.SessionStore
	llmRouter *llm.Router
	logger    domain.ConversationLogger
	exporter  domain.TranscriptExporter
	apiKey    string
	now       func() time.Time
}

// NewChatService creates a new chat service
func NewChatService(
	store domain.SessionStore,
	llmRouter *llm.Router,
	logger domain.ConversationLogger,
	exporter domain.TranscriptExporter,
	apiKey string,
) *ChatService {
	return &ChatService{
		store:     store,
		llmRouter: llmRouter,
		logger:    logger,
		exporter:  exporter,
		apiKey:    apiKey,
		now:       time.Now,
	}
}

// SetName stores the visitor's display name as typed
func (s *ChatService) SetName(sessionID uuid.UUID, name string) error {
	return s.store.SetName(sessionID, name)
}

// History returns the session's exchanges in chronological order
func (s *ChatService) History(sessionID uuid.UUID) ([]domain.Exchange, error) {
	return s.store.Exchanges(sessionID)
}

// Ask submits one question. Branching, in order: missing credential is a
// configuration error and missing provider a dependency error, both surfaced
// verbatim with nothing recorded; a failing completion call is downgraded to
// an "Error: ..." answer that is recorded in history and logged like any
// other reply. On success exactly one exchange is appended to the session and
// exactly one row to the conversation log, in that order.
func (s *ChatService) Ask(ctx context.Context, sessionID uuid.UUID, question string) (*domain.Exchange, error) {
	if strings.TrimSpace(question) == "" {
		return nil, domain.ErrEmptyQuestion
	}

	if _, ok := s.store.Get(sessionID); !ok {
		return nil, domain.ErrSessionNotFound
	}

	if s.apiKey == "" {
		return nil, domain.ErrAPIKeyMissing
	}

	provider, err := s.llmRouter.GetProvider("")
	if err != nil {
		return nil, domain.ErrProviderUnavailable
	}

	answer, err := provider.Complete(ctx, question)
	if err != nil {
		// Soft failure: the error text becomes the answer and flows through
		// history and the log exactly like a real reply.
		log.Warn().Err(err).Msg("completion call failed, recording error as answer")
		answer = "Error: " + err.Error()
	}

	ts, err := s.store.AppendExchange(sessionID, question, answer)
	if err != nil {
		return nil, fmt.Errorf("failed to record exchange: %w", err)
	}

	// The name is read at log time, under the store's lock, so a rename
	// during the completion call is reflected in the log row.
	name, err := s.store.Name(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to record exchange: %w", err)
	}
	if err := s.logger.Append(name, question, answer); err != nil {
		return nil, fmt.Errorf("failed to log conversation: %w", err)
	}

	return &domain.Exchange{
		Question:  question,
		Answer:    answer,
		Timestamp: ts,
	}, nil
}

// ExportPDF renders the session's transcript and returns the download
// filename and document bytes. An empty history still exports a valid
// one-page document.
func (s *ChatService) ExportPDF(sessionID uuid.UUID) (string, []byte, error) {
	name, err := s.store.Name(sessionID)
	if err != nil {
		return "", nil, err
	}

	exchanges, err := s.store.Exchanges(sessionID)
	if err != nil {
		return "", nil, err
	}

	data, err := s.exporter.Export(name, exchanges)
	if err != nil {
		return "", nil, fmt.Errorf("failed to export transcript: %w", err)
	}

	return export.Filename(name, s.now()), data, nil
}
