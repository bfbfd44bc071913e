package groq

import (
	"context"
	"fmt"

	"github.com/mkerins/ai-friend/internal/llm"
	openai "github.com/sashabaranov/go-openai"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// Provider implements llm.Provider against the Groq chat-completion API.
// Groq speaks the OpenAI wire format, so the client is an OpenAI client
// pointed at Groq's base URL.
type Provider struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewProvider creates a new Groq provider
func NewProvider(apiKey, model, baseURL string) llm.Provider {
	if model == "" {
		model = "llama3-8b-8192"
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &Provider{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "groq"
}

// DefaultModel returns the model used for completions
func (p *Provider) DefaultModel() string {
	return p.model
}

// IsConfigured checks if provider has valid credentials
func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

// Complete sends the question as a single user message and returns the
// first choice's content.
func (p *Provider) Complete(ctx context.Context, question string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from Groq")
	}

	return resp.Choices[0].Message.Content, nil
}
