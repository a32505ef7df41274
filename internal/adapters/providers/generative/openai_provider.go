package generative

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/providers"
)

// OpenAIProvider implements GenerativeProvider on top of the OpenAI chat
// completion API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI-backed generative provider.
func NewOpenAIProvider(apiKey, model string) (providers.GenerativeProvider, error) {
	return NewOpenAIProviderWithOptions(apiKey, model, "")
}

// NewOpenAIProviderWithOptions allows overriding the API base URL (used for tests).
func NewOpenAIProviderWithOptions(apiKey, model, baseURL string) (providers.GenerativeProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// Name identifies the provider in logs and metrics.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Chat sends the system prompt, prior turns, and the latest user prompt to the
// chat completion API and returns the raw assistant text.
func (p *OpenAIProvider) Chat(ctx context.Context, systemPrompt, userPrompt string, history []entities.ChatTurn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	if strings.TrimSpace(systemPrompt) != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == entities.ChatRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
