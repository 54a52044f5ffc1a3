package enrichment

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiReasoner - реализация Reasoner поверх Google Gemini API
type GeminiReasoner struct {
	client *genai.Client
	model  string
}

// NewGeminiReasoner создает клиента Gemini. Пустой ключ - ошибка конфигурации.
func NewGeminiReasoner(ctx context.Context, apiKey, model string) (*GeminiReasoner, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiReasoner{
		client: client,
		model:  model,
	}, nil
}

// Analyze отправляет промпт и возвращает сырой текст ответа. Просим модель
// отвечать JSON через responseMimeType, но санитизация все равно выполняется
// на стороне конвейера.
func (r *GeminiReasoner) Analyze(ctx context.Context, prompt string) (string, error) {
	resp, err := r.client.Models.GenerateContent(ctx,
		r.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	return resp.Text(), nil
}
