package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/recruit-assistant/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const systemPrompt = "You are an experienced technical recruiter helping to screen résumés."

type OpenRouterService struct {
	client *resty.Client
	Model  string
}

func NewOpenRouterService(openRouterConfig *config.OpenRouterConfig, timeout time.Duration) *OpenRouterService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(openRouterConfig.BaseURL, "/")).
		SetAuthToken(openRouterConfig.APIKey).
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &OpenRouterService{client: client, Model: openRouterConfig.Model}
}

func (s *OpenRouterService) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	body := map[string]any{
		"model": s.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": prompt},
		},
	}
	if opts.JSON {
		body["response_format"] = map[string]string{"type": "json_object"}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter status %d: %s", resp.StatusCode(), gjson.Get(resp.String(), "error.message").String())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
