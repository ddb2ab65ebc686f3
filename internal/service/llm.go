package service

import (
	"context"
	"log/slog"

	"github.com/fadilmartias/recruit-assistant/internal/config"
)

// GenerateOptions tunes a single completion request.
type GenerateOptions struct {
	// JSON asks the backend for a JSON-only reply when it supports it.
	JSON bool
}

// LLM is a text completion backend.
type LLM interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// NewLLM builds the backend selected by LLM_PROVIDER. A nil LLM means AI
// features run in disabled mode; that is not an error.
func NewLLM(ctx context.Context, llmConfig *config.LLMConfig) (LLM, error) {
	switch llmConfig.Provider {
	case config.ProviderGemini:
		geminiConfig := config.LoadGeminiConfig()
		if geminiConfig.APIKey == "" {
			slog.Warn("GEMINI_API_KEY not set, AI features disabled")
			return nil, nil
		}
		gemini, err := NewGeminiService(ctx, geminiConfig, llmConfig.Timeout)
		if err != nil {
			return nil, err
		}
		return gemini, nil
	case config.ProviderOpenRouter:
		openRouterConfig := config.LoadOpenRouterConfig()
		if openRouterConfig.APIKey == "" {
			slog.Warn("OPENROUTER_API_KEY not set, AI features disabled")
			return nil, nil
		}
		return NewOpenRouterService(openRouterConfig, llmConfig.Timeout), nil
	default:
		slog.Info("LLM provider disabled", "provider", llmConfig.Provider)
		return nil, nil
	}
}
