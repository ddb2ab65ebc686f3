package config

import (
	"os"
	"sync"
)

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

var (
	openRouterConfig *OpenRouterConfig
	openRouterOnce   sync.Once
)

func LoadOpenRouterConfig() *OpenRouterConfig {
	openRouterOnce.Do(func() {
		openRouterConfig = &OpenRouterConfig{
			APIKey:  os.Getenv("OPENROUTER_API_KEY"),
			Model:   envStr("OPENROUTER_MODEL", "openai/gpt-4o-mini"),
			BaseURL: envStr("OPENROUTER_URL", "https://openrouter.ai/api/v1"),
		}
	})
	return openRouterConfig
}
