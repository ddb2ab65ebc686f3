package config

import (
	"sync"
	"time"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderNone       = "none"
)

// LLMConfig selects the backend used for résumé extraction, narratives and
// skill suggestions. CallInterval spaces consecutive upstream calls.
type LLMConfig struct {
	Provider     string
	Timeout      time.Duration
	CallInterval time.Duration
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		llmConfig = &LLMConfig{
			Provider:     envStr("LLM_PROVIDER", ProviderGemini),
			Timeout:      envDuration("LLM_TIMEOUT", 90*time.Second),
			CallInterval: envDuration("AI_CALL_INTERVAL", 2*time.Second),
		}
	})
	return llmConfig
}
