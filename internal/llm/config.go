package llm

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Provider kinds accepted in Config slots.
const (
	KindHuggingFace = "huggingface"
	KindOpenAI      = "openai"
	KindAnthropic   = "anthropic"
	KindGemini      = "gemini"
	KindOpenRouter  = "openrouter"
	KindMock        = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// ProviderA and ProviderB select the backend serving each provider
	// hint. Values: "huggingface", "openai", "anthropic", "gemini",
	// "openrouter", "mock".
	ProviderA string `env:"LECTERN_PROVIDER_A" envDefault:"huggingface"`
	ProviderB string `env:"LECTERN_PROVIDER_B" envDefault:"openai"`

	HuggingFace HuggingFaceConfig
	OpenAI      OpenAIConfig
	Anthropic   AnthropicConfig
	Gemini      GeminiConfig
	OpenRouter  OpenRouterConfig
	Retry       RetryConfig

	// Temperature applied to every generation request.
	Temperature float64 `env:"LECTERN_LLM_TEMPERATURE" envDefault:"0.2"`

	// Timeout is the maximum duration for a single LLM request
	// (including retries).
	Timeout time.Duration `env:"LECTERN_LLM_TIMEOUT" envDefault:"60s"`
}

// HuggingFaceConfig holds Hugging Face inference router configuration.
type HuggingFaceConfig struct {
	APIKey  string `env:"HF_TOKEN"`
	Model   string `env:"HF_ROUTER_MODEL" envDefault:"Qwen/Qwen2.5-72B-Instruct"`
	BaseURL string `env:"HF_ROUTER_BASE_URL" envDefault:"https://router.huggingface.co/v1"`
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	BaseURL string `env:"OPENAI_BASE_URL"` // Optional. Override for compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `env:"ANTHROPIC_API_KEY"`
	Model  string `env:"ANTHROPIC_MODEL" envDefault:"claude-haiku"`
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL" envDefault:"gemini-flash"`
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `env:"OPENROUTER_API_KEY"`
	Model   string `env:"OPENROUTER_MODEL" envDefault:"google/gemini-2.0-flash-exp"`
	BaseURL string `env:"OPENROUTER_BASE_URL"` // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `env:"LECTERN_LLM_RETRY_ATTEMPTS" envDefault:"3" validate:"gte=1"`
	InitialWait time.Duration `env:"LECTERN_LLM_RETRY_INITIAL_WAIT" envDefault:"1s"`
	MaxWait     time.Duration `env:"LECTERN_LLM_RETRY_MAX_WAIT" envDefault:"10s"`
	Multiplier  float64       `env:"LECTERN_LLM_RETRY_MULTIPLIER" envDefault:"2"`
}

// DefaultConfig returns a Config populated from the envDefault tags only,
// ignoring the process environment.
func DefaultConfig() Config {
	var cfg Config
	// Parsing defaults into a zero struct cannot fail.
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// Validate checks that the given provider kind has its required API key set.
func (c Config) Validate(kind string) error {
	switch kind {
	case KindHuggingFace:
		if c.HuggingFace.APIKey == "" {
			return &ErrMissingCredential{Provider: kind, EnvVar: "HF_TOKEN"}
		}
	case KindOpenAI:
		if c.OpenAI.APIKey == "" {
			return &ErrMissingCredential{Provider: kind, EnvVar: "OPENAI_API_KEY"}
		}
	case KindAnthropic:
		if c.Anthropic.APIKey == "" {
			return &ErrMissingCredential{Provider: kind, EnvVar: "ANTHROPIC_API_KEY"}
		}
	case KindGemini:
		if c.Gemini.APIKey == "" {
			return &ErrMissingCredential{Provider: kind, EnvVar: "GEMINI_API_KEY"}
		}
	case KindOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return &ErrMissingCredential{Provider: kind, EnvVar: "OPENROUTER_API_KEY"}
		}
	case KindMock:
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", kind)
	}
	return nil
}
