package llm

import "fmt"

const defaultHuggingFaceBaseURL = "https://router.huggingface.co/v1"

// HuggingFaceProvider targets the Hugging Face inference router, which
// serves hosted open models behind an OpenAI-compatible chat API.
type HuggingFaceProvider struct {
	*OpenAIProvider
}

// NewHuggingFaceProvider creates a provider for the Hugging Face router.
// Model IDs are repository names such as "Qwen/Qwen2.5-72B-Instruct".
func NewHuggingFaceProvider(cfg HuggingFaceConfig) (*HuggingFaceProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("hugging face token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultHuggingFaceBaseURL
	}

	inner := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
	return &HuggingFaceProvider{OpenAIProvider: inner}, nil
}
