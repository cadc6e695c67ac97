package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/lectern/internal/llm"
)

// slot is one configured backend. Exactly one of provider and err is set.
type slot struct {
	kind     string
	provider llm.Provider
	err      error
}

// Router implements Port over two provider slots.
type Router struct {
	slots       [2]slot
	temperature float64
}

// NewRouter builds both slots from cfg. A slot whose provider cannot be
// built (typically a missing API key) is kept, and every call routed to it
// fails with a ProviderError carrying the construction error.
func NewRouter(ctx context.Context, cfg llm.Config, mw llm.Middleware) *Router {
	r := &Router{temperature: cfg.Temperature}
	for i, kind := range []string{cfg.ProviderA, cfg.ProviderB} {
		p, err := llm.NewProvider(ctx, kind, cfg, mw)
		r.slots[i] = slot{kind: kind, provider: p, err: err}
	}
	return r
}

// NewRouterFromProviders wires already built providers into the slots.
func NewRouterFromProviders(a, b llm.Provider, temperature float64) *Router {
	return &Router{
		slots: [2]slot{
			{kind: llm.KindMock, provider: a},
			{kind: llm.KindMock, provider: b},
		},
		temperature: temperature,
	}
}

// Generate sends prompt as a single user message to the provider selected
// by hint and returns the reply with surrounding whitespace removed.
func (r *Router) Generate(ctx context.Context, prompt string, maxTokens int, hint Hint) (string, error) {
	s, err := r.slot(hint)
	if err != nil {
		return "", err
	}
	if s.err != nil {
		return "", &ProviderError{Hint: hint, Message: s.err.Error(), Err: s.err}
	}

	resp, err := s.provider.Generate(ctx, llm.UserPrompt(prompt, maxTokens, r.temperature))
	if err != nil {
		return "", &ProviderError{
			Hint:    hint,
			Message: fmt.Sprintf("%s API call failed: %v", label(s.kind), err),
			Err:     err,
		}
	}
	if resp == nil {
		err := &llm.ErrInvalidResponse{Err: errors.New("empty reply")}
		return "", &ProviderError{
			Hint:    hint,
			Message: fmt.Sprintf("%s API call failed: %v", label(s.kind), err),
			Err:     err,
		}
	}
	return strings.TrimSpace(resp.Content), nil
}

// Describe names the backend behind hint for log lines, e.g.
// "huggingface/Qwen/Qwen2.5-72B-Instruct".
func (r *Router) Describe(hint Hint) string {
	s, err := r.slot(hint)
	if err != nil {
		return "invalid"
	}
	if s.provider == nil {
		return s.kind
	}
	return s.kind + "/" + s.provider.ModelID()
}

func (r *Router) slot(hint Hint) (slot, error) {
	if hint != HintA && hint != HintB {
		return slot{}, &ProviderError{
			Hint:    hint,
			Message: fmt.Sprintf("unknown provider hint %s", hint),
			Err:     errors.ErrUnsupported,
		}
	}
	return r.slots[hint], nil
}

// label is the display name of a backend kind in warnings.
func label(kind string) string {
	switch kind {
	case llm.KindHuggingFace:
		return "HF Router"
	case llm.KindOpenAI:
		return "OpenAI"
	case llm.KindAnthropic:
		return "Anthropic"
	case llm.KindGemini:
		return "Gemini"
	case llm.KindOpenRouter:
		return "OpenRouter"
	default:
		return kind
	}
}
