package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/lectern/internal/cache"
	"github.com/abhisek/lectern/internal/store"
)

// Middleware carries the optional collaborators wrapped around every
// provider. Nil fields disable the corresponding decorator.
type Middleware struct {
	Events   store.EventRepo
	Cache    cache.Cache
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// NewProvider creates the provider of the given kind from configuration.
// It returns the provider wrapped with cache, retry and logging middleware.
func NewProvider(ctx context.Context, kind string, cfg Config, mw Middleware) (Provider, error) {
	if err := cfg.Validate(kind); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch kind {
	case KindHuggingFace:
		base, err = NewHuggingFaceProvider(cfg.HuggingFace)
	case KindOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case KindAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case KindGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case KindOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case KindMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", kind, err)
	}

	// caller → timeout → cache → retry → logging → base
	var p Provider = WithLogging(base, kind, mw.Events, mw.Logger)
	p = WithRetry(p, cfg.Retry)
	if mw.Cache != nil {
		p = WithCache(p, mw.Cache, mw.CacheTTL)
	}
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	return p, nil
}

// TimeoutProvider bounds every Generate call, retries included.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider with a per-call deadline.
func WithTimeout(p Provider, d time.Duration) Provider {
	return &TimeoutProvider{inner: p, timeout: d}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
