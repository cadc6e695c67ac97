package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/abhisek/lectern/internal/cache"
)

// CachingProvider serves repeated identical requests from a response cache.
// Cache failures are treated as misses.
type CachingProvider struct {
	inner Provider
	cache cache.Cache
	ttl   time.Duration
}

// WithCache wraps a Provider with a response cache.
func WithCache(p Provider, c cache.Cache, ttl time.Duration) Provider {
	return &CachingProvider{inner: p, cache: c, ttl: ttl}
}

func (c *CachingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	key := c.key(req)

	if text, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		return &Response{
			Content:    text,
			Model:      c.inner.ModelID(),
			StopReason: "end",
		}, nil
	}

	resp, err := c.inner.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	// Truncated replies are not worth replaying.
	if resp.StopReason == "end" {
		_ = c.cache.Set(ctx, key, resp.Content, c.ttl)
	}
	return resp, nil
}

func (c *CachingProvider) ModelID() string {
	return c.inner.ModelID()
}

// key derives a stable cache key from the model and the full request.
func (c *CachingProvider) key(req Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%d\x00%.3f\x00%s\x00", c.inner.ModelID(), req.MaxTokens, req.Temperature, req.System)
	for _, m := range req.Messages {
		fmt.Fprintf(h, "%s\x00%s\x00", m.Role, m.Content)
	}
	return "llm:" + hex.EncodeToString(h.Sum(nil))
}
