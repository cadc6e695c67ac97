// Package textgen is the text-generation port used by the pipeline: a
// prompt and token budget go in, trimmed model text comes out.
package textgen

import (
	"context"
	"fmt"
)

// Hint selects which of the two configured providers serves a call.
type Hint int

const (
	HintA Hint = iota
	HintB
)

func (h Hint) String() string {
	switch h {
	case HintA:
		return "A"
	case HintB:
		return "B"
	default:
		return fmt.Sprintf("Hint(%d)", int(h))
	}
}

// Port generates text for a prompt.
type Port interface {
	Generate(ctx context.Context, prompt string, maxTokens int, hint Hint) (string, error)
}

// ProviderError is the only error a Port returns. Message is the
// human-readable text surfaced as a pipeline warning.
type ProviderError struct {
	Hint    Hint
	Message string
	Err     error
}

func (e *ProviderError) Error() string { return e.Message }

func (e *ProviderError) Unwrap() error { return e.Err }
