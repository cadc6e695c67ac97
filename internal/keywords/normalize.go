// Package keywords cleans comma-separated keyword lists produced by a model.
package keywords

import "strings"

// enumerationChars are stripped from the front of every keyword so that
// numbered ("1. apple") and bulleted ("• apple", "- apple") output
// collapses to the bare term.
const enumerationChars = "0123456789. -•"

// Normalize splits raw on commas and returns at most count cleaned
// keywords in their original order. Empty pieces are discarded; duplicate
// values are kept.
func Normalize(raw string, count int) []string {
	out := make([]string, 0, max(count, 0))
	if count <= 0 {
		return out
	}
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		piece = strings.TrimSpace(strings.TrimLeft(piece, enumerationChars))
		if piece == "" {
			continue
		}
		out = append(out, piece)
		if len(out) == count {
			break
		}
	}
	return out
}
