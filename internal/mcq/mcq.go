package mcq

import "strings"

// Letter identifies one option of a multiple-choice question.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Letters is the fixed option alphabet in display order.
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD}

// ParseLetter reports whether s names an option letter, case-insensitively.
// Surrounding whitespace is ignored.
func ParseLetter(s string) (Letter, bool) {
	l := Letter(strings.ToUpper(strings.TrimSpace(s)))
	switch l {
	case LetterA, LetterB, LetterC, LetterD:
		return l, true
	}
	return "", false
}

// Record is a single multiple-choice question recovered from model output.
type Record struct {
	// Question is the prompt text. Never empty for parsed records.
	Question string

	// Options maps option letters to option text. Parsed records carry at
	// least two entries.
	Options map[Letter]string

	// Answer is the correct option letter, or "" when the model output had
	// no usable ANSWER line.
	Answer Letter
}

// HasAnswer reports whether the record carries a reference answer.
func (r Record) HasAnswer() bool {
	return r.Answer != ""
}

// Available returns the option letters present in the record, in A-D order.
// Keys outside the alphabet are ignored; lowercase keys count as their
// uppercase letter.
func (r Record) Available() []Letter {
	present := make(map[Letter]bool, len(r.Options))
	for k := range r.Options {
		if l, ok := ParseLetter(string(k)); ok {
			present[l] = true
		}
	}
	var out []Letter
	for _, l := range Letters {
		if present[l] {
			out = append(out, l)
		}
	}
	return out
}

// Option returns the text for letter l, falling back to a lowercase key.
func (r Record) Option(l Letter) string {
	if text, ok := r.Options[l]; ok {
		return text
	}
	return r.Options[Letter(strings.ToLower(string(l)))]
}
