// Package quiz runs an interactive scoring session over parsed MCQ records.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/lectern/internal/mcq"
)

// ErrAborted is returned when the answer source stops before the last
// question was scored. The question in progress is not scored.
var ErrAborted = errors.New("quiz aborted")

// State is where a single question is in its lifecycle.
type State int

const (
	StatePresenting     State = iota // Question shown, no input yet
	StateAwaitingAnswer              // Waiting on the answer source
	StateScored                      // A valid letter was submitted
	StateSkipped                     // No options to choose from; never prompted
)

func (s State) String() string {
	switch s {
	case StatePresenting:
		return "presenting"
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateScored:
		return "scored"
	case StateSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is the result of a finished question.
type Outcome int

const (
	OutcomeSkipped      Outcome = iota // Structurally invalid, not prompted
	OutcomeCorrect                     // Matched the reference answer
	OutcomeIncorrect                   // Did not match the reference answer
	OutcomeUnverifiable                // No reference answer to compare against
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeUnverifiable:
		return "unverifiable"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Step records what happened to one question.
type Step struct {
	// Index is the zero-based position of the question in the session.
	Index int

	// Record is the question as it was presented. Never modified.
	Record mcq.Record

	// Available are the letters the learner could choose from, in A-D order.
	Available []mcq.Letter

	// State is StateScored or StateSkipped once the step is finished.
	State State

	// Submitted is the accepted letter, empty for skipped questions.
	Submitted mcq.Letter

	// Outcome is how the submission was scored.
	Outcome Outcome
}

// Result is the running or final tally of a session.
type Result struct {
	Score int
	Total int
	Steps []Step
}

// Observer is notified of session transitions. Embed NopObserver to
// implement only some of the methods.
type Observer interface {
	// Presenting is called before a question with options is prompted.
	Presenting(index int, rec mcq.Record, available []mcq.Letter)

	// Rejected is called when the answer source returned input that is not
	// one of the available letters. The question is prompted again.
	Rejected(index int, input string, available []mcq.Letter)

	// Finished is called once per question after it was scored or skipped.
	Finished(step Step)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) Presenting(int, mcq.Record, []mcq.Letter) {}
func (NopObserver) Rejected(int, string, []mcq.Letter)       {}
func (NopObserver) Finished(Step)                            {}

// Session drives one pass over a fixed list of questions.
type Session struct {
	source   AnswerSource
	observer Observer
}

// Option configures a Session.
type Option func(*Session)

// WithObserver sets the observer notified of each transition.
func WithObserver(o Observer) Option {
	return func(s *Session) { s.observer = o }
}

// NewSession creates a session that reads answers from source.
func NewSession(source AnswerSource, opts ...Option) *Session {
	s := &Session{source: source, observer: NopObserver{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run asks every question in order and returns the final score. Total
// counts every record, including skipped ones. Questions without a
// reference answer are asked but never scored.
//
// If the answer source fails, Run returns the result so far together with
// an error wrapping ErrAborted and the source's error.
func (s *Session) Run(ctx context.Context, records []mcq.Record) (Result, error) {
	res := Result{Total: len(records)}

	for i, rec := range records {
		step, err := s.ask(ctx, i, rec)
		if err != nil {
			return res, fmt.Errorf("%w at question %d: %w", ErrAborted, i+1, err)
		}
		if step.Outcome == OutcomeCorrect {
			res.Score++
		}
		res.Steps = append(res.Steps, step)
		s.observer.Finished(step)
	}
	return res, nil
}

// ask moves one record through Presenting → AwaitingAnswer → Scored, or
// straight to Skipped when there is nothing to choose from.
func (s *Session) ask(ctx context.Context, index int, rec mcq.Record) (Step, error) {
	step := Step{
		Index:     index,
		Record:    rec,
		Available: rec.Available(),
		State:     StatePresenting,
	}
	if len(step.Available) == 0 {
		step.State = StateSkipped
		step.Outcome = OutcomeSkipped
		return step, nil
	}

	s.observer.Presenting(index, rec, step.Available)
	step.State = StateAwaitingAnswer

	prompt := Prompt{Index: index, Record: rec, Available: step.Available}
	for {
		if err := ctx.Err(); err != nil {
			return step, err
		}
		input, err := s.source.NextAnswer(ctx, prompt)
		if err != nil {
			return step, err
		}
		letter := mcq.Letter(strings.ToUpper(strings.TrimSpace(input)))
		if slices.Contains(step.Available, letter) {
			step.Submitted = letter
			break
		}
		s.observer.Rejected(index, input, step.Available)
	}

	step.State = StateScored
	switch {
	case !rec.HasAnswer():
		step.Outcome = OutcomeUnverifiable
	case strings.EqualFold(string(step.Submitted), string(rec.Answer)):
		step.Outcome = OutcomeCorrect
	default:
		step.Outcome = OutcomeIncorrect
	}
	return step, nil
}
