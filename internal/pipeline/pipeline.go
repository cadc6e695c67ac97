// Package pipeline turns source text into a summary, a keyword list and
// multiple-choice questions. Each stage is isolated: a failing stage
// contributes a warning and an empty value, never an error.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/lectern/internal/keywords"
	"github.com/abhisek/lectern/internal/llm"
	"github.com/abhisek/lectern/internal/mcq"
	"github.com/abhisek/lectern/internal/textgen"
)

// Count bounds. Out-of-range counts are clamped with a warning.
const (
	MaxKeywords  = 100
	MaxQuestions = 50
)

// Options controls a single run.
type Options struct {
	Keywords  int `validate:"gte=0,lte=100"`
	Questions int `validate:"gte=0,lte=50"`

	// Parallel runs the three stages concurrently.
	Parallel bool
}

// DefaultOptions returns the CLI defaults.
func DefaultOptions() Options {
	return Options{Keywords: 8, Questions: 5}
}

// Result aggregates the three stages. Slices are never nil.
type Result struct {
	Summary  string
	Keywords []string
	MCQs     []mcq.Record
	Warnings []string
}

// outcome is the result of one stage: a value, or the error that replaced
// it. notes are warnings raised by a stage that otherwise succeeded.
type outcome[T any] struct {
	value T
	err   error
	notes []string
}

// reduce returns the stage value, or empty when the stage failed, and
// appends the stage's warnings to warnings.
func reduce[T any](o outcome[T], empty T, warnings *[]string) T {
	if o.err != nil {
		*warnings = append(*warnings, o.err.Error())
		return empty
	}
	*warnings = append(*warnings, o.notes...)
	return o.value
}

// Orchestrator sequences the generation stages over a text port.
type Orchestrator struct {
	port     textgen.Port
	log      *zap.Logger
	validate *validator.Validate
}

// New creates an orchestrator. A nil logger disables logging.
func New(port textgen.Port, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{port: port, log: log, validate: validator.New()}
}

// Run executes the summary, keywords and MCQ stages over text. Warnings
// about clamped options come first, then stage warnings in summary,
// keywords, MCQs order regardless of Parallel.
func (o *Orchestrator) Run(ctx context.Context, text string, opts Options) Result {
	opts, clamped := o.clamp(opts)

	var (
		sum outcome[string]
		kw  outcome[[]string]
		qs  outcome[[]mcq.Record]
	)

	if opts.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { sum = o.summary(gctx, text); return nil })
		g.Go(func() error { kw = o.keywords(gctx, text, opts.Keywords); return nil })
		g.Go(func() error { qs = o.mcqs(gctx, text, opts.Questions); return nil })
		_ = g.Wait()
	} else {
		sum = o.summary(ctx, text)
		kw = o.keywords(ctx, text, opts.Keywords)
		qs = o.mcqs(ctx, text, opts.Questions)
	}

	res := Result{Warnings: clamped}
	res.Summary = reduce(sum, "", &res.Warnings)
	res.Keywords = reduce(kw, []string{}, &res.Warnings)
	res.MCQs = reduce(qs, []mcq.Record{}, &res.Warnings)
	return res
}

// clamp pulls counts that fail validation back into range and returns one
// warning per adjusted field.
func (o *Orchestrator) clamp(opts Options) (Options, []string) {
	warnings := []string{}

	var verrs validator.ValidationErrors
	if err := o.validate.Struct(opts); !errors.As(err, &verrs) {
		return opts, warnings
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Keywords":
			n := min(max(opts.Keywords, 0), MaxKeywords)
			warnings = append(warnings, fmt.Sprintf("keywords: count %d out of range, using %d", opts.Keywords, n))
			opts.Keywords = n
		case "Questions":
			n := min(max(opts.Questions, 0), MaxQuestions)
			warnings = append(warnings, fmt.Sprintf("mcqs: count %d out of range, using %d", opts.Questions, n))
			opts.Questions = n
		}
	}
	o.log.Warn("options clamped", zap.Strings("warnings", warnings))
	return opts, warnings
}

func (o *Orchestrator) summary(ctx context.Context, text string) outcome[string] {
	if isBlank(text) {
		return outcome[string]{}
	}
	raw, err := o.generate(ctx, llm.PurposeSummary, summaryPrompt(text), summaryMaxTokens, textgen.HintA)
	return outcome[string]{value: raw, err: err}
}

func (o *Orchestrator) keywords(ctx context.Context, text string, count int) outcome[[]string] {
	if isBlank(text) || count == 0 {
		return outcome[[]string]{value: []string{}}
	}
	raw, err := o.generate(ctx, llm.PurposeKeywords, keywordsPrompt(text, count), keywordsMaxTokens, textgen.HintB)
	if err != nil {
		return outcome[[]string]{err: err}
	}
	return outcome[[]string]{value: keywords.Normalize(raw, count)}
}

func (o *Orchestrator) mcqs(ctx context.Context, text string, count int) outcome[[]mcq.Record] {
	if isBlank(text) || count == 0 {
		return outcome[[]mcq.Record]{value: []mcq.Record{}}
	}
	raw, err := o.generate(ctx, llm.PurposeMCQs, mcqPrompt(text, count), mcqMaxTokens, textgen.HintB)
	if err != nil {
		return outcome[[]mcq.Record]{err: err}
	}

	records := mcq.Parse(raw, count)
	out := outcome[[]mcq.Record]{value: records}
	if len(records) < count {
		o.log.Info("fewer questions parsed than requested",
			zap.Int("requested", count),
			zap.Int("parsed", len(records)),
		)
		out.notes = append(out.notes, fmt.Sprintf("mcqs: requested %d questions, parsed %d", count, len(records)))
	}
	return out
}

func (o *Orchestrator) generate(ctx context.Context, stage, prompt string, maxTokens int, hint textgen.Hint) (string, error) {
	log := o.log.With(zap.String("stage", stage), zap.Stringer("hint", hint))
	log.Info("generating")

	raw, err := o.port.Generate(llm.WithPurpose(ctx, stage), prompt, maxTokens, hint)
	if err != nil {
		log.Warn("stage failed", zap.Error(err))
		return "", err
	}
	return raw, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
