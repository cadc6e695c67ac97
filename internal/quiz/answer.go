package quiz

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/abhisek/lectern/internal/mcq"
)

// Prompt is what an AnswerSource is asked about.
type Prompt struct {
	Index     int
	Record    mcq.Record
	Available []mcq.Letter
}

// AnswerSource supplies the learner's raw input for a question. The session
// trims and uppercases the input and asks again until it names one of the
// available letters. Returning an error aborts the session.
type AnswerSource interface {
	NextAnswer(ctx context.Context, p Prompt) (string, error)
}

// LineSource reads one line of input per answer, writing a short prompt to
// out before each read. Reads honour context cancellation.
type LineSource struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan lineResult
}

type lineResult struct {
	text string
	err  error
}

// NewLineSource creates a LineSource over in. Prompts go to out.
func NewLineSource(in io.Reader, out io.Writer) *LineSource {
	return &LineSource{in: in, out: out}
}

func (s *LineSource) NextAnswer(ctx context.Context, p Prompt) (string, error) {
	s.once.Do(s.start)

	fmt.Fprintf(s.out, "Your answer (%s): ", letterRange(p.Available))

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return r.text, r.err
	}
}

// start launches the reader goroutine. It blocks on the underlying reader,
// so a cancelled session may leave it parked until the input closes.
func (s *LineSource) start() {
	s.lines = make(chan lineResult)
	go func() {
		defer close(s.lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			s.lines <- lineResult{text: scanner.Text()}
		}
		if err := scanner.Err(); err != nil {
			s.lines <- lineResult{err: err}
		}
	}()
}

// letterRange renders available letters for the input prompt, e.g. "A-D"
// for a full set and "A/C" for a sparse one.
func letterRange(available []mcq.Letter) string {
	if len(available) == len(mcq.Letters) {
		return "A-D"
	}
	parts := make([]string, len(available))
	for i, l := range available {
		parts[i] = string(l)
	}
	return strings.Join(parts, "/")
}

// ScriptedSource replays a fixed list of inputs and records every prompt it
// receives. It returns io.EOF once the script runs out.
type ScriptedSource struct {
	mu      sync.Mutex
	inputs  []string
	Prompts []Prompt
}

// NewScriptedSource creates a ScriptedSource that answers with inputs in order.
func NewScriptedSource(inputs ...string) *ScriptedSource {
	return &ScriptedSource{inputs: inputs}
}

func (s *ScriptedSource) NextAnswer(_ context.Context, p Prompt) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Prompts = append(s.Prompts, p)
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	next := s.inputs[0]
	s.inputs = s.inputs[1:]
	return next, nil
}

// Remaining returns the number of unused scripted inputs.
func (s *ScriptedSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inputs)
}
