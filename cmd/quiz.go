package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lectern/internal/mcq"
	"github.com/abhisek/lectern/internal/output"
	"github.com/abhisek/lectern/internal/quiz"
	"github.com/abhisek/lectern/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer generated multiple-choice questions interactively",
	Long: `Generate questions from --file (or load them from a saved JSON document
with --from) and answer them one at a time by typing the option letter.
Press Ctrl+C to stop; an interrupted quiz is not recorded.`,
	SilenceUsage: true,
	RunE:         runQuiz,
}

func init() {
	addGenerateFlags(quizCmd)
	quizCmd.Flags().String("from", "", "Quiz on questions from a saved output JSON instead of generating")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	d, err := newDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	out := cmd.OutOrStdout()

	records, source, err := quizRecords(cmd, d)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		fmt.Fprintln(out, "\nCancelled.")
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "\nNo MCQs generated.")
		return nil
	}

	fmt.Fprintln(out)
	lipgloss.Fprintln(out, styleTitle.Render("Starting quiz. Answer each question by typing A, B, C or D."))
	fmt.Fprintln(out)

	session := quiz.NewSession(
		quiz.NewLineSource(cmd.InOrStdin(), out),
		quiz.WithObserver(&terminalObserver{w: out}),
	)
	res, err := session.Run(ctx, records)
	if errors.Is(err, quiz.ErrAborted) {
		d.log.Debug("quiz aborted", zap.Error(err))
		fmt.Fprintln(out, "\nCancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Quiz finished. Score: %d/%d\n", res.Score, res.Total)
	d.recordAttempt(ctx, attemptFrom(source, res))
	return nil
}

// quizRecords loads questions from --from or generates them.
func quizRecords(cmd *cobra.Command, d *deps) ([]mcq.Record, string, error) {
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		doc, err := output.Load(from)
		if err != nil {
			return nil, "", fmt.Errorf("load %s: %w", from, err)
		}
		return doc.Records(), from, nil
	}

	res, err := generate(cmd, d)
	if err != nil {
		return nil, "", err
	}
	printWarnings(cmd.OutOrStdout(), res.Warnings)
	file, _ := cmd.Flags().GetString("file")
	return res.MCQs, file, nil
}

func attemptFrom(source string, res quiz.Result) *store.Attempt {
	a := &store.Attempt{Source: source, Score: res.Score, Total: res.Total}
	for _, step := range res.Steps {
		switch step.Outcome {
		case quiz.OutcomeSkipped:
			a.Skipped++
		case quiz.OutcomeUnverifiable:
			a.Unverifiable++
		}
	}
	return a
}

// terminalObserver prints each question and its feedback.
type terminalObserver struct {
	w io.Writer
}

func (o *terminalObserver) Presenting(index int, rec mcq.Record, available []mcq.Letter) {
	lipgloss.Fprintln(o.w, styleQuestion.Render(fmt.Sprintf("%d. %s", index+1, rec.Question)))
	for _, l := range available {
		fmt.Fprintf(o.w, "   %s. %s\n", l, rec.Option(l))
	}
}

func (o *terminalObserver) Rejected(_ int, _ string, available []mcq.Letter) {
	lipgloss.Fprintln(o.w, styleHint.Render(
		fmt.Sprintf("Please enter one of the option letters shown (%s).", joinLetters(available))))
}

func (o *terminalObserver) Finished(step quiz.Step) {
	switch step.Outcome {
	case quiz.OutcomeSkipped:
		fmt.Fprintf(o.w, "%d. %s\n", step.Index+1, step.Record.Question)
		lipgloss.Fprintln(o.w, styleHint.Render("   (no valid options; skipped)"))
	case quiz.OutcomeCorrect:
		lipgloss.Fprintln(o.w, styleCorrect.Render("Correct."))
	case quiz.OutcomeIncorrect:
		lipgloss.Fprintln(o.w, styleIncorrect.Render("Incorrect. Correct answer: "+string(step.Record.Answer)))
	case quiz.OutcomeUnverifiable:
		lipgloss.Fprintln(o.w, styleHint.Render("No reference answer available for this question."))
	}
	fmt.Fprintln(o.w)
}

func joinLetters(ls []mcq.Letter) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}
