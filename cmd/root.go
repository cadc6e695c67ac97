package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lectern/internal/output"
	"github.com/abhisek/lectern/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "lectern",
	Short: "Summarize study text, extract keywords and generate quiz questions",
	Long: `Lectern reads a text file and asks an LLM for a short summary, a keyword
list and multiple-choice questions. Results are printed and saved as JSON.
Run "lectern quiz" to answer the generated questions interactively.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		res, err := generate(cmd, d)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), res)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LECTERN_DB env var)")
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	defaults := pipeline.DefaultOptions()
	cmd.Flags().String("file", "input.txt", "Path to input text file")
	cmd.Flags().Int("keywords", defaults.Keywords, "Number of keywords to extract")
	cmd.Flags().Int("questions", defaults.Questions, "Number of MCQs to generate")
	cmd.Flags().String("out", "outputs.json", "JSON output file path (empty to skip)")
	cmd.Flags().Bool("parallel", false, "Run the generation stages concurrently")
}

// generate reads the input file, runs the pipeline and saves the result
// to --out.
func generate(cmd *cobra.Command, d *deps) (pipeline.Result, error) {
	file, _ := cmd.Flags().GetString("file")
	outPath, _ := cmd.Flags().GetString("out")
	opts := pipeline.DefaultOptions()
	opts.Keywords, _ = cmd.Flags().GetInt("keywords")
	opts.Questions, _ = cmd.Flags().GetInt("questions")
	opts.Parallel, _ = cmd.Flags().GetBool("parallel")

	text, err := pipeline.ReadInput(file)
	if err != nil {
		return pipeline.Result{}, err
	}

	res := pipeline.New(d.router, d.log).Run(cmd.Context(), text, opts)

	if outPath != "" {
		if err := output.Write(outPath, output.FromResult(res)); err != nil {
			return res, err
		}
		d.log.Info("saved output", zap.String("path", outPath))
	}
	return res, nil
}

// printReport writes the three sections followed by any warnings.
func printReport(w io.Writer, res pipeline.Result) {
	fmt.Fprint(w, "\n=== SUMMARY ===\n\n")
	fmt.Fprintln(w, res.Summary)

	fmt.Fprint(w, "\n=== KEYWORDS ===\n\n")
	fmt.Fprintln(w, strings.Join(res.Keywords, ", "))

	fmt.Fprint(w, "\n=== MCQS ===\n\n")
	for i, rec := range res.MCQs {
		fmt.Fprintf(w, "%d. %s\n", i+1, rec.Question)
		for _, l := range rec.Available() {
			fmt.Fprintf(w, "   %s. %s\n", l, rec.Option(l))
		}
		if rec.HasAnswer() {
			fmt.Fprintf(w, "   Answer: %s\n", rec.Answer)
		}
		fmt.Fprintln(w)
	}

	printWarnings(w, res.Warnings)
}

func printWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprint(w, "\nWarnings:\n")
	for _, warn := range warnings {
		fmt.Fprintf(w, " - %s\n", warn)
	}
}
