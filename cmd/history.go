package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStoreFromEnv(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		attempts, err := s.AttemptRepo().ListAttempts(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No quiz attempts recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-8s  %-19s  %-7s  %-7s  %-12s  %s\n",
			"ID", "Timestamp", "Score", "Skipped", "Unverifiable", "Source")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		for _, a := range attempts {
			fmt.Fprintf(out, "%-8s  %-19s  %-7s  %-7d  %-12d  %s\n",
				truncate(a.ID, 8),
				a.Timestamp.Local().Format("2006-01-02 15:04:05"),
				fmt.Sprintf("%d/%d", a.Score, a.Total),
				a.Skipped,
				a.Unverifiable,
				a.Source,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
}
