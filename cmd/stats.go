package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/ecoslides/internal/quiz"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics per topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.EventRepo().TopicStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("topic stats: %w", err)
		}
		w := cmd.OutOrStdout()
		if len(stats) == 0 {
			fmt.Fprintln(w, "No quiz results recorded yet.")
			return nil
		}

		fmt.Fprintf(w, "%-22s  %8s  %6s  %6s  %-13s  %s\n", "Topic", "Attempts", "Best", "Mean", "Tier", "Last")
		fmt.Fprintln(w, strings.Repeat("─", 80))
		for _, s := range stats {
			fmt.Fprintf(w, "%-22s  %8d  %5.0f%%  %5.0f%%  %-13s  %s\n",
				s.Topic, s.Attempts, s.BestAccuracy*100, s.MeanAccuracy*100,
				quiz.TierFor(s.BestAccuracy), s.LastAttempt.Local().Format("2006-01-02"))
		}
		return nil
	},
}
