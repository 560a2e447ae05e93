package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/ecoslides/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded quiz results or sessions",
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

		limit, _ := cmd.Flags().GetInt("limit")
		topic, _ := cmd.Flags().GetString("topic")
		opts := store.QueryOpts{Limit: limit, Topic: topic}
		repo := st.EventRepo()
		w := cmd.OutOrStdout()

		if sessions, _ := cmd.Flags().GetBool("sessions"); sessions {
			events, err := repo.QuerySessionEvents(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("query sessions: %w", err)
			}
			if len(events) == 0 {
				fmt.Fprintln(w, "No sessions recorded yet.")
				return nil
			}
			fmt.Fprintf(w, "%-19s  %-36s  %-5s  %6s  %7s  %8s\n", "Time", "Session", "Event", "Slides", "Quizzes", "Duration")
			fmt.Fprintln(w, strings.Repeat("─", 92))
			for _, e := range events {
				fmt.Fprintf(w, "%-19s  %-36s  %-5s  %6d  %7d  %7ds\n",
					e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.SessionID, e.Action,
					e.SlidesVisited, e.QuizzesCompleted, e.DurationSecs)
			}
			return nil
		}

		results, err := repo.QueryQuizResults(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query quiz results: %w", err)
		}
		if len(results) == 0 {
			fmt.Fprintln(w, "No quiz results recorded yet.")
			return nil
		}
		fmt.Fprintf(w, "%-19s  %-22s  %5s  %5s  %s\n", "Time", "Topic", "Score", "Pct", "Tier")
		fmt.Fprintln(w, strings.Repeat("─", 70))
		for _, r := range results {
			fmt.Fprintf(w, "%-19s  %-22s  %2d/%-2d  %4.0f%%  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"), r.Topic,
				r.Score, r.Total, r.Accuracy()*100, r.Tier)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum rows to show (0 = all)")
	historyCmd.Flags().String("topic", "", "Only show this topic")
	historyCmd.Flags().Bool("sessions", false, "Show presentation sessions instead of quiz results")
}
