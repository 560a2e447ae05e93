package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/ecoslides/internal/quiz"
	"github.com/abhisek/ecoslides/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a topic quiz in the plain terminal",
	Long: `Ask the questions of one topic on stdin/stdout. Answer with a letter
(A-D) or the option number. The result is recorded unless history is off.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().String("topic", "", "Quiz topic (required)")
}

// choiceIndex maps "a".."d" or "1".."4" to an option index.
func choiceIndex(answer string, n int) (int, bool) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if len(answer) != 1 {
		return 0, false
	}
	c := answer[0]
	i := -1
	switch {
	case c >= 'a' && c <= 'z':
		i = int(c - 'a')
	case c >= '1' && c <= '9':
		i = int(c - '1')
	}
	return i, i >= 0 && i < n
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, log, lesson, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	topic, _ := cmd.Flags().GetString("topic")
	if topic == "" {
		return fmt.Errorf("--topic is required; available topics: %s", strings.Join(lesson.Topics, ", "))
	}
	ctrl, err := quiz.New(topic, lesson.Questions)
	if err != nil {
		return fmt.Errorf("%w; available topics: %s", err, strings.Join(lesson.Topics, ", "))
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	labels := "ABCDEF"

	fmt.Fprintf(out, "%s Quiz (%d questions)\n\n", topic, ctrl.Len())
	for !ctrl.Snapshot().Complete {
		st := ctrl.Snapshot()
		q := ctrl.Current()

		fmt.Fprintf(out, "── Question %d/%d ──\n", st.Cursor+1, st.Total)
		fmt.Fprintln(out, q.Question)
		for j, o := range q.Options {
			fmt.Fprintf(out, "  %c) %s\n", labels[j], o)
		}

		for {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("quiz aborted: %w", err)
				}
				return errors.New("quiz aborted: input closed")
			}
			if i, ok := choiceIndex(scanner.Text(), len(q.Options)); ok {
				ctrl.SelectIndex(i)
				break
			}
			fmt.Fprintf(out, "Please answer A-%c.", labels[len(q.Options)-1])
		}

		if ctrl.LastCorrect() {
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Not quite.\033[0m Correct answer: %s\n", q.Answer)
		}
		fmt.Fprintf(out, "Explanation: %s\n\n", q.Explanation)
		ctrl.Advance()
	}

	res := ctrl.Result()
	fmt.Fprintf(out, "── %s Quiz Complete! %d/%d (%d%%) ──\n", res.Tier.Emoji(), res.Score, res.Total, int(ctrl.Accuracy()*100+0.5))
	fmt.Fprintln(out, res.Tier.Message(topic))

	if !cfg.History {
		return nil
	}
	st, err := openStore(cmd, cfg)
	if err != nil {
		log.Warn("results store unavailable", zap.Error(err))
		return nil
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	if err := st.EventRepo().AppendQuizResult(ctx, store.QuizResultData{
		SessionID: uuid.NewString(),
		Topic:     res.Topic,
		Score:     res.Score,
		Total:     res.Total,
		Tier:      res.Tier.String(),
	}); err != nil {
		return fmt.Errorf("record quiz result: %w", err)
	}
	return nil
}
