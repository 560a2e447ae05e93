package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/ecoslides/internal/slide"
)

var slidesCmd = &cobra.Command{
	Use:   "slides [index]",
	Short: "List the slides, or print one slide",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, lesson, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid slide index %q", args[0])
			}
			s, ok := lesson.Slide(n)
			if !ok {
				return fmt.Errorf("slide %d out of range: lesson has %d slides", n, lesson.TotalSlides())
			}
			if raw, _ := cmd.Flags().GetBool("raw"); raw {
				fmt.Fprint(cmd.OutOrStdout(), slide.Plain(s))
				return nil
			}
			width, _ := cmd.Flags().GetInt("width")
			out, err := slide.NewRenderer(cfg.Presentation.MarkdownStyle).Render(s, width)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%3s  %-60s  %-10s  %s\n", "#", "Title", "Activity", "Prompt")
		fmt.Fprintln(w, strings.Repeat("─", 86))
		for _, s := range lesson.Slides {
			title := s.Title
			if len([]rune(title)) > 60 {
				title = string([]rune(title)[:57]) + "..."
			}
			prompt := ""
			if _, ok := lesson.PromptFor(s.Index); ok {
				prompt = "yes"
			}
			fmt.Fprintf(w, "%3d  %-60s  %-10s  %s\n", s.Index, title, string(s.Widget), prompt)
		}
		fmt.Fprintf(w, "\n%d slides, %d prompts\n", lesson.TotalSlides(), len(lesson.Prompts))
		return nil
	},
}

func init() {
	slidesCmd.Flags().Bool("raw", false, "Print the slide markdown without rendering")
	slidesCmd.Flags().Int("width", 80, "Render width")
}
