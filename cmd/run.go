package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/ecoslides/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, log, lesson, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := app.Options{
		Lesson:         lesson,
		Logger:         log,
		SessionID:      uuid.NewString(),
		StartSlide:     cfg.Presentation.StartSlide,
		MarkdownStyle:  cfg.Presentation.MarkdownStyle,
		SwipeThreshold: cfg.Presentation.SwipeThreshold,
		Fullscreen:     cfg.Presentation.Fullscreen,
		Splash:         cfg.Presentation.Splash,
	}
	if n, _ := cmd.Flags().GetInt("start-slide"); n > 0 {
		opts.StartSlide = n
		opts.Splash = false
	}
	if fs, _ := cmd.Flags().GetBool("fullscreen"); fs {
		opts.Fullscreen = true
	}
	if skip, _ := cmd.Flags().GetBool("no-splash"); skip {
		opts.Splash = false
	}
	if style, _ := cmd.Flags().GetString("style"); style != "" {
		cfg.Presentation.MarkdownStyle = style
		if err := cfg.Validate(); err != nil {
			return err
		}
		opts.MarkdownStyle = style
	}
	if opts.StartSlide > lesson.TotalSlides() {
		return fmt.Errorf("start slide %d out of range: lesson has %d slides", opts.StartSlide, lesson.TotalSlides())
	}

	if cfg.History {
		st, err := openStore(cmd, cfg)
		if err != nil {
			// The deck works without history.
			log.Warn("results store unavailable", zap.Error(err))
		} else {
			defer st.Close()
			opts.Repo = st.EventRepo()
		}
	}

	log.Info("starting presentation",
		zap.String("session_id", opts.SessionID),
		zap.Int("start_slide", opts.StartSlide),
		zap.Bool("history", opts.Repo != nil),
	)
	return app.Run(cmd.Context(), opts)
}
