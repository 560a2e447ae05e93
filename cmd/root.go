package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/ecoslides/internal/config"
	"github.com/abhisek/ecoslides/internal/content"
	"github.com/abhisek/ecoslides/internal/logger"
	"github.com/abhisek/ecoslides/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "ecoslides",
	Short: "Interactive terminal lesson on populations and communities",
	Long: `Ecoslides presents a biology lesson on populations and communities as an
interactive terminal slide deck, with discussion prompts, topic quizzes, a
quadrat sampling simulation and a mark-recapture calculator.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default: ./config/config.yaml or the user config dir)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ECOSLIDES_DB env var)")
	rootCmd.PersistentFlags().String("lesson", "", "Path to an alternate lesson YAML file")
	rootCmd.PersistentFlags().Bool("no-history", false, "Do not record quiz results or sessions")

	rootCmd.Flags().Int("start-slide", 0, "Slide to open on (default from config)")
	rootCmd.Flags().Bool("fullscreen", false, "Start in fullscreen (alternate screen)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the title splash")
	rootCmd.Flags().String("style", "", "Markdown style: dark, light, notty, dracula, ...")

	rootCmd.AddCommand(slidesCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(quadratCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config and applies the
// persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("lesson"); p != "" {
		cfg.LessonPath = p
	}
	if off, _ := cmd.Flags().GetBool("no-history"); off {
		cfg.History = false
	}
	return cfg, nil
}

// setup loads config, logger and lesson for a command.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, *content.Lesson, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create logger: %w", err)
	}
	lesson, err := content.Load(cfg.LessonPath)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, fmt.Errorf("load lesson: %w", err)
	}
	log.Debug("lesson loaded",
		zap.String("title", lesson.Title),
		zap.String("version", lesson.Version),
		zap.Int("slides", lesson.TotalSlides()),
	)
	return cfg, log, lesson, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured db_path, then ECOSLIDES_DB and the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the results database.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
