package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour/styles"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ECOSLIDES_DB_PATH.
const EnvPrefix = "ECOSLIDES"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env          string       `mapstructure:"env"`         // local, dev, production
	LogFile      string       `mapstructure:"log_file"`    // empty disables logging
	DBPath       string       `mapstructure:"db_path"`     // empty uses the XDG data dir
	History      bool         `mapstructure:"history"`     // record quiz results
	LessonPath   string       `mapstructure:"lesson_path"` // empty uses the embedded lesson
	Presentation Presentation `mapstructure:"presentation"`
}

// Presentation contains settings for the slide deck UI.
type Presentation struct {
	StartSlide     int    `mapstructure:"start_slide"`
	Fullscreen     bool   `mapstructure:"fullscreen"`
	Splash         bool   `mapstructure:"splash"`
	SwipeThreshold int    `mapstructure:"swipe_threshold"` // cells
	MarkdownStyle  string `mapstructure:"markdown_style"`  // glamour standard style name
}

// IsProduction reports whether the production logger should be used.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from an optional config file, a .env file and
// environment variables. An explicit path must exist; otherwise the
// default search locations are tried and a missing file is not an error.
func Load(path string) (*Config, error) {
	// A missing .env is fine; anything else is worth reporting.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "ecoslides"))
		}
	}

	v.SetDefault("env", "local")
	v.SetDefault("log_file", "")
	v.SetDefault("db_path", "")
	v.SetDefault("history", true)
	v.SetDefault("lesson_path", "")
	v.SetDefault("presentation.start_slide", 1)
	v.SetDefault("presentation.fullscreen", false)
	v.SetDefault("presentation.splash", true)
	v.SetDefault("presentation.swipe_threshold", 10)
	v.SetDefault("presentation.markdown_style", "dark")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	var errs []string
	if c.Presentation.StartSlide < 1 {
		errs = append(errs, fmt.Sprintf("presentation.start_slide must be >= 1, got %d", c.Presentation.StartSlide))
	}
	if c.Presentation.SwipeThreshold < 1 {
		errs = append(errs, fmt.Sprintf("presentation.swipe_threshold must be >= 1, got %d", c.Presentation.SwipeThreshold))
	}
	if _, ok := styles.DefaultStyles[c.Presentation.MarkdownStyle]; !ok {
		errs = append(errs, fmt.Sprintf("presentation.markdown_style %q is not a known style", c.Presentation.MarkdownStyle))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
