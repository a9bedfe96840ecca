// Package config loads tool configuration from TOML files, the environment,
// and built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultSeparator     = ","
	DefaultTruncateWidth = 20
	DefaultTasksFile     = "tasks.json"
	DefaultQuestionsFile = "questions.json"
	DefaultLogLevel      = "info"
)

// ProjectConfigFile is the per-directory config file name.
const ProjectConfigFile = "csvtool.toml"

// Config holds settings shared by the csvtool, todo, and quiz binaries.
type Config struct {
	Separator     string `toml:"separator"`
	TruncateWidth int    `toml:"truncate_width"`
	TasksFile     string `toml:"tasks_file"`
	QuestionsFile string `toml:"questions_file"`
	LogLevel      string `toml:"log_level"`
}

// Load builds the effective configuration. Sources in priority order:
// defaults, user config file, project config file, environment variables.
// Flags parsed by the binaries override the result per invocation.
func Load() (*Config, error) {
	cfg := &Config{
		Separator:     DefaultSeparator,
		TruncateWidth: DefaultTruncateWidth,
		TasksFile:     DefaultTasksFile,
		QuestionsFile: DefaultQuestionsFile,
		LogLevel:      DefaultLogLevel,
	}

	if dir, err := os.UserConfigDir(); err == nil {
		if err := loadFile(cfg, filepath.Join(dir, "csvtool", ProjectConfigFile)); err != nil {
			return nil, err
		}
	}
	if err := loadFile(cfg, ProjectConfigFile); err != nil {
		return nil, err
	}
	loadEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges one TOML file into cfg. Missing files are not an error.
func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("CSVTOOL_SEPARATOR"); v != "" {
		cfg.Separator = v
	}
	if v := os.Getenv("CSVTOOL_TASKS_FILE"); v != "" {
		cfg.TasksFile = v
	}
	if v := os.Getenv("CSVTOOL_QUESTIONS_FILE"); v != "" {
		cfg.QuestionsFile = v
	}
	if v := os.Getenv("CSVTOOL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CSVTOOL_TRUNCATE_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TruncateWidth = n
		}
	}
}

func (c *Config) validate() error {
	if len(c.Separator) != 1 {
		return fmt.Errorf("separator must be a single byte, got %q", c.Separator)
	}
	if c.TruncateWidth < 4 {
		return fmt.Errorf("truncate_width must be at least 4, got %d", c.TruncateWidth)
	}
	return nil
}
