package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"book_themes/internal/segment"
)

const envPrefix = "BOOK_THEMES_"

type MarkerConfig struct {
	Chapter string `yaml:"chapter"`
	Footer  string `yaml:"footer"`
}

type VocabularyConfig struct {
	War   string `yaml:"war"`
	Peace string `yaml:"peace"`
}

type StorageConfig struct {
	Database string `yaml:"database"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Workers    int              `yaml:"workers"`
	Markers    MarkerConfig     `yaml:"markers"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Storage    StorageConfig    `yaml:"storage"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Log        LogConfig        `yaml:"log"`
}

func Default() Config {
	return Config{
		Workers: 0,
		Markers: MarkerConfig{
			Chapter: segment.DefaultChapterMarker,
			Footer:  segment.DefaultFooterMarker,
		},
		Vocabulary: VocabularyConfig{
			War:   "data/war_terms.txt",
			Peace: "data/peace_terms.txt",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// BOOK_THEMES_* environment overrides (a .env file is honoured if present).
// A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if strings.TrimSpace(c.Markers.Chapter) == "" {
		return fmt.Errorf("chapter marker is required")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

func (c Config) SegmentMarkers() segment.Markers {
	return segment.Markers{Chapter: c.Markers.Chapter, Footer: c.Markers.Footer}
}

func Marshal(c Config) ([]byte, error) {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return raw, nil
}

func applyEnv(c *Config) {
	c.Workers = getEnvInt("WORKERS", c.Workers)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Markers.Chapter = getEnv("CHAPTER_MARKER", c.Markers.Chapter)
	c.Markers.Footer = getEnv("FOOTER_MARKER", c.Markers.Footer)
	c.Vocabulary.War = getEnv("WAR_TERMS", c.Vocabulary.War)
	c.Vocabulary.Peace = getEnv("PEACE_TERMS", c.Vocabulary.Peace)
	c.Storage.Database = getEnv("DATABASE", c.Storage.Database)
	c.Metrics.Textfile = getEnv("METRICS_TEXTFILE", c.Metrics.Textfile)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(envPrefix + key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
