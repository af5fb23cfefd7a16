package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/cadence/internal/domain"
)

// SourceConfig describes a single ICS subscription source.
type SourceConfig struct {
	// ID is an internal identifier used for de-dup and logging.
	ID string `yaml:"id"`
	// Name is a human-friendly label.
	Name string `yaml:"name"`
	// URL is the ICS subscription endpoint. file:// and plain paths are
	// accepted for local calendars.
	URL string `yaml:"url"`
	// Calendar assigns the calendar type (work or personal).
	// Defaults to "work".
	Calendar string `yaml:"calendar"`
}

// fileConfig mirrors Config with optional fields as pointers so that an
// absent key can be told apart from a zero value.
type fileConfig struct {
	DBPath           string         `yaml:"db_path"`
	Timezone         string         `yaml:"timezone"`
	RangeDays        *int           `yaml:"range_days"`
	MinEvents        *int           `yaml:"min_events"`
	IncludeRecurring *bool          `yaml:"include_recurring"`
	Sources          []SourceConfig `yaml:"sources"`
}

// Config is the resolved application configuration.
type Config struct {
	DBPath           string
	Timezone         string
	RangeDays        int
	MinEvents        int
	IncludeRecurring bool
	Sources          []SourceConfig
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Timezone:         "UTC",
		RangeDays:        30,
		MinEvents:        10,
		IncludeRecurring: true,
	}
}

// DefaultPath returns ~/.cadence/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".cadence", "config.yaml"), nil
}

// Load reads the YAML config at path. A missing file yields the defaults
// rather than an error, so first runs work without setup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return resolve(&fc), nil
}

// resolve fills in defaults for any field the file left out.
func resolve(fc *fileConfig) *Config {
	def := Default()
	cfg := &Config{
		DBPath:           strOr(fc.DBPath, def.DBPath),
		Timezone:         strOr(fc.Timezone, def.Timezone),
		RangeDays:        ptrOr(fc.RangeDays, def.RangeDays),
		MinEvents:        ptrOr(fc.MinEvents, def.MinEvents),
		IncludeRecurring: ptrOr(fc.IncludeRecurring, def.IncludeRecurring),
		Sources:          fc.Sources,
	}
	for i := range cfg.Sources {
		cfg.Sources[i].Calendar = strOr(cfg.Sources[i].Calendar, string(domain.CalendarWork))
		cfg.Sources[i].ID = strOr(cfg.Sources[i].ID, fmt.Sprintf("source-%d", i+1))
	}
	return cfg
}

func strOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// ptrOr dereferences p when the file set the key, otherwise returns def.
func ptrOr[T any](p *T, def T) T {
	if p != nil {
		return *p
	}
	return def
}

// Location resolves the configured timezone, falling back to UTC when the
// name cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
