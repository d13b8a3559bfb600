// Package config loads the jstruct TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	m "github.com/mouse-blink/jstruct/internal/model"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "./jstruct.toml"

// MaxIndent bounds outline.indent.
const MaxIndent = 16

// Config is the decoded configuration file.
type Config struct {
	Sync    Sync    `toml:"sync"`
	Outline Outline `toml:"outline"`
	Log     Log     `toml:"log"`
	Metrics Metrics `toml:"metrics"`
	Watch   Watch   `toml:"watch"`
}

// Sync controls change confirmation and background parsing.
type Sync struct {
	PollInterval time.Duration `toml:"poll_interval"`
	Timeout      time.Duration `toml:"timeout"`
	ReparseDelay time.Duration `toml:"reparse_delay"`
}

// Outline controls how members are laid out and written.
type Outline struct {
	Indent      *int     `toml:"indent"`
	PinnedAreas []string `toml:"pinned_areas"`
	Autosave    *bool    `toml:"autosave"`
}

// Log configures the logger.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Metrics configures the prometheus endpoint. An empty address disables it.
type Metrics struct {
	Address string `toml:"address"`
}

// Watch configures external change detection.
type Watch struct {
	Enabled  *bool         `toml:"enabled"`
	Debounce time.Duration `toml:"debounce"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads, completes and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(string(data))
}

// LoadOptional is Load, except that a missing file yields Default.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Parse decodes TOML text into a validated configuration.
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Sync.PollInterval == 0 {
		cfg.Sync.PollInterval = 50 * time.Millisecond
	}
	if cfg.Sync.Timeout == 0 {
		cfg.Sync.Timeout = 5 * time.Second
	}

	if cfg.Outline.Indent == nil {
		indent := 4
		cfg.Outline.Indent = &indent
	}
	if cfg.Outline.PinnedAreas == nil {
		cfg.Outline.PinnedAreas = []string{"variable", "method"}
	}
	if cfg.Outline.Autosave == nil {
		enabled := true
		cfg.Outline.Autosave = &enabled
	}

	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Watch.Enabled == nil {
		enabled := true
		cfg.Watch.Enabled = &enabled
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 200 * time.Millisecond
	}
}

func validate(cfg *Config) error {
	if cfg.Sync.PollInterval <= 0 {
		return fmt.Errorf("sync.poll_interval must be > 0, got %s", cfg.Sync.PollInterval)
	}
	if cfg.Sync.Timeout < cfg.Sync.PollInterval {
		return fmt.Errorf("sync.timeout (%s) must be >= sync.poll_interval (%s)", cfg.Sync.Timeout, cfg.Sync.PollInterval)
	}
	if cfg.Sync.ReparseDelay < 0 {
		return fmt.Errorf("sync.reparse_delay must be >= 0, got %s", cfg.Sync.ReparseDelay)
	}

	if indent := *cfg.Outline.Indent; indent < 0 || indent > MaxIndent {
		return fmt.Errorf("outline.indent must be in [0,%d], got %d", MaxIndent, indent)
	}
	if _, err := cfg.PinnedKinds(); err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Log.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}

	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must be >= 0, got %s", cfg.Watch.Debounce)
	}

	return nil
}

// PinnedKinds converts outline.pinned_areas into member kinds.
func (c *Config) PinnedKinds() ([]m.MemberKind, error) {
	kinds := make([]m.MemberKind, 0, len(c.Outline.PinnedAreas))

	for i, name := range c.Outline.PinnedAreas {
		kind, err := m.ParseMemberKind(name)
		if err != nil {
			return nil, fmt.Errorf("outline.pinned_areas[%d]: %w", i, err)
		}

		kinds = append(kinds, kind)
	}

	return kinds, nil
}

// IndentWidth returns outline.indent.
func (c *Config) IndentWidth() int {
	return *c.Outline.Indent
}

// AutosaveEnabled returns outline.autosave.
func (c *Config) AutosaveEnabled() bool {
	return *c.Outline.Autosave
}

// WatchEnabled returns watch.enabled.
func (c *Config) WatchEnabled() bool {
	return *c.Watch.Enabled
}

// LogFile returns log.file, or the per-user state location when unset.
func (c *Config) LogFile() string {
	if strings.TrimSpace(c.Log.File) != "" {
		return c.Log.File
	}

	return DefaultLogFile()
}

// DefaultLogFile returns $XDG_STATE_HOME/jstruct/jstruct.log, falling back
// to ~/.jstruct/jstruct.log.
func DefaultLogFile() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "jstruct", "jstruct.log")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "jstruct.log")
	}

	return filepath.Join(home, ".jstruct", "jstruct.log")
}
