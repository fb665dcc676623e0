package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eriklarko/boolean-algebra/src/truthtable"
)

// DefaultPath is where the configuration is looked for when no path is given.
const DefaultPath = ".boolalg.yaml"

type Config struct {
	// MaxVariables caps the number of variables an expression may have
	// before tables and comparisons refuse to enumerate it.
	MaxVariables int `yaml:"max-variables"`
	// Workers is the number of goroutines enumerating bindings, 0 meaning
	// one per CPU.
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log-level"`

	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		MaxVariables: truthtable.DefaultMaxVariables,
		Workers:      0,
		LogLevel:     "warn",
		Path:         DefaultPath,
	}
}

// LoadConfig reads the configuration at path. Keys missing from the file keep
// their default values. The error wraps os.ErrNotExist when there is no such
// file.
func LoadConfig(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// this isn't an error enough to stop execution, it only makes
		// messages easier to follow. Best effort.
		absPath = path
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", absPath, err)
	}

	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", absPath, err)
	}
	config.Path = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", absPath, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.MaxVariables < 1 || c.MaxVariables > truthtable.AlphabetSize {
		return fmt.Errorf("max-variables must be between 1 and %d, got %d", truthtable.AlphabetSize, c.MaxVariables)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns LogLevel as a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log-level '%s': %w", c.LogLevel, err)
	}
	return level, nil
}

// Write persists the configuration to its Path.
func (c *Config) Write() error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	// WriteFile leaves the mode of an existing file alone
	if err := os.Chmod(c.Path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions of %s: %w", c.Path, err)
	}
	return nil
}

// Enumerator creates the enumerator the configuration describes.
func (c *Config) Enumerator() *truthtable.Enumerator {
	return truthtable.NewEnumerator(c.Workers, c.MaxVariables)
}
