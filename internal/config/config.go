// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all contactbook configuration.
type Config struct {
	Display Display `yaml:"display"`
	Roster  Roster  `yaml:"roster"`
}

// Display holds console output settings.
type Display struct {
	Delimiter string `yaml:"delimiter"` // Column separator for the contact table
	Color     string `yaml:"color"`     // "auto" | "always" | "never"
}

// Roster holds roster lookup settings.
type Roster struct {
	Dir     string `yaml:"dir"`     // Local directory checked before the embedded rosters
	Default string `yaml:"default"` // Roster used when --roster is not given
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Display: Display{
			Delimiter: "\t",
			Color:     "auto",
		},
		Roster: Roster{
			Dir:     "rosters",
			Default: "sample.yaml",
		},
	}
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing, empty, and comment-only files
// are skipped. Invalid YAML or unknown fields return an error.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Display.Delimiter == "" {
		return errors.New("config: display.delimiter cannot be empty")
	}
	switch c.Display.Color {
	case "", "auto", "always", "never":
		// valid
	default:
		return fmt.Errorf("config: display.color must be \"auto\", \"always\" or \"never\", got %q", c.Display.Color)
	}
	if c.Roster.Default == "" {
		return errors.New("config: roster.default cannot be empty")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTBOOK_DELIMITER, CONTACTBOOK_COLOR, CONTACTBOOK_ROSTER_DIR.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("CONTACTBOOK_DELIMITER"); v != "" {
		// Accepts Go escapes such as \t.
		d, err := strconv.Unquote(`"` + v + `"`)
		if err != nil {
			return fmt.Errorf("config: invalid CONTACTBOOK_DELIMITER %q: %w", v, err)
		}
		c.Display.Delimiter = d
	}
	if v := os.Getenv("CONTACTBOOK_COLOR"); v != "" {
		c.Display.Color = v
	}
	if v := os.Getenv("CONTACTBOOK_ROSTER_DIR"); v != "" {
		c.Roster.Dir = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Display *rawDisplay `yaml:"display"`
	Roster  *rawRoster  `yaml:"roster"`
}

type rawDisplay struct {
	Delimiter *string `yaml:"delimiter"`
	Color     *string `yaml:"color"`
}

type rawRoster struct {
	Dir     *string `yaml:"dir"`
	Default *string `yaml:"default"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Display != nil {
		if layer.Display.Delimiter != nil {
			c.Display.Delimiter = *layer.Display.Delimiter
		}
		if layer.Display.Color != nil {
			c.Display.Color = *layer.Display.Color
		}
	}
	if layer.Roster != nil {
		if layer.Roster.Dir != nil {
			c.Roster.Dir = *layer.Roster.Dir
		}
		if layer.Roster.Default != nil {
			c.Roster.Default = *layer.Roster.Default
		}
	}
}
