// Package config loads and validates the launchday configuration file.
// A malformed target date is a startup error, never a runtime condition:
// everything is validated here, before any countdown tick fires.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/spencerwgreene/launchday/internal/validate"
)

// DefaultPath is where the config file is looked up when --config is not
// given.
const DefaultPath = "launchday.yaml"

// Config is the root configuration document.
type Config struct {
	// Title names the event, shown above the countdown.
	Title string `yaml:"title" validate:"required"`
	// Target is the fixed instant counted down to, RFC 3339.
	Target string `yaml:"target" validate:"required"`
	// Message replaces the countdown display once Target passes.
	Message string `yaml:"message" validate:"required"`
	// Announced optionally marks the start of the countdown window; when
	// set, the TUI shows how much of the window has elapsed.
	Announced string `yaml:"announced,omitempty" validate:"omitempty"`

	Particles ParticlesConfig `yaml:"particles"`
	Audio     AudioConfig     `yaml:"audio"`
	Theme     ThemeConfig     `yaml:"theme"`

	// parsed forms, populated by Validate.
	targetTime    time.Time
	announcedTime time.Time
}

// ParticlesConfig tunes the background particle field.
type ParticlesConfig struct {
	Count    int     `yaml:"count" validate:"min=0,max=512"`
	Speed    float64 `yaml:"speed" validate:"gt=0"`
	Glyphs   string  `yaml:"glyphs,omitempty"`
	LinkDist float64 `yaml:"link_dist" validate:"min=0"`
	Seed     int64   `yaml:"seed,omitempty"`
}

// AudioConfig wires the optional background track.
type AudioConfig struct {
	File   string  `yaml:"file,omitempty"`
	Volume float64 `yaml:"volume" validate:"min=0,max=1"`
	Loop   bool    `yaml:"loop"`
}

// ThemeConfig holds display colors as hex strings.
type ThemeConfig struct {
	Digit  string `yaml:"digit" validate:"hexcolor"`
	Label  string `yaml:"label" validate:"hexcolor"`
	Accent string `yaml:"accent" validate:"hexcolor"`
}

// DefaultConfig returns the configuration used when a field (or the whole
// file) is absent.
func DefaultConfig() Config {
	return Config{
		Title:   "Launch Day",
		Message: "WE ARE LIVE!",
		Particles: ParticlesConfig{
			Count:    80,
			Speed:    6,
			Glyphs:   "·•∘",
			LinkDist: 0,
		},
		Audio: AudioConfig{
			Volume: 0.8,
			Loop:   true,
		},
		Theme: ThemeConfig{
			Digit:  "#f5c518",
			Label:  "#8a8a8a",
			Accent: "#5fafff",
		},
	}
}

// Load reads, parses, and validates the config file at path. The path may
// start with a tilde.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	expanded, err := expandTilde(path)
	if err != nil {
		return cfg, err
	}

	logrus.Debug("Loading config file from: ", expanded)
	data, err := os.ReadFile(expanded)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", expanded, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", expanded, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", expanded, err)
	}
	return cfg, nil
}

// Validate checks field constraints and parses the date fields. Fails fast
// on a malformed target so the countdown never runs against garbage.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	target, err := time.Parse(time.RFC3339, c.Target)
	if err != nil {
		return fmt.Errorf("target date %q is not RFC 3339: %w", c.Target, err)
	}
	c.targetTime = target

	if c.Announced != "" {
		announced, err := time.Parse(time.RFC3339, c.Announced)
		if err != nil {
			return fmt.Errorf("announced date %q is not RFC 3339: %w", c.Announced, err)
		}
		if !announced.Before(target) {
			return fmt.Errorf("announced date %s is not before target %s", c.Announced, c.Target)
		}
		c.announcedTime = announced
	}

	if c.Audio.File != "" {
		ext := strings.ToLower(filepath.Ext(c.Audio.File))
		switch ext {
		case ".mp3", ".wav", ".flac":
		default:
			return fmt.Errorf("unsupported audio file type %q (want .mp3, .wav, or .flac)", ext)
		}
	}
	return nil
}

// TargetTime returns the parsed target instant. Only meaningful after a
// successful Validate.
func (c *Config) TargetTime() time.Time { return c.targetTime }

// AnnouncedTime returns the parsed announce instant, zero when unset.
func (c *Config) AnnouncedTime() time.Time { return c.announcedTime }

// expandTilde resolves a leading ~ against the user's home directory.
func expandTilde(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
