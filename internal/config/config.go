package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultCount     = 16
	DefaultTheme     = "classic"
	DefaultWidth     = 600.0
	DefaultHeight    = 200.0
	MaxCount         = 512
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Algorithm string `yaml:"algorithm"`
	Count     int    `yaml:"count"`
	Seed      int64  `yaml:"seed"`
	// Delay of zero means the algorithm's own pacing.
	Delay    time.Duration `yaml:"delay"`
	Theme    string        `yaml:"theme"`
	LogLevel string        `yaml:"log_level"`
	Frame    FrameConfig   `yaml:"frame"`
}

// FrameConfig sizes the SVG export.
type FrameConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Count:     DefaultCount,
		Theme:     DefaultTheme,
		LogLevel:  "info",
		Frame: FrameConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := sorting.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Count <= 0 || c.Count > MaxCount {
		return fmt.Errorf("%w: count must be in 1..%d, got %d", ErrInvalid, MaxCount, c.Count)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative, got %s", ErrInvalid, c.Delay)
	}
	if c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		return fmt.Errorf("%w: frame size must be positive, got %gx%g", ErrInvalid, c.Frame.Width, c.Frame.Height)
	}
	return nil
}

// StepDelay resolves the pacing for the configured algorithm.
func (c *Config) StepDelay() time.Duration {
	if c.Delay > 0 {
		return c.Delay
	}
	alg, err := sorting.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return sorting.DefaultDelay(sorting.Bubble)
	}
	return sorting.DefaultDelay(alg)
}
