package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dotscreen/internal/pace"
)

const (
	DefaultFPS        = 30
	DefaultScheme     = "rainbow"
	DefaultLuminosity = 0.45
)

// Config holds user-tunable rendering settings.
type Config struct {
	FPS        int     `yaml:"fps"`
	Width      int     `yaml:"width"`  // 0 = detect from terminal
	Height     int     `yaml:"height"` // 0 = detect from terminal
	Scheme     string  `yaml:"scheme"`
	Luminosity float64 `yaml:"luminosity"`
	Dither     bool    `yaml:"dither"`
	Inverted   bool    `yaml:"inverted"`
	Colorize   bool    `yaml:"colorize"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:        DefaultFPS,
		Scheme:     DefaultScheme,
		Luminosity: DefaultLuminosity,
		Dither:     true,
		Colorize:   true,
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

// Validate rejects settings the engine cannot clamp away.
func (c *Config) Validate() error {
	if c.FPS < pace.MinFPS || c.FPS > pace.MaxFPS {
		return fmt.Errorf("fps %d outside supported range %d-%d", c.FPS, pace.MinFPS, pace.MaxFPS)
	}
	if c.Luminosity < 0 || c.Luminosity > 1 {
		return fmt.Errorf("luminosity %.2f outside [0,1]", c.Luminosity)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("negative dimensions %dx%d", c.Width, c.Height)
	}
	return nil
}
