package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/deckforge/deckconv/render"
)

// Config is the optional CLI configuration file.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
}

// RenderConfig overrides the renderer defaults.
type RenderConfig struct {
	Font        string  `yaml:"font"`
	TextColor   string  `yaml:"text_color"`
	ChevronHead float64 `yaml:"chevron_head"`
}

// OutputConfig controls analysis output.
type OutputConfig struct {
	Pretty bool `yaml:"pretty"`
}

// LoadConfig reads a YAML config file. A missing path returns the zero
// config without error; a present but unreadable file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// RenderOptions folds the config file and environment overrides into
// renderer options. Environment wins over file.
func (c *Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	if c.Render.Font != "" {
		opts.FontName = c.Render.Font
	}
	if c.Render.TextColor != "" {
		opts.TextColor = c.Render.TextColor
	}
	if c.Render.ChevronHead > 0 {
		opts.ChevronHead = c.Render.ChevronHead
	}
	if v := os.Getenv("DECKCONV_FONT"); v != "" {
		opts.FontName = v
	}
	if v := os.Getenv("DECKCONV_TEXT_COLOR"); v != "" {
		opts.TextColor = v
	}
	return opts
}
