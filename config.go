package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alex-vit/exticons/icon"
	"github.com/rs/zerolog"
)

type config struct {
	Dir        string `json:"dir"`
	Sizes      []int  `json:"sizes"`
	Color      string `json:"color"`
	Background string `json:"background"`
	Renderer   string `json:"renderer"`
	ICO        string `json:"ico"`
	MakeDir    bool   `json:"mkdir"`
}

func applyConfigDefaults(cfg *config) {
	if cfg.Dir == "" {
		cfg.Dir = "public"
	}
	if len(cfg.Sizes) == 0 {
		cfg.Sizes = append([]int(nil), icon.DefaultSizes...)
	}
	if cfg.Color == "" {
		cfg.Color = icon.FormatColor(icon.DefaultFill)
	}
	if cfg.Background == "" {
		cfg.Background = "white"
	}
	if cfg.Renderer == "" {
		cfg.Renderer = "crisp"
	}
}

// loadConfig reads a JSON config file on top of the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (config, error) {
	var cfg config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	applyConfigDefaults(&cfg)
	return cfg, nil
}

// parseSizes parses a comma-separated list such as "16,48,128".
func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", icon.ErrInvalidSize, f)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, errors.New("no sizes given")
	}
	return sizes, nil
}

func (cfg config) generator(logger zerolog.Logger) (*icon.Generator, error) {
	fill, err := icon.ParseColor(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	bg, err := icon.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	r, err := icon.RendererByName(cfg.Renderer)
	if err != nil {
		return nil, err
	}
	return &icon.Generator{
		Dir:        cfg.Dir,
		Sizes:      cfg.Sizes,
		Fill:       fill,
		Background: bg,
		Renderer:   r,
		ICO:        cfg.ICO,
		MakeDir:    cfg.MakeDir,
		Log:        logger,
	}, nil
}
