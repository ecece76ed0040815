package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alex-vit/exticons/icon"
	"github.com/rs/zerolog"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	want := config{
		Dir:        "public",
		Sizes:      []int{16, 48, 128},
		Color:      "#4285f4",
		Background: "white",
		Renderer:   "crisp",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("loadConfig(\"\") = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.json")
	os.WriteFile(path, []byte(`{"dir": "out", "sizes": [32], "renderer": "smooth", "mkdir": true}`), 0o644)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dir != "out" || !reflect.DeepEqual(cfg.Sizes, []int{32}) || cfg.Renderer != "smooth" || !cfg.MakeDir {
		t.Errorf("loadConfig = %+v", cfg)
	}
	if cfg.Color != "#4285f4" || cfg.Background != "white" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`{"sizes": "16"}`), 0o644)
	if _, err := loadConfig(bad); err == nil {
		t.Error("bad JSON accepted")
	}
}

func TestParseSizes(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"16,48,128", []int{16, 48, 128}, false},
		{" 16 , 32 ,", []int{16, 32}, false},
		{"0", []int{0}, false},
		{"16,x", nil, true},
		{"", nil, true},
		{",,", nil, true},
	}

	for _, tt := range tests {
		got, err := parseSizes(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSizes(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseSizes(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConfigGenerator(t *testing.T) {
	cfg, _ := loadConfig("")
	g, err := cfg.generator(zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if g.Fill != icon.DefaultFill || g.Background != icon.DefaultBackground {
		t.Errorf("colors = %v on %v", g.Fill, g.Background)
	}
	if _, ok := g.Renderer.(icon.Crisp); !ok {
		t.Errorf("renderer = %T, want icon.Crisp", g.Renderer)
	}

	tests := []struct {
		name string
		edit func(*config)
		want error
	}{
		{"bad color", func(c *config) { c.Color = "#12" }, icon.ErrBadColor},
		{"bad background", func(c *config) { c.Background = "nope" }, icon.ErrBadColor},
		{"bad renderer", func(c *config) { c.Renderer = "gpu" }, icon.ErrUnknownRenderer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := loadConfig("")
			tt.edit(&c)
			if _, err := c.generator(zerolog.Nop()); !errors.Is(err, tt.want) {
				t.Errorf("generator err = %v, want %v", err, tt.want)
			}
		})
	}
}
