// Package config loads the gridkit TOML settings with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridkit/audio"
	"github.com/lixenwraith/gridkit/host"
)

const configFile = "config.toml"

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// Grid sets the demo table dimensions and starting line sizes.
// Sizes may be below controller.MinLineSize; the first resize of such a line
// commits at least the minimum.
type Grid struct {
	Columns     int `toml:"columns"`
	Rows        int `toml:"rows"`
	ColumnWidth int `toml:"column_width"`
	RowHeight   int `toml:"row_height"`
}

// Theme holds tcell color names, empty keeps the built-in color
type Theme struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Header     string `toml:"header"`
	Separator  string `toml:"separator"`
	Badge      string `toml:"badge"`
	Band       string `toml:"band"`
}

// Audio mirrors audio.Config with the volume in percent
type Audio struct {
	Enabled    bool `toml:"enabled"`
	Volume     int  `toml:"volume"` // percent
	SampleRate int  `toml:"sample_rate"`
}

// Config is the whole config file
type Config struct {
	Grid   Grid   `toml:"grid"`
	Theme  Theme  `toml:"theme"`
	Audio  Audio  `toml:"audio"`
	Debug  bool   `toml:"debug"`
	LogDir string `toml:"log_dir"`
}

// Default returns the settings used when no file exists
func Default() Config {
	return Config{
		Grid: Grid{
			Columns:     8,
			Rows:        40,
			ColumnWidth: 14,
			RowHeight:   2,
		},
		Audio: Audio{
			Enabled:    true,
			Volume:     50,
			SampleRate: 44100,
		},
		LogDir: "logs",
	}
}

// Load reads path over the defaults, a missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		ok, err := exists(path)
		if err != nil {
			return cfg, fmt.Errorf("checking config file: %w", err)
		}
		if ok {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("reading config file %s: %w", path, err)
			}
			log.Printf("config: loaded %s", path)
		} else {
			log.Printf("config: %s not found, using defaults", path)
		}
	}
	cfg = applyEnv(cfg)
	return cfg, cfg.Validate()
}

// Write stores cfg at path, creating the directory
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// DefaultPath returns config.toml under $XDG_CONFIG_HOME/gridkit or ~/.config/gridkit
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "gridkit", configFile)
}

func applyEnv(cfg Config) Config {
	if debug := os.Getenv("GRIDKIT_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = val
		}
	}

	// Audio variables share their parsing with the audio package
	a := audio.ApplyEnv(cfg.AudioConfig())
	cfg.Audio.Enabled = a.Enabled
	cfg.Audio.Volume = int(a.MasterVolume*100 + 0.5)
	cfg.Audio.SampleRate = a.SampleRate
	return cfg
}

// Validate reports the first setting Grid cannot work with
func (c Config) Validate() error {
	switch {
	case c.Grid.Columns <= 0:
		return fmt.Errorf("%w: grid.columns must be positive, got %d", ErrInvalid, c.Grid.Columns)
	case c.Grid.Rows <= 0:
		return fmt.Errorf("%w: grid.rows must be positive, got %d", ErrInvalid, c.Grid.Rows)
	case c.Grid.ColumnWidth <= 0:
		return fmt.Errorf("%w: grid.column_width must be positive, got %d", ErrInvalid, c.Grid.ColumnWidth)
	case c.Grid.RowHeight <= 0:
		return fmt.Errorf("%w: grid.row_height must be positive, got %d", ErrInvalid, c.Grid.RowHeight)
	case c.Audio.Volume < 0 || c.Audio.Volume > 100:
		return fmt.Errorf("%w: audio.volume must be 0-100, got %d", ErrInvalid, c.Audio.Volume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	}
	if _, err := c.Theme.Apply(host.DefaultTheme()); err != nil {
		return err
	}
	return nil
}

// AudioConfig converts the audio section for the audio package
func (c Config) AudioConfig() audio.Config {
	return audio.Config{
		Enabled:      c.Audio.Enabled,
		MasterVolume: float64(c.Audio.Volume) / 100.0,
		SampleRate:   c.Audio.SampleRate,
	}
}

// Apply overrides the colors of base with the named ones
func (t Theme) Apply(base host.Theme) (host.Theme, error) {
	colors := []struct {
		key  string
		name string
		set  func(c tcell.Color)
	}{
		{"foreground", t.Foreground, func(c tcell.Color) { base.Cell = base.Cell.Foreground(c) }},
		{"background", t.Background, func(c tcell.Color) {
			base.Cell = base.Cell.Background(c)
			base.Header = base.Header.Background(c)
			base.Separator = base.Separator.Background(c)
			base.Badge = base.Badge.Background(c)
			base.Band = base.Band.Background(c)
		}},
		{"header", t.Header, func(c tcell.Color) { base.Header = base.Header.Foreground(c) }},
		{"separator", t.Separator, func(c tcell.Color) { base.Separator = base.Separator.Foreground(c) }},
		{"badge", t.Badge, func(c tcell.Color) { base.Badge = base.Badge.Foreground(c) }},
		{"band", t.Band, func(c tcell.Color) { base.Band = base.Band.Foreground(c) }},
	}
	for _, entry := range colors {
		if entry.name == "" {
			continue
		}
		c := tcell.GetColor(entry.name)
		if c == tcell.ColorDefault && entry.name != "default" {
			return base, fmt.Errorf("%w: theme.%s: unknown color %q", ErrInvalid, entry.key, entry.name)
		}
		entry.set(c)
	}
	return base, nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
