package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phanxgames/nova"
	"gopkg.in/yaml.v3"
)

// Config holds the editor settings read from YAML.
type Config struct {
	Window struct {
		Title  string `yaml:"title"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
	} `yaml:"window"`
	Camera struct {
		ZoomStep     float64 `yaml:"zoom_step"`
		AnimSeconds  float64 `yaml:"anim_seconds"`
		InitialScale float64 `yaml:"initial_scale"`
	} `yaml:"camera"`
	Shapes struct {
		Width          float64 `yaml:"width"`
		Height         float64 `yaml:"height"`
		CircleSegments int     `yaml:"circle_segments"`
	} `yaml:"shapes"`
	LogLevel string `yaml:"log_level"`
}

var errInvalidConfig = errors.New("invalid config")

// defaultConfig returns the settings used when no file is given.
func defaultConfig() Config {
	var c Config
	c.Window.Title = "Nova Editor"
	c.Window.Width = 1280
	c.Window.Height = 720
	c.Camera.ZoomStep = 1.1
	c.Camera.AnimSeconds = 0.25
	c.Camera.InitialScale = 1
	c.Shapes.Width = 80
	c.Shapes.Height = 80
	c.Shapes.CircleSegments = 32
	c.LogLevel = "INFO"
	return c
}

// loadConfig reads a YAML file over the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (Config, error) {
	c := defaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", errInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Camera.ZoomStep <= 1:
		return fmt.Errorf("%w: camera.zoom_step must be > 1, got %v", errInvalidConfig, c.Camera.ZoomStep)
	case c.Camera.AnimSeconds < 0:
		return fmt.Errorf("%w: camera.anim_seconds must be >= 0, got %v", errInvalidConfig, c.Camera.AnimSeconds)
	case c.Camera.InitialScale <= 0:
		return fmt.Errorf("%w: camera.initial_scale must be > 0, got %v", errInvalidConfig, c.Camera.InitialScale)
	case c.Shapes.CircleSegments < 3 || c.Shapes.CircleSegments > nova.MaxCircleSegments:
		return fmt.Errorf("%w: shapes.circle_segments must be in [3, %d], got %d",
			errInvalidConfig, nova.MaxCircleSegments, c.Shapes.CircleSegments)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	return nil
}

// slogLevel returns the configured level. Validate has already checked it.
func (c Config) slogLevel() slog.Level {
	l, _ := parseLogLevel(c.LogLevel)
	return l
}

func parseLogLevel(s string) (slog.Level, error) {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(s)]
	if !ok {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return v, nil
}
