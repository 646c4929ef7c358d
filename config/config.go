// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads the glarea application settings from TOML.
//
// A minimal file:
//
//	host = "glfw"
//	log_level = "debug"
//
//	[window]
//	title = "checkerboard"
//	width = 640
//	height = 480
//
// Missing keys keep the values of Default. Unknown keys are an error.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/glarea"
)

// Hosts.
const (
	HostGTK      = "gtk"
	HostGLFW     = "glfw"
	HostHeadless = "headless"
)

// Backends.
const (
	BackendGL     = "gl"
	BackendWebGPU = "webgpu"
)

// maxDimension bounds window and snapshot sizes.
const maxDimension = 8192

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("config: invalid")

// Window describes the drawing area.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Shaders names files that replace the built-in shader stages. Relative
// paths are resolved against the directory of the loaded file.
type Shaders struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

// Config is the application configuration.
type Config struct {
	Window  Window  `toml:"window"`
	Host    string  `toml:"host"`
	Backend string  `toml:"backend"`
	Shaders Shaders `toml:"shaders"`

	// DrawCount is the vertex count of each draw; 0 keeps the surface
	// default.
	DrawCount int    `toml:"draw_count"`
	LogLevel  string `toml:"log_level"`

	// Snapshot is the output file of the headless host. The extension
	// selects the encoding: .png, .bmp or .tiff.
	Snapshot string `toml:"snapshot"`

	// dir is the directory of the loaded file.
	dir string
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "glarea",
			Width:  640,
			Height: 480,
		},
		Host:     HostGTK,
		Backend:  BackendGL,
		LogLevel: "info",
		Snapshot: "glarea.png",
	}
}

// Load reads the TOML file at path over Default and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	c := Default()
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("config: %s: %s", path, strict.String())
		}
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	c.dir = filepath.Dir(path)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks value ranges and the host/backend pairing. The GTK and
// GLFW hosts draw with GL; the headless host draws with WebGPU.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 ||
		c.Window.Width > maxDimension || c.Window.Height > maxDimension {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	switch c.Host {
	case HostGTK, HostGLFW:
		if c.Backend != BackendGL {
			return fmt.Errorf("%w: host %q requires backend %q, got %q", ErrInvalid, c.Host, BackendGL, c.Backend)
		}
	case HostHeadless:
		if c.Backend != BackendWebGPU {
			return fmt.Errorf("%w: host %q requires backend %q, got %q", ErrInvalid, c.Host, BackendWebGPU, c.Backend)
		}
		if _, err := c.SnapshotFormat(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown host %q", ErrInvalid, c.Host)
	}
	if c.DrawCount < 0 {
		return fmt.Errorf("%w: negative draw_count %d", ErrInvalid, c.DrawCount)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel as a slog level name such as "debug" or "warn+2".
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return l, nil
}

// SnapshotFormat returns the encoding named by the Snapshot extension:
// "png", "bmp" or "tiff".
func (c *Config) SnapshotFormat() (string, error) {
	switch ext := strings.ToLower(filepath.Ext(c.Snapshot)); ext {
	case ".png":
		return "png", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: snapshot %q: unsupported extension %q", ErrInvalid, c.Snapshot, ext)
	}
}

// ShaderSources returns base with the stages named in Shaders replaced by
// the contents of their files.
func (c *Config) ShaderSources(base glarea.ShaderSources) (glarea.ShaderSources, error) {
	src := base
	if c.Shaders.Vertex != "" {
		b, err := os.ReadFile(c.resolve(c.Shaders.Vertex))
		if err != nil {
			return src, fmt.Errorf("config: vertex shader: %w", err)
		}
		src.Vertex = string(b)
	}
	if c.Shaders.Fragment != "" {
		b, err := os.ReadFile(c.resolve(c.Shaders.Fragment))
		if err != nil {
			return src, fmt.Errorf("config: fragment shader: %w", err)
		}
		src.Fragment = string(b)
	}
	return src, nil
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

// Encode writes c as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
