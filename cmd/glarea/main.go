// Command glarea opens a window showing the glarea checkerboard quad, or
// renders one frame headlessly and writes it to an image file.
//
// Usage:
//
//	glarea [-config file.toml] [-host gtk|glfw|headless] [-width N] [-height N]
//	       [-draw-count N] [-log-level LEVEL] [-output frame.png]
//
// Flags override values from the config file. The headless host renders
// with WebGPU; the window hosts render with OpenGL.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/glarea"
	"github.com/gogpu/glarea/config"
	"github.com/gogpu/glarea/host/glfwhost"
	"github.com/gogpu/glarea/host/gtkhost"
	"github.com/gogpu/glarea/webgpu"
)

func init() {
	// GTK and GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		hostName   = flag.String("host", "", "host: gtk, glfw or headless")
		width      = flag.Int("width", 0, "window width")
		height     = flag.Int("height", 0, "window height")
		drawCount  = flag.Int("draw-count", 0, "vertices per draw (default 6)")
		logLevel   = flag.String("log-level", "", "log level: debug, info, warn, error")
		output     = flag.String("output", "", "snapshot file for the headless host")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Host = *hostName
			cfg.Backend = config.BackendGL
			if cfg.Host == config.HostHeadless {
				cfg.Backend = config.BackendWebGPU
			}
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "draw-count":
			cfg.DrawCount = *drawCount
		case "log-level":
			cfg.LogLevel = *logLevel
		case "output":
			cfg.Snapshot = *output
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	level, _ := cfg.Level()
	glarea.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func run(cfg *config.Config) error {
	switch cfg.Host {
	case config.HostHeadless:
		return runHeadless(cfg)
	case config.HostGLFW:
		opts, err := surfaceOptions(cfg)
		if err != nil {
			return err
		}
		h, err := glfwhost.New(glfwhost.Config{
			Title:  cfg.Window.Title,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
		}, opts...)
		if err != nil {
			return err
		}
		h.Run()
		return nil
	case config.HostGTK:
		opts, err := surfaceOptions(cfg)
		if err != nil {
			return err
		}
		h, err := gtkhost.New(gtkhost.Config{
			Title:  cfg.Window.Title,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
		}, opts...)
		if err != nil {
			return err
		}
		h.Run()
		return nil
	default:
		return fmt.Errorf("unknown host %q", cfg.Host)
	}
}

// surfaceOptions maps the config onto options for a GL surface.
func surfaceOptions(cfg *config.Config) ([]glarea.SurfaceOption, error) {
	src, err := cfg.ShaderSources(glarea.DefaultShaderSources())
	if err != nil {
		return nil, err
	}
	opts := []glarea.SurfaceOption{glarea.WithShaderSources(src)}
	if cfg.DrawCount > 0 {
		opts = append(opts, glarea.WithDrawCount(cfg.DrawCount))
	}
	return opts, nil
}

func runHeadless(cfg *config.Config) error {
	src, err := cfg.ShaderSources(webgpu.DefaultShaderSources())
	if err != nil {
		return err
	}
	off, err := webgpu.NewOffscreenDevice(cfg.Window.Width, cfg.Window.Height,
		webgpu.WithShaderSources(src))
	if err != nil {
		return err
	}
	defer off.Close()

	img, err := off.Snapshot()
	if err != nil {
		return err
	}
	format, err := cfg.SnapshotFormat()
	if err != nil {
		return err
	}
	if err := writeSnapshot(cfg.Snapshot, format, img); err != nil {
		return err
	}
	log.Printf("Snapshot saved to %s (%dx%d)\n", cfg.Snapshot, cfg.Window.Width, cfg.Window.Height)
	return nil
}
