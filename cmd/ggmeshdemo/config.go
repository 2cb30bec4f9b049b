package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Scene names accepted by -scene.
const (
	sceneShowcase   = "showcase"
	sceneGenerative = "generative"
)

// Config holds the demo settings. Values come from the defaults, then the
// TOML file named by -config, then flags given on the command line.
type Config struct {
	Scene    string `toml:"scene"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Frames   int    `toml:"frames"`
	Out      string `toml:"out"`
	Term     bool   `toml:"term"`
	Seed     uint64 `toml:"seed"`
	Shapes   int    `toml:"shapes"`
	Assets   string `toml:"assets"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Scene:    sceneShowcase,
		Width:    800,
		Height:   600,
		Frames:   120,
		Shapes:   8,
		Assets:   "resources",
		LogLevel: "info",
	}
}

func (c Config) validate() error {
	switch c.Scene {
	case sceneShowcase, sceneGenerative:
	default:
		return fmt.Errorf("unknown scene %q", c.Scene)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", c.Frames)
	}
	if c.Shapes < 0 {
		return fmt.Errorf("invalid shape count %d", c.Shapes)
	}
	if c.Frames == 0 && !c.Term {
		return errors.New("-frames 0 runs forever and needs -term")
	}
	return nil
}

func decodeConfig(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// parseConfig builds the Config for args (without the program name).
func parseConfig(args []string) (Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("ggmeshdemo", flag.ContinueOnError)
	path := fs.String("config", "", "TOML config file")
	scene := fs.String("scene", cfg.Scene, "scene to run: showcase or generative")
	width := fs.Int("width", cfg.Width, "target width")
	height := fs.Int("height", cfg.Height, "target height")
	frames := fs.Int("frames", cfg.Frames, "frames to render (0 = until quit)")
	out := fs.String("out", cfg.Out, "directory for PNG frames")
	term := fs.Bool("term", cfg.Term, "show frames in the terminal")
	seed := fs.Uint64("seed", cfg.Seed, "generator seed (0 = time based)")
	shapes := fs.Int("shapes", cfg.Shapes, "shapes in the generative scene")
	assets := fs.String("assets", cfg.Assets, "resource directory")
	level := fs.String("log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			return Config{}, err
		}
		err = decodeConfig(f, &cfg)
		f.Close()
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", *path, err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *scene
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "frames":
			cfg.Frames = *frames
		case "out":
			cfg.Out = *out
		case "term":
			cfg.Term = *term
		case "seed":
			cfg.Seed = *seed
		case "shapes":
			cfg.Shapes = *shapes
		case "assets":
			cfg.Assets = *assets
		case "log-level":
			cfg.LogLevel = *level
		}
	})
	return cfg, cfg.validate()
}
