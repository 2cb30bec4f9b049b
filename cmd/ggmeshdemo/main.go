// Command ggmeshdemo runs the ggmesh reference scenes on the software host.
//
// Frames can be written as PNG files (-out), shown in the terminal (-term),
// or both. Settings come from flags and an optional TOML file (-config).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gogpu/ggmesh"
	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "ggmeshdemo:", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ggmeshdemo:", err)
		os.Exit(2)
	}
	ggmesh.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("ggmeshdemo failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(cfg Config) (*slog.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	var w io.Writer = os.Stderr
	if cfg.Term {
		// The terminal belongs to the presenter.
		w = io.Discard
	}
	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "ggmesh",
		Level:           level,
	})
	return slog.New(handler), nil
}

func run(cfg Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var out presenters
	opts := []ggmesh.SoftwareOption{ggmesh.WithResources(os.DirFS(cfg.Assets))}
	if cfg.Out != "" {
		p, err := newPNGPresenter(cfg.Out, cfg.Frames)
		if err != nil {
			return err
		}
		defer p.Close()
		out = append(out, p)
	}
	if cfg.Term {
		p, err := newTermPresenter(cancel)
		if err != nil {
			return err
		}
		defer p.Close()
		out = append(out, p)
	} else {
		// Offscreen runs advance exactly one tick per frame.
		opts = append(opts, ggmesh.WithClock(simulatedClock(ggmesh.StepDuration(ggmesh.DesiredRate))))
	}
	if len(out) > 0 {
		opts = append(opts, ggmesh.WithPresenter(out))
	}
	host := ggmesh.NewSoftwareHost(cfg.Width, cfg.Height, opts...)

	var handler ggmesh.Handler
	switch cfg.Scene {
	case sceneGenerative:
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		logger.Info("generating scene", "seed", seed, "shapes", cfg.Shapes)
		handler = ggmesh.NewGenerativeScene(cfg.Shapes, rand.New(rand.NewSource(seed)))
	default:
		scene, err := ggmesh.NewShowcaseScene(host, ggmesh.DefaultShowcaseAssets)
		if err != nil {
			return err
		}
		defer scene.Close()
		handler = scene
	}
	if cfg.Frames > 0 {
		handler = ggmesh.LimitFrames(handler, cfg.Frames)
	}

	start := time.Now()
	if err := ggmesh.Run(ctx, host, handler); err != nil {
		return err
	}
	logger.Info("done", "scene", cfg.Scene, "frames", host.Frames(), "elapsed", time.Since(start))
	return nil
}

// simulatedClock returns a clock that advances by step on every reading.
func simulatedClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}
