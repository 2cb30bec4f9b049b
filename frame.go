package ggmesh

import (
	"context"
	"errors"
)

// Handler is a scene driven by Run.
//
// Update advances state and Draw renders it; within a frame Update always
// completes before Draw. Either may return ErrQuit to stop the loop cleanly.
type Handler interface {
	Update(h Host) error
	Draw(h Host) error
}

// Run drives handler until ctx is cancelled, handler returns ErrQuit, or
// a frame fails. Cancellation is only observed between frames.
// Errors from Update and Draw are returned unchanged.
func Run(ctx context.Context, h Host, handler Handler) error {
	log := Logger()
	for frame := uint64(0); ; frame++ {
		if ctx.Err() != nil {
			log.Info("ggmesh: run cancelled", "frames", frame)
			return nil
		}
		if err := handler.Update(h); err != nil {
			return quitOrErr(err)
		}
		if err := handler.Draw(h); err != nil {
			return quitOrErr(err)
		}
	}
}

func quitOrErr(err error) error {
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// LimitFrames wraps handler so that Run stops after n drawn frames.
func LimitFrames(handler Handler, n int) Handler {
	return &frameLimit{Handler: handler, left: n}
}

type frameLimit struct {
	Handler
	left int
}

func (l *frameLimit) Update(h Host) error {
	if l.left <= 0 {
		return ErrQuit
	}
	return l.Handler.Update(h)
}

func (l *frameLimit) Draw(h Host) error {
	l.left--
	return l.Handler.Draw(h)
}
