package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ErrTerminated is returned by an app step once the app has shut down.
var ErrTerminated = errors.New("terminated")

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool

	// Hz paces steps; zero or less runs as fast as possible.
	Hz int

	// Frames requests a close after that many steps (0 = run until cancelled).
	Frames uint64

	Width  int
	Height int

	// Output receives log lines; nil means stdout.
	Output io.Writer
}

// RunHeadless runs the app against an in-memory display without opening a
// window. Cancelling ctx or reaching cfg.Frames delivers a close event, so the
// app still shuts down through its own event handling.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: invalid headless display %dx%d", ErrPlatformSetup, cfg.Width, cfg.Height)
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	h := newHostHAL(out, cfg.Width, cfg.Height, NullGamepads{})
	step, err := newApp(h)
	if err != nil {
		return err
	}
	return runHeadless(ctx, h, step, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, step func() error, cfg HeadlessConfig) error {
	var tick <-chan time.Time
	if cfg.Hz > 0 {
		d := time.Second / time.Duration(cfg.Hz)
		if d <= 0 {
			return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
		}
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	var frames uint64
	closing := false
	for {
		if !closing {
			if ctx.Err() != nil || (cfg.Frames > 0 && frames >= cfg.Frames) {
				h.events.pushClose()
				closing = true
			}
		}

		if err := step(); err != nil {
			if errors.Is(err, ErrTerminated) {
				return nil
			}
			return err
		}
		frames++

		if tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
	}
}
