package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"engine/app"
	"engine/frame"
	"engine/hal"
	"engine/input"
	"engine/loop"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("engine", flag.ContinueOnError)

	var hcfg hal.HeadlessConfig
	var wcfg hal.WindowConfig
	cfg := app.DefaultConfig()
	var (
		confirm    string
		rumble     string
		filter     string
		scale      float64
		strictExit bool
	)
	fs.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	fs.IntVar(&hcfg.Hz, "hz", 60, "Frame rate in headless mode (0 = uncapped).")
	fs.Uint64Var(&hcfg.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	fs.IntVar(&cfg.Loop.Width, "width", cfg.Loop.Width, "Offscreen buffer width.")
	fs.IntVar(&cfg.Loop.Height, "height", cfg.Loop.Height, "Offscreen buffer height.")
	fs.IntVar(&hcfg.Width, "display-width", 1280, "Display width.")
	fs.IntVar(&hcfg.Height, "display-height", 720, "Display height.")
	fs.IntVar(&cfg.Loop.XStep, "xstep", cfg.Loop.XStep, "Horizontal pattern offset per frame.")
	fs.IntVar(&cfg.Loop.YStep, "ystep", cfg.Loop.YStep, "Vertical pattern offset per frame.")
	fs.StringVar(&confirm, "confirm", cfg.Loop.Confirm.String(), "Controller button that triggers vibration.")
	fs.StringVar(&rumble, "rumble", "60000,60000", "Left,right motor speeds while the confirm button is held.")
	fs.StringVar(&filter, "filter", cfg.Loop.Filter.String(), "Stretch filter: nearest or bilinear.")
	fs.BoolVar(&cfg.Loop.Overlay, "overlay", false, "Draw frame and controller info over the pattern.")
	fs.BoolVar(&wcfg.VSync, "vsync", true, "Sync window presentation to the display refresh.")
	fs.Float64Var(&scale, "scale", 1, "Initial window size relative to the display size.")
	fs.BoolVar(&strictExit, "strict-exit", false, "Exit with status 1 when startup fails.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var err error
	if cfg.Loop.Confirm, err = input.ParseButton(confirm); err != nil {
		return usage(err)
	}
	if cfg.Loop.Rumble, err = parseRumble(rumble); err != nil {
		return usage(err)
	}
	if cfg.Loop.Filter, err = frame.ParseFilter(filter); err != nil {
		return usage(err)
	}
	if math.IsNaN(scale) || scale <= 0 {
		return usage(fmt.Errorf("invalid scale %v", scale))
	}
	if !hcfg.Enabled {
		if wcfg.Width, wcfg.Height, err = windowSize(hcfg.Width, hcfg.Height, scale); err != nil {
			return usage(err)
		}
	}

	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, cfg)
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, hcfg)
	} else {
		wcfg.Title = "Engine"
		err = hal.RunWindow(wcfg, newApp)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if strictExit {
			return 1
		}
	}
	return loop.ExitStatus
}

func usage(err error) int {
	fmt.Fprintln(os.Stderr, err)
	return 2
}

// maxWindowSide bounds each scaled window dimension.
const maxWindowSide = 1 << 15

// windowSize scales the display size to the initial window size.
func windowSize(width, height int, scale float64) (int, int, error) {
	w := math.Round(float64(width) * scale)
	h := math.Round(float64(height) * scale)
	if w < 1 || h < 1 || w > maxWindowSide || h > maxWindowSide {
		return 0, 0, fmt.Errorf("invalid window size %vx%v from %dx%d at scale %v", w, h, width, height, scale)
	}
	return int(w), int(h), nil
}

// parseRumble reads "left,right" motor speeds.
func parseRumble(s string) ([2]uint16, error) {
	var out [2]uint16
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return out, fmt.Errorf("invalid rumble %q: want left,right", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 16)
		if err != nil {
			return out, fmt.Errorf("invalid rumble %q: %w", s, err)
		}
		out[i] = uint16(v)
	}
	return out, nil
}
