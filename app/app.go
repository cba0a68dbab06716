// Package app wires a HAL to the frame loop.
package app

import (
	"fmt"

	"engine/hal"
	"engine/internal/buildinfo"
	"engine/loop"
)

type Config struct {
	Loop loop.Config
}

func DefaultConfig() Config {
	return Config{Loop: loop.DefaultConfig()}
}

// New starts a loop on h and returns its per-frame step. A startup failure is
// returned before any frame runs.
func New(h hal.HAL, cfg Config) (func() error, error) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("app: engine %s", buildinfo.Short()))
	}
	lp := loop.New(h, cfg.Loop)
	if err := lp.Start(); err != nil {
		return nil, err
	}
	return guardStep(h.Logger(), lp), nil
}
