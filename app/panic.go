package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"engine/hal"
	"engine/loop"
)

// ErrPanic reports a step that panicked. The loop is stopped and its buffer
// released.
var ErrPanic = errors.New("app: step panicked")

func guardStep(log hal.Logger, lp *loop.Loop) func() error {
	return func() (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			logPanic(log, r, debug.Stack())
			lp.Abort()
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}()
		return lp.Step()
	}
}

func logPanic(log hal.Logger, value any, stack []byte) {
	if log == nil {
		return
	}
	log.WriteLineString(fmt.Sprintf("app: panic: %v", value))
	if len(stack) == 0 {
		log.WriteLineString("stack: unavailable")
		return
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		log.WriteLineString(line)
	}
}
