package hal

import (
	"fmt"
	"io"
	"sync"
)

type hostHAL struct {
	logger  *hostLogger
	display *hostDisplay
	events  *eventQueue
	pads    Gamepads
}

func newHostHAL(w io.Writer, displayWidth, displayHeight int, pads Gamepads) *hostHAL {
	if pads == nil {
		pads = NullGamepads{}
	}
	return &hostHAL{
		logger:  &hostLogger{w: w},
		display: newHostDisplay(displayWidth, displayHeight),
		events:  newEventQueue(),
		pads:    pads,
	}
}

func (h *hostHAL) Logger() Logger      { return h.logger }
func (h *hostHAL) Display() Display    { return h.display }
func (h *hostHAL) Events() EventSource { return h.events }
func (h *hostHAL) Gamepads() Gamepads  { return h.pads }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
