// Package loop drives one frame at a time: drain window events, poll
// controllers, render into the offscreen buffer and present it.
package loop

import (
	"context"
	"errors"
	"fmt"

	"engine/frame"
	"engine/hal"
	"engine/input"
)

// ExitStatus is the process status after the loop ends. Clean shutdown and
// startup failure are not distinguished.
const ExitStatus = 0

var (
	ErrStopped    = fmt.Errorf("loop: stopped: %w", hal.ErrTerminated)
	ErrNotStarted = errors.New("loop: not started")
	ErrNotIdle    = errors.New("loop: already started")
)

// State is the loop lifecycle stage.
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Config controls buffer size, animation and controller feedback.
type Config struct {
	Width  int
	Height int

	// XStep and YStep are added to the pattern offsets every frame.
	XStep int
	YStep int

	// Confirm triggers Rumble on the slot that holds it.
	Confirm input.Button
	Rumble  [2]uint16

	Filter  frame.Filter
	Overlay bool

	// Alloc backs the offscreen buffer; nil uses frame.DefaultAllocator.
	Alloc frame.Allocator
}

func DefaultConfig() Config {
	return Config{
		Width:   1280,
		Height:  720,
		XStep:   1,
		YStep:   2,
		Confirm: input.ButtonA,
		Rumble:  [2]uint16{60000, 60000},
		Filter:  frame.FilterNearest,
	}
}

// Loop owns the offscreen buffer and the running flag.
type Loop struct {
	cfg Config

	log       hal.Logger
	events    hal.EventSource
	display   hal.Display
	poller    *input.Poller
	buf       *frame.Buffer
	renderer  frame.Renderer
	presenter *frame.Presenter
	overlay   *frame.Overlay

	state   State
	running bool
	xOffset int
	yOffset int
	frames  uint64

	connected [input.MaxSlots]bool
	lines     []string
}

func New(h hal.HAL, cfg Config) *Loop {
	l := &Loop{
		cfg:       cfg,
		log:       h.Logger(),
		events:    h.Events(),
		display:   h.Display(),
		poller:    input.NewPoller(h.Gamepads()),
		buf:       frame.NewBuffer(cfg.Alloc),
		presenter: frame.NewPresenter(h.Display(), cfg.Filter),
	}
	if cfg.Overlay {
		l.overlay = frame.NewOverlay()
	}
	return l
}

func (l *Loop) State() State          { return l.state }
func (l *Loop) Frames() uint64        { return l.frames }
func (l *Loop) Offsets() (x, y int)   { return l.xOffset, l.yOffset }
func (l *Loop) Buffer() *frame.Buffer { return l.buf }
func (l *Loop) Running() bool         { return l.running }

// Start allocates the offscreen buffer and enters StateRunning. A failure
// leaves the loop stopped; it is not retried.
func (l *Loop) Start() error {
	if l.state != StateIdle {
		return ErrNotIdle
	}
	if err := l.buf.Resize(l.cfg.Width, l.cfg.Height); err != nil {
		l.state = StateStopped
		l.logf("loop: startup aborted: %v", err)
		return err
	}
	l.state = StateRunning
	l.running = true
	l.logf("loop: buffer %dx%d stride %d, filter %s", l.buf.Width(), l.buf.Height(), l.buf.StrideBytes(), l.presenter.Filter())
	return nil
}

// RequestStop clears the running flag. The next Step shuts the loop down.
func (l *Loop) RequestStop() {
	l.running = false
}

// Step runs one iteration. It returns ErrStopped once the loop has shut down,
// including from the Step that observed the close.
func (l *Loop) Step() error {
	switch l.state {
	case StateIdle:
		return ErrNotStarted
	case StateStopped:
		return ErrStopped
	}

	l.drainEvents()
	if !l.running {
		l.shutdown()
		return ErrStopped
	}

	pads := l.poller.PollAll()
	l.handlePads(&pads)

	l.xOffset += l.cfg.XStep
	l.yOffset += l.cfg.YStep

	l.renderer.Render(l.buf, l.xOffset, l.yOffset)
	if l.overlay != nil {
		l.overlay.Draw(l.buf, l.overlayLines(&pads))
	}

	w, h := l.display.Size()
	if err := l.presenter.Present(l.buf, w, h); err != nil {
		l.shutdown()
		return fmt.Errorf("loop: present: %w", err)
	}
	l.frames++
	return nil
}

// Run starts the loop and steps it until it stops. Cancelling ctx requests a
// stop; the loop still drains pending events and releases the buffer.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Start(); err != nil {
		return err
	}
	for {
		if ctx.Err() != nil {
			l.RequestStop()
		}
		if err := l.Step(); err != nil {
			if errors.Is(err, ErrStopped) {
				return nil
			}
			return err
		}
	}
}

// drainEvents consumes every queued event. A close does not cut the drain
// short.
func (l *Loop) drainEvents() {
	for {
		ev, ok := l.events.PollEvent()
		if !ok {
			return
		}
		if ev.Kind == hal.EventClose {
			l.running = false
		}
	}
}

func (l *Loop) handlePads(pads *[input.MaxSlots]input.ControllerState) {
	for slot := range pads {
		st := &pads[slot]
		if st.Connected != l.connected[slot] {
			l.connected[slot] = st.Connected
			if st.Connected {
				l.logf("loop: controller %d connected", slot)
			} else {
				l.logf("loop: controller %d disconnected", slot)
			}
		}
		if st.Connected && st.Buttons.Has(l.cfg.Confirm) {
			l.poller.Vibrate(input.VibrationCommand{
				Slot:            slot,
				LeftMotorSpeed:  l.cfg.Rumble[0],
				RightMotorSpeed: l.cfg.Rumble[1],
			})
		}
	}
}

func (l *Loop) overlayLines(pads *[input.MaxSlots]input.ControllerState) []string {
	l.lines = l.lines[:0]
	l.lines = append(l.lines,
		fmt.Sprintf("frame %d", l.frames),
		fmt.Sprintf("offset %d,%d", l.xOffset, l.yOffset),
	)
	for _, st := range pads {
		if !st.Connected {
			continue
		}
		l.lines = append(l.lines, fmt.Sprintf("pad%d %s L%d,%d R%d,%d T%d,%d",
			st.Slot, st.Buttons,
			st.LeftStickX, st.LeftStickY, st.RightStickX, st.RightStickY,
			st.LeftTrigger, st.RightTrigger))
	}
	return l.lines
}

// Abort stops the loop without draining events and releases its buffer. It
// does nothing once the loop has stopped.
func (l *Loop) Abort() {
	if l.state == StateStopped {
		return
	}
	l.shutdown()
}

func (l *Loop) shutdown() {
	l.running = false
	l.buf.Release()
	l.state = StateStopped
	l.logf("loop: stopped after %d frames", l.frames)
}

func (l *Loop) logf(format string, args ...any) {
	if l.log == nil {
		return
	}
	l.log.WriteLineString(fmt.Sprintf(format, args...))
}
