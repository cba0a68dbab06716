package hal

import (
	"errors"
	"image"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrPlatformSetup reports that the window or its backend could not be created.
	ErrPlatformSetup = errors.New("platform setup failed")
)

// Display is the presentation target.
//
// Size is queried every frame; the surface may change size between frames.
type Display interface {
	Size() (width, height int)
	Show(img *image.RGBA) error
}

// EventKind tags an Event.
type EventKind uint8

const (
	EventOther EventKind = iota
	EventClose
	EventKey
)

func (k EventKind) String() string {
	switch k {
	case EventClose:
		return "close"
	case EventKey:
		return "key"
	default:
		return "other"
	}
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeySpace
)

// Event is a window-system event.
type Event struct {
	Kind EventKind
	Key  KeyCode
	Down bool

	// Detail names the platform event behind an EventOther.
	Detail string
}

// EventSource is drained by polling until it reports no more events.
type EventSource interface {
	PollEvent() (Event, bool)
}

// Gamepad button bits.
const (
	PadDPadUp        uint16 = 0x0001
	PadDPadDown      uint16 = 0x0002
	PadDPadLeft      uint16 = 0x0004
	PadDPadRight     uint16 = 0x0008
	PadStart         uint16 = 0x0010
	PadBack          uint16 = 0x0020
	PadLeftThumb     uint16 = 0x0040
	PadRightThumb    uint16 = 0x0080
	PadLeftShoulder  uint16 = 0x0100
	PadRightShoulder uint16 = 0x0200
	PadA             uint16 = 0x1000
	PadB             uint16 = 0x2000
	PadX             uint16 = 0x4000
	PadY             uint16 = 0x8000
)

// PadState is one raw controller reading.
type PadState struct {
	Buttons uint16

	LeftStickX  int16
	LeftStickY  int16
	RightStickX int16
	RightStickY int16

	LeftTrigger  uint8
	RightTrigger uint8
}

// Gamepads provides controller state by slot index.
//
// State reports false for an empty slot. SetVibration reports false when the
// device is unavailable.
type Gamepads interface {
	Slots() int
	State(slot int) (PadState, bool)
	SetVibration(slot int, left, right uint16) bool
}

// HAL provides the only contact point between the loop and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Events() EventSource
	Gamepads() Gamepads
}
