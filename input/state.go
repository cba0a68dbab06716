// Package input polls controller slots once per frame.
package input

import (
	"fmt"
	"strings"

	"engine/hal"
)

// MaxSlots is the number of controller slots polled every frame.
const MaxSlots = 4

// Button is one digital controller button.
type Button uint16

const (
	ButtonDPadUp        = Button(hal.PadDPadUp)
	ButtonDPadDown      = Button(hal.PadDPadDown)
	ButtonDPadLeft      = Button(hal.PadDPadLeft)
	ButtonDPadRight     = Button(hal.PadDPadRight)
	ButtonStart         = Button(hal.PadStart)
	ButtonBack          = Button(hal.PadBack)
	ButtonLeftThumb     = Button(hal.PadLeftThumb)
	ButtonRightThumb    = Button(hal.PadRightThumb)
	ButtonLeftShoulder  = Button(hal.PadLeftShoulder)
	ButtonRightShoulder = Button(hal.PadRightShoulder)
	ButtonA             = Button(hal.PadA)
	ButtonB             = Button(hal.PadB)
	ButtonX             = Button(hal.PadX)
	ButtonY             = Button(hal.PadY)
)

var buttonNames = []struct {
	b    Button
	name string
}{
	{ButtonDPadUp, "up"},
	{ButtonDPadDown, "down"},
	{ButtonDPadLeft, "left"},
	{ButtonDPadRight, "right"},
	{ButtonStart, "start"},
	{ButtonBack, "back"},
	{ButtonLeftThumb, "lthumb"},
	{ButtonRightThumb, "rthumb"},
	{ButtonLeftShoulder, "lb"},
	{ButtonRightShoulder, "rb"},
	{ButtonA, "a"},
	{ButtonB, "b"},
	{ButtonX, "x"},
	{ButtonY, "y"},
}

func (b Button) String() string {
	for _, n := range buttonNames {
		if n.b == b {
			return n.name
		}
	}
	return fmt.Sprintf("button(%#04x)", uint16(b))
}

// ParseButton maps a button name such as "a" or "start" to its Button.
func ParseButton(name string) (Button, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range buttonNames {
		if n.name == name {
			return n.b, nil
		}
	}
	return 0, fmt.Errorf("input: unknown button %q", name)
}

// Buttons is the set of buttons held in one reading.
type Buttons uint16

func (s Buttons) Has(b Button) bool { return uint16(s)&uint16(b) != 0 }

// String lists held buttons separated by spaces, or "-" when none are held.
func (s Buttons) String() string {
	if s == 0 {
		return "-"
	}
	var names []string
	for _, n := range buttonNames {
		if s.Has(n.b) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, " ")
}

// ControllerState is one slot's reading for the current frame.
type ControllerState struct {
	Slot      int
	Connected bool
	Buttons   Buttons

	LeftStickX  int16
	LeftStickY  int16
	RightStickX int16
	RightStickY int16

	LeftTrigger  uint8
	RightTrigger uint8
}

// Err reports ErrDeviceUnavailable for a disconnected slot.
func (s ControllerState) Err() error {
	if !s.Connected {
		return fmt.Errorf("slot %d: %w", s.Slot, ErrDeviceUnavailable)
	}
	return nil
}

func stateFromPad(slot int, p hal.PadState) ControllerState {
	return ControllerState{
		Slot:         slot,
		Connected:    true,
		Buttons:      Buttons(p.Buttons),
		LeftStickX:   p.LeftStickX,
		LeftStickY:   p.LeftStickY,
		RightStickX:  p.RightStickX,
		RightStickY:  p.RightStickY,
		LeftTrigger:  p.LeftTrigger,
		RightTrigger: p.RightTrigger,
	}
}

// VibrationCommand sets both motor speeds of one slot.
type VibrationCommand struct {
	Slot            int
	LeftMotorSpeed  uint16
	RightMotorSpeed uint16
}
