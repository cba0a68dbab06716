//go:build cgo

package hal

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	hostGamepadSlots = 4

	// vibrationPulse is how long one SetVibration call drives the motors.
	// Holding a command means reissuing it every frame.
	vibrationPulse = 100 * time.Millisecond
)

type hostGamepads struct {
	slots *slotTable
	ids   []ebiten.GamepadID
	ints  []int
}

func newHostGamepads() *hostGamepads {
	return &hostGamepads{slots: newSlotTable(hostGamepadSlots)}
}

// refresh rebinds slots to the currently connected gamepads. It runs once per
// tick before the app steps.
func (p *hostGamepads) refresh() {
	p.ids = ebiten.AppendGamepadIDs(p.ids[:0])
	p.ints = p.ints[:0]
	for _, id := range p.ids {
		p.ints = append(p.ints, int(id))
	}
	p.slots.sync(p.ints)
}

func (p *hostGamepads) Slots() int { return p.slots.len() }

func (p *hostGamepads) State(slot int) (PadState, bool) {
	raw, ok := p.slots.lookup(slot)
	if !ok {
		return PadState{}, false
	}
	id := ebiten.GamepadID(raw)

	var st PadState
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		// No mapping: report the first two raw axis pairs as sticks.
		n := ebiten.GamepadAxisCount(id)
		axis := func(i int) float64 {
			if i >= n {
				return 0
			}
			return ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(i))
		}
		st.LeftStickX = axisToInt16(axis(0))
		st.LeftStickY = axisToInt16(-axis(1))
		st.RightStickX = axisToInt16(axis(2))
		st.RightStickY = axisToInt16(-axis(3))
		return st, true
	}

	for _, b := range standardButtons {
		if ebiten.IsStandardGamepadButtonPressed(id, b.button) {
			st.Buttons |= b.bit
		}
	}
	st.LeftStickX = axisToInt16(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
	st.LeftStickY = axisToInt16(-ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))
	st.RightStickX = axisToInt16(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal))
	st.RightStickY = axisToInt16(-ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical))
	st.LeftTrigger = triggerToUint8(ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft))
	st.RightTrigger = triggerToUint8(ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight))
	return st, true
}

func (p *hostGamepads) SetVibration(slot int, left, right uint16) bool {
	raw, ok := p.slots.lookup(slot)
	if !ok {
		return false
	}
	ebiten.VibrateGamepad(ebiten.GamepadID(raw), &ebiten.VibrateGamepadOptions{
		Duration:        vibrationPulse,
		StrongMagnitude: motorMagnitude(left),
		WeakMagnitude:   motorMagnitude(right),
	})
	return true
}

var standardButtons = []struct {
	button ebiten.StandardGamepadButton
	bit    uint16
}{
	{ebiten.StandardGamepadButtonLeftTop, PadDPadUp},
	{ebiten.StandardGamepadButtonLeftBottom, PadDPadDown},
	{ebiten.StandardGamepadButtonLeftLeft, PadDPadLeft},
	{ebiten.StandardGamepadButtonLeftRight, PadDPadRight},
	{ebiten.StandardGamepadButtonCenterRight, PadStart},
	{ebiten.StandardGamepadButtonCenterLeft, PadBack},
	{ebiten.StandardGamepadButtonLeftStick, PadLeftThumb},
	{ebiten.StandardGamepadButtonRightStick, PadRightThumb},
	{ebiten.StandardGamepadButtonFrontTopLeft, PadLeftShoulder},
	{ebiten.StandardGamepadButtonFrontTopRight, PadRightShoulder},
	{ebiten.StandardGamepadButtonRightBottom, PadA},
	{ebiten.StandardGamepadButtonRightRight, PadB},
	{ebiten.StandardGamepadButtonRightLeft, PadX},
	{ebiten.StandardGamepadButtonRightTop, PadY},
}
