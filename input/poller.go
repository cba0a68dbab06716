package input

import (
	"errors"
	"fmt"

	"engine/hal"
)

var (
	// ErrDeviceUnavailable classifies an empty slot. Polling never returns it.
	ErrDeviceUnavailable = errors.New("input: device unavailable")

	ErrSlotOutOfRange = errors.New("input: slot out of range")
)

// Poller reads controller slots from a hal.Gamepads provider.
//
// It keeps no state between calls: no debouncing and no edge detection.
type Poller struct {
	pads hal.Gamepads
}

// NewPoller wraps pads. A nil provider behaves as hal.NullGamepads.
func NewPoller(pads hal.Gamepads) *Poller {
	if pads == nil {
		pads = hal.NullGamepads{}
	}
	return &Poller{pads: pads}
}

// Poll reads one slot. An empty slot is a normal result with Connected false.
func (p *Poller) Poll(slot int) (ControllerState, error) {
	if slot < 0 || slot >= MaxSlots {
		return ControllerState{}, fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}
	return p.read(slot), nil
}

// PollAll reads every slot.
func (p *Poller) PollAll() [MaxSlots]ControllerState {
	var out [MaxSlots]ControllerState
	for slot := range out {
		out[slot] = p.read(slot)
	}
	return out
}

func (p *Poller) read(slot int) ControllerState {
	if slot >= p.pads.Slots() {
		return ControllerState{Slot: slot}
	}
	st, ok := p.pads.State(slot)
	if !ok {
		return ControllerState{Slot: slot}
	}
	return stateFromPad(slot, st)
}

// Vibrate forwards cmd to the provider. It does not report whether the device
// accepted it.
func (p *Poller) Vibrate(cmd VibrationCommand) {
	if cmd.Slot < 0 || cmd.Slot >= MaxSlots || cmd.Slot >= p.pads.Slots() {
		return
	}
	_ = p.pads.SetVibration(cmd.Slot, cmd.LeftMotorSpeed, cmd.RightMotorSpeed)
}
