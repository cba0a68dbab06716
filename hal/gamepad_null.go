package hal

// NullGamepadSlots is the slot count reported by NullGamepads.
const NullGamepadSlots = 4

// NullGamepads is a Gamepads with nothing connected.
type NullGamepads struct{}

func (NullGamepads) Slots() int                            { return NullGamepadSlots }
func (NullGamepads) State(int) (PadState, bool)            { return PadState{}, false }
func (NullGamepads) SetVibration(int, uint16, uint16) bool { return false }
