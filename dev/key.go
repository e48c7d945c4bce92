package dev

import "machine"

// Key wires the physical morse key to an edge consumer. Both edges are
// reported; the debounce decision belongs to the consumer, which also
// needs the rejected edges to keep its raw-state view current.
type Key struct {
	pin       machine.Pin
	activeLow bool
	handler   func(pressed bool)
}

// NewKey creates a key on the given pin. handler runs in pin interrupt
// context and must stay O(1) and non-blocking.
func NewKey(pin machine.Pin, activeLow bool, handler func(pressed bool)) *Key {
	return &Key{
		pin:       pin,
		activeLow: activeLow,
		handler:   handler,
	}
}

// Configure sets up the pin and attaches the toggle interrupt.
func (k *Key) Configure(mode machine.PinMode) error {
	if mode != machine.PinInput && mode != machine.PinInputPulldown && mode != machine.PinInputPullup {
		return ErrInvalidPinMode
	}
	k.pin.Configure(machine.PinConfig{Mode: mode})
	return k.pin.SetInterrupt(machine.PinToggle, k.handleEdge)
}

//go:noinline
func (k *Key) handleEdge(pin machine.Pin) {
	k.handler(pin.Get() != k.activeLow)
}

// Pressed reads the instantaneous electrical state directly from the
// pin.
func (k *Key) Pressed() bool {
	return k.pin.Get() != k.activeLow
}
