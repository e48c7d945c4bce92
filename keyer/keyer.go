// Package keyer implements the timing core of the morse trainer: the
// millisecond clock, the debounced press classifier, the shared symbol
// buffer and the two operating modes that consume it.
package keyer

import (
	"sync/atomic"

	"github.com/elinall1/MorseCode-LM-working/morse"
)

const (
	// DefaultDebounceMS is the minimum spacing between accepted key
	// edges. Edges inside the window are ignored outright.
	DefaultDebounceMS = 50

	// DefaultThresholdMS is the dot/dash boundary used when no speed
	// sensor is wired.
	DefaultThresholdMS = 200

	// Discrete feedback pulse lengths per classified symbol.
	DotPulseMS  = 100
	DashPulseMS = 300
)

// Config carries the acquisition policy.
type Config struct {
	// DebounceMS overrides the accepted-edge spacing; 0 selects
	// DefaultDebounceMS.
	DebounceMS uint32

	// Threshold returns the dot/dash boundary in milliseconds. It is
	// consulted fresh on every classification, never cached, so a
	// sensor-backed boundary tracks the knob. Nil selects a fixed
	// DefaultThresholdMS.
	Threshold func() uint32

	// Feedback, when set, is invoked from interrupt context with each
	// accepted symbol. It must be O(1) and non-blocking.
	Feedback func(morse.Symbol)
}

// Keyer converts raw key transitions into classified symbols.
//
// Edge is the only interrupt-context entry point. Fields it owns
// exclusively (debounce bookkeeping, the logical pressed state) are
// plain; everything the control loop reads is published atomically.
// The raw electrical state and the logical debounced state are kept
// deliberately separate: continuous feedback follows the former, the
// classifier the latter.
type Keyer struct {
	clock     *Clock
	buf       Buffer
	threshold func() uint32
	feedback  func(morse.Symbol)
	debounce  uint32

	// Interrupt-context only.
	lastEdge  uint32
	pressed   bool
	pressedAt uint32

	raw       atomic.Bool   // instantaneous electrical state, pre-debounce
	lastInput atomic.Uint32 // clock value of the latest accepted symbol
	dropped   atomic.Uint32 // symbols lost to a full buffer
}

// New returns a keyer bound to the given clock.
func New(clock *Clock, cfg Config) *Keyer {
	k := &Keyer{
		clock:     clock,
		threshold: cfg.Threshold,
		feedback:  cfg.Feedback,
		debounce:  cfg.DebounceMS,
	}
	if k.debounce == 0 {
		k.debounce = DefaultDebounceMS
	}
	if k.threshold == nil {
		k.threshold = func() uint32 { return DefaultThresholdMS }
	}
	return k
}

// Edge handles one key transition from pin interrupt context. raw is
// the electrical pressed state at the instant of the interrupt; it is
// recorded before the debounce decision so tactile feedback tracks the
// true key state even for edges the classifier rejects.
//
// Either accepted edge toggles the logical state: an accepted edge
// while idle starts a press, the next one ends it. The closing edge
// measures the duration and classifies it against the threshold,
// closed on the dash side.
func (k *Keyer) Edge(raw bool) {
	k.raw.Store(raw)

	now := k.clock.Now()
	if now-k.lastEdge < k.debounce {
		return
	}
	k.lastEdge = now

	if !k.pressed {
		k.pressed = true
		k.pressedAt = now
		return
	}
	k.pressed = false

	sym := morse.Dot
	if now-k.pressedAt >= k.threshold() {
		sym = morse.Dash
	}
	if !k.buf.Append(sym) {
		k.dropped.Add(1)
		return
	}
	k.lastInput.Store(now)
	if k.feedback != nil {
		k.feedback(sym)
	}
}

// RawPressed reports the instantaneous electrical key state as of the
// latest interrupt, independent of debounce.
func (k *Keyer) RawPressed() bool {
	return k.raw.Load()
}

// Buffer exposes the shared symbol buffer.
func (k *Keyer) Buffer() *Buffer {
	return &k.buf
}

// LastInput returns the clock value of the most recent accepted
// symbol. Meaningful only while the buffer is non-empty.
func (k *Keyer) LastInput() uint32 {
	return k.lastInput.Load()
}

// Dropped returns how many symbols were discarded against a full
// buffer.
func (k *Keyer) Dropped() uint32 {
	return k.dropped.Load()
}

// ResetInput discards any buffered symbols and restarts the idle-gap
// measurement from the current instant. Called by the mode controller
// on decode, mode switch and challenge refresh.
func (k *Keyer) ResetInput() {
	k.buf.Reset()
	k.lastInput.Store(k.clock.Now())
}
