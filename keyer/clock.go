package keyer

import "sync/atomic"

// Clock is the millisecond heartbeat every timing decision is measured
// against. Tick is called from the periodic timer context, Now from
// anywhere; the counter is a single atomic word so a reader can never
// observe a torn value. The zero value is ready to use.
//
// The counter wraps after ~49 days. All comparisons against it use
// unsigned subtraction, which stays correct across the wrap.
type Clock struct {
	ms atomic.Uint32
}

// Tick advances the clock by one millisecond.
func (c *Clock) Tick() {
	c.ms.Add(1)
}

// Now returns the current millisecond count.
func (c *Clock) Now() uint32 {
	return c.ms.Load()
}
