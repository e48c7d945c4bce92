package keyer

import (
	"sync/atomic"

	"github.com/elinall1/MorseCode-LM-working/morse"
)

// Cap is the longest symbol sequence one character may hold. Appends
// past it are dropped; the operator recovers by pausing for the idle
// gap.
const Cap = 9

const (
	lenShift = 12
	symMask  = 1<<Cap - 1
)

// Buffer is the in-progress character, shared between the button
// interrupt (appender) and the control loop (taker). The symbol bits
// and the length are packed into a single atomic word, so neither side
// can ever see a half-written sequence: Append is a compare-and-swap
// loop, Take is one swap. The zero value is an empty buffer.
type Buffer struct {
	state atomic.Uint32
}

// Append adds one symbol. It reports false, leaving the contents
// untouched, when the buffer is already full. Safe from interrupt
// context.
func (b *Buffer) Append(s morse.Symbol) bool {
	for {
		old := b.state.Load()
		n := old >> lenShift
		if n >= Cap {
			return false
		}
		next := old
		if s == morse.Dash {
			next |= 1 << n
		}
		next = next&symMask | (n+1)<<lenShift
		if b.state.CompareAndSwap(old, next) {
			return true
		}
	}
}

// Len returns the number of buffered symbols.
func (b *Buffer) Len() int {
	return int(b.state.Load() >> lenShift)
}

// Take atomically empties the buffer and returns what it held.
func (b *Buffer) Take() []morse.Symbol {
	return unpack(b.state.Swap(0))
}

// Snapshot returns the current contents without clearing them.
func (b *Buffer) Snapshot() []morse.Symbol {
	return unpack(b.state.Load())
}

// Reset discards any buffered symbols.
func (b *Buffer) Reset() {
	b.state.Store(0)
}

func unpack(w uint32) []morse.Symbol {
	n := w >> lenShift
	if n > Cap {
		n = Cap
	}
	syms := make([]morse.Symbol, n)
	for i := range syms {
		if w&(1<<i) != 0 {
			syms[i] = morse.Dash
		}
	}
	return syms
}
