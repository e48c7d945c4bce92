package keyer

import "math/rand"

// Timing policy for the two modes, in clock milliseconds.
const (
	// LearnGapMS of inactivity ends the character in learning mode.
	LearnGapMS = 2000
	// LearnExpireMS after a decode, an untouched result row is blanked.
	LearnExpireMS = 1000
	// PracticeGapMS of inactivity ends the answer in practice mode.
	PracticeGapMS = 4000
	// VerdictHoldMS is how long a practice verdict stays on screen
	// before the session moves on. The hold is a cooldown deadline
	// checked by Step, not a busy wait; input keeps being acquired
	// while it runs.
	VerdictHoldMS = 2000
)

// Columns of the character panel; rows are cleared by printing a full
// blank line.
const Columns = 16

const blankRow = "                "

// Mode selects which state machine consumes decoded letters.
type Mode uint8

const (
	Learning Mode = iota
	Practice
)

func (m Mode) String() string {
	if m == Practice {
		return "practice"
	}
	return "learning"
}

// TextDisplay is the character sink the controller draws to: a fixed
// two-row panel addressed by column and row. Writes are
// fire-and-forget.
type TextDisplay interface {
	SetCursor(col, row uint8)
	Print(text string)
}

// Controller runs the active mode once per loop iteration. The mode
// selector is sampled, not edge-triggered; a change takes effect on
// the next Step.
type Controller struct {
	clock    *Clock
	keyer    *Keyer
	disp     TextDisplay
	selector func() bool // true selects Practice
	rng      *rand.Rand

	mode    Mode
	started bool

	learning learningState
	practice practiceState
}

// NewController wires the mode state machines to their collaborators.
func NewController(clock *Clock, k *Keyer, disp TextDisplay, selector func() bool, rng *rand.Rand) *Controller {
	return &Controller{
		clock:    clock,
		keyer:    k,
		disp:     disp,
		selector: selector,
		rng:      rng,
	}
}

// Mode returns the mode the controller last ran.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Step samples the mode selector and advances the active state
// machine. Called from the cooperative loop only.
func (c *Controller) Step() {
	now := c.clock.Now()

	mode := Learning
	if c.selector() {
		mode = Practice
	}
	if !c.started || mode != c.mode {
		c.enter(mode)
	}

	switch c.mode {
	case Learning:
		c.stepLearning(now)
	case Practice:
		c.stepPractice(now)
	}
}

// enter applies the reset-on-switch policy: changing mode abandons any
// half-keyed character instead of carrying it into the new mode, and
// tears down the practice session.
func (c *Controller) enter(mode Mode) {
	c.mode = mode
	c.started = true
	c.keyer.ResetInput()
	c.learning = learningState{}
	c.practice = practiceState{}

	c.disp.SetCursor(0, 0)
	c.disp.Print(blankRow)
	c.disp.SetCursor(0, 1)
	c.disp.Print(blankRow)
	if mode == Learning {
		c.disp.SetCursor(0, 0)
		c.disp.Print("Morse trainer")
	}
	println("mode: " + mode.String())
}

// padRow right-pads text to a full row so stale characters are
// overwritten.
func padRow(text string) string {
	if len(text) >= Columns {
		return text[:Columns]
	}
	return text + blankRow[:Columns-len(text)]
}
