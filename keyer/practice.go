package keyer

import (
	"fmt"

	"github.com/elinall1/MorseCode-LM-working/morse"
)

// practiceState lives for one practice session: created on mode entry,
// refreshed per challenge, torn down on mode exit.
type practiceState struct {
	initialized   bool
	challenge     byte
	awaitingSince uint32

	// Verdict cooldown. While holding, the verdict stays on screen and
	// no input is consumed; interrupts keep running underneath.
	holding     bool
	holdStarted uint32
	lastCorrect bool
}

func (c *Controller) stepPractice(now uint32) {
	p := &c.practice

	if p.holding {
		if now-p.holdStarted < VerdictHoldMS {
			return
		}
		p.holding = false
		if p.lastCorrect {
			p.initialized = false
		} else {
			// Same challenge again; anything keyed during the hold is
			// discarded with the input reset.
			c.showChallenge(now)
			return
		}
	}

	if !p.initialized {
		p.challenge = byte('A' + c.rng.Intn(26))
		p.initialized = true
		c.disp.SetCursor(0, 0)
		c.disp.Print(padRow("Key this letter:"))
		c.showChallenge(now)
		return
	}

	buf := c.keyer.Buffer()
	if buf.Len() == 0 || now-c.keyer.LastInput() < PracticeGapMS {
		return
	}

	answer := morse.Decode(buf.Take())
	p.lastCorrect = answer == p.challenge
	p.holding = true
	p.holdStarted = now

	c.disp.SetCursor(0, 1)
	if p.lastCorrect {
		c.disp.Print(padRow("Correct!"))
	} else {
		c.disp.Print(padRow("Wrong, try again"))
	}
	println(fmt.Sprintf("practice: %c answered %c in %d ms", p.challenge, answer, now-p.awaitingSince))
}

// showChallenge draws the current challenge letter and restarts the
// answer measurement.
func (c *Controller) showChallenge(now uint32) {
	c.disp.SetCursor(0, 1)
	c.disp.Print(padRow(string(c.practice.challenge)))
	c.practice.awaitingSince = now
	c.keyer.ResetInput()
}
