package keyer

import "github.com/elinall1/MorseCode-LM-working/morse"

// learningState is all the learning mode remembers between steps.
type learningState struct {
	shown     bool
	decodedAt uint32
}

// stepLearning decodes the buffer once the idle gap has elapsed and
// shows the letter on the result row, then blanks the row again after
// the expiry window. Exactly one decode happens per keyed character:
// the decode empties the buffer, so the branch cannot re-fire.
func (c *Controller) stepLearning(now uint32) {
	buf := c.keyer.Buffer()

	if buf.Len() > 0 && now-c.keyer.LastInput() >= LearnGapMS {
		letter := morse.Decode(buf.Take())
		c.disp.SetCursor(0, 1)
		c.disp.Print(padRow(string(letter)))
		c.learning.decodedAt = now
		c.learning.shown = true
		return
	}

	if buf.Len() == 0 && c.learning.shown && now-c.learning.decodedAt >= LearnExpireMS {
		c.disp.SetCursor(0, 1)
		c.disp.Print(blankRow)
		c.learning.shown = false
	}
}
