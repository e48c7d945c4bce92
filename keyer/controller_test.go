package keyer

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/elinall1/MorseCode-LM-working/morse"
)

// fakeDisplay records writes into a 16x2 cell grid plus a print log.
type fakeDisplay struct {
	rows   [2][Columns]byte
	col    int
	row    int
	prints []string
}

func newFakeDisplay() *fakeDisplay {
	d := &fakeDisplay{}
	for r := range d.rows {
		for c := range d.rows[r] {
			d.rows[r][c] = ' '
		}
	}
	return d
}

func (d *fakeDisplay) SetCursor(col, row uint8) {
	d.col, d.row = int(col), int(row)
}

func (d *fakeDisplay) Print(text string) {
	d.prints = append(d.prints, text)
	for i := 0; i < len(text); i++ {
		if d.col >= Columns {
			break
		}
		d.rows[d.row][d.col] = text[i]
		d.col++
	}
}

// Row returns a row's text with the clear padding trimmed.
func (d *fakeDisplay) Row(r int) string {
	return strings.TrimRight(string(d.rows[r][:]), " ")
}

func (d *fakeDisplay) countPrints(text string) int {
	n := 0
	for _, p := range d.prints {
		if p == text {
			n++
		}
	}
	return n
}

// rig drives a controller against a fake clock, display and selector.
type rig struct {
	clock    *Clock
	keyer    *Keyer
	disp     *fakeDisplay
	ctrl     *Controller
	practice bool
}

func newRig() *rig {
	r := &rig{
		clock: &Clock{},
		disp:  newFakeDisplay(),
	}
	r.keyer = New(r.clock, Config{Threshold: func() uint32 { return 200 }})
	r.ctrl = NewController(r.clock, r.keyer, r.disp,
		func() bool { return r.practice },
		rand.New(rand.NewSource(42)))
	advance(r.clock, 100) // past the boot debounce window
	return r
}

// run advances the clock tick by tick, stepping the controller at the
// loop cadence.
func (r *rig) run(ms int) {
	for i := 1; i <= ms; i++ {
		r.clock.Tick()
		if i%5 == 0 {
			r.ctrl.Step()
		}
	}
}

func (r *rig) press(ms int) {
	r.keyer.Edge(true)
	r.run(ms)
	r.keyer.Edge(false)
}

// symbolsFor inverts the code table by enumeration.
func symbolsFor(t *testing.T, letter byte) []morse.Symbol {
	t.Helper()
	for n := 1; n <= 4; n++ {
		for bits := 0; bits < 1<<n; bits++ {
			syms := make([]morse.Symbol, n)
			for i := range syms {
				if bits&(1<<i) != 0 {
					syms[i] = morse.Dash
				}
			}
			if morse.Decode(syms) == letter {
				return syms
			}
		}
	}
	t.Fatalf("no pattern for %c", letter)
	return nil
}

func (r *rig) key(t *testing.T, letter byte) {
	t.Helper()
	for i, s := range symbolsFor(t, letter) {
		if i > 0 {
			r.run(150)
		}
		if s == morse.Dash {
			r.press(300)
		} else {
			r.press(80)
		}
	}
}

func TestLearningDecodesDashAsT(t *testing.T) {
	r := newRig()
	r.run(10)
	if got := r.disp.Row(0); got != "Morse trainer" {
		t.Fatalf("header = %q", got)
	}

	r.press(300)
	r.run(2100)

	if got := r.disp.Row(1); got != "T" {
		t.Fatalf("result row = %q, want T", got)
	}
	if r.keyer.Buffer().Len() != 0 {
		t.Fatalf("buffer not cleared after decode")
	}
	if n := r.disp.countPrints(padRow("T")); n != 1 {
		t.Fatalf("result printed %d times, want exactly once", n)
	}
}

func TestLearningDecodesTwoDotsAsI(t *testing.T) {
	r := newRig()
	r.run(10)

	r.press(80)
	r.run(200)
	r.press(90)
	r.run(2100)

	if got := r.disp.Row(1); got != "I" {
		t.Fatalf("result row = %q, want I", got)
	}
}

func TestLearningResultExpires(t *testing.T) {
	r := newRig()
	r.run(10)
	r.press(300)
	r.run(2100)
	if r.disp.Row(1) != "T" {
		t.Fatalf("expected decode before expiry")
	}

	r.run(1100)
	if got := r.disp.Row(1); got != "" {
		t.Fatalf("result row = %q after expiry, want blank", got)
	}
}

func TestLearningUnknownSequenceShowsSentinel(t *testing.T) {
	r := newRig()
	r.run(10)
	for i := 0; i < 5; i++ {
		r.press(80)
		r.run(100)
	}
	r.run(2100)
	if got := r.disp.Row(1); got != "?" {
		t.Fatalf("result row = %q, want ?", got)
	}
}

func TestLearningDecodesFirstNineOfRapidBurst(t *testing.T) {
	r := newRig()
	r.run(10)
	for i := 0; i < 10; i++ {
		r.press(60)
		r.run(60)
	}
	if got := r.keyer.Dropped(); got != 1 {
		t.Fatalf("Dropped = %d, want 1", got)
	}
	r.run(2100)
	// Nine dots decode to the sentinel, and the buffer still empties.
	if got := r.disp.Row(1); got != "?" {
		t.Fatalf("result row = %q, want ?", got)
	}
	if r.keyer.Buffer().Len() != 0 {
		t.Fatalf("buffer not cleared after overflow decode")
	}
}

func TestPracticeCorrectAnswer(t *testing.T) {
	r := newRig()
	r.practice = true
	r.run(10)

	if got := r.disp.Row(0); got != "Key this letter:" {
		t.Fatalf("header = %q", got)
	}
	challenge := r.disp.rows[1][0]
	if challenge < 'A' || challenge > 'Z' {
		t.Fatalf("challenge = %q", challenge)
	}

	r.key(t, challenge)
	r.run(4100)
	if got := r.disp.Row(1); got != "Correct!" {
		t.Fatalf("verdict row = %q", got)
	}

	// Verdict holds for its full window.
	r.run(1000)
	if got := r.disp.Row(1); got != "Correct!" {
		t.Fatalf("verdict dropped early: %q", got)
	}

	// Hold expiry draws a fresh challenge.
	r.run(1100)
	next := r.disp.rows[1][0]
	if next < 'A' || next > 'Z' {
		t.Fatalf("no new challenge after success, row = %q", r.disp.Row(1))
	}
	if r.keyer.Buffer().Len() != 0 {
		t.Fatalf("buffer not reset for the new challenge")
	}
}

func TestPracticeWrongAnswerKeepsChallenge(t *testing.T) {
	r := newRig()
	r.practice = true
	r.run(10)
	challenge := r.disp.rows[1][0]

	wrong := byte('E')
	if challenge == 'E' {
		wrong = 'T'
	}
	r.key(t, wrong)
	r.run(4100)
	if got := r.disp.Row(1); got != "Wrong, try again" {
		t.Fatalf("verdict row = %q", got)
	}

	r.run(2200)
	if got := r.disp.rows[1][0]; got != challenge {
		t.Fatalf("challenge changed after wrong answer: %q -> %q", challenge, got)
	}
}

func TestPracticeAcquiresDuringVerdictHold(t *testing.T) {
	r := newRig()
	r.practice = true
	r.run(10)
	challenge := r.disp.rows[1][0]

	r.key(t, challenge)
	r.run(4100)
	if r.disp.Row(1) != "Correct!" {
		t.Fatalf("expected verdict, row = %q", r.disp.Row(1))
	}

	// The hold is a cooldown, not a busy wait: edges keep landing.
	r.press(80)
	if r.keyer.Buffer().Len() != 1 {
		t.Fatalf("symbol lost during verdict hold")
	}
}

func TestModeSwitchResetsBuffer(t *testing.T) {
	r := newRig()
	r.run(10)
	r.press(80)
	if r.keyer.Buffer().Len() != 1 {
		t.Fatalf("setup: no buffered symbol")
	}

	r.practice = true
	r.run(5)
	if r.keyer.Buffer().Len() != 0 {
		t.Fatalf("mode switch carried a stale symbol over")
	}
	if r.ctrl.Mode() != Practice {
		t.Fatalf("mode = %v, want practice", r.ctrl.Mode())
	}
}

func TestPadRow(t *testing.T) {
	if got := padRow("T"); got != "T               " {
		t.Fatalf("padRow = %q", got)
	}
	if got := len(padRow("Key this letter:")); got != Columns {
		t.Fatalf("padded header length = %d", got)
	}
	if got := padRow("0123456789abcdefXYZ"); got != "0123456789abcdef" {
		t.Fatalf("padRow overflow = %q", got)
	}
}
