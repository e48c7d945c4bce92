package dev

import (
	"machine"
	"sync/atomic"

	"tinygo.org/x/drivers/buzzer"
)

// Feedback drives the sidetone buzzer and the indicator LED as one
// actuator; they are always switched together.
//
// Two sources are merged: the raw key state gives a continuous tone
// while the key is electrically down, and discrete pulses armed by the
// classifier extend the tone for a fixed span per accepted symbol.
// Pulse runs in interrupt context and only stores a deadline; the
// actual pin switching happens in Sync, once per clock tick.
type Feedback struct {
	bz    buzzer.Device
	bzPin machine.Pin
	led   machine.Pin

	pulseEnd atomic.Uint32
	armed    atomic.Bool

	on bool // Sync-context only
}

func NewFeedback(buzzerPin, ledPin machine.Pin) *Feedback {
	return &Feedback{
		bz:    buzzer.New(buzzerPin),
		bzPin: buzzerPin,
		led:   ledPin,
	}
}

func (f *Feedback) Configure() {
	f.bzPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	f.led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	f.Set(false)
}

// Pulse arms a discrete pulse ending durationMS from now. Safe from
// interrupt context.
func (f *Feedback) Pulse(now, durationMS uint32) {
	f.pulseEnd.Store(now + durationMS)
	f.armed.Store(true)
}

// Sync reconciles the actuator with the merged state. Call once per
// clock tick from the timer context with the instantaneous pressed
// state.
func (f *Feedback) Sync(now uint32, pressed bool) {
	want := pressed
	if f.armed.Load() {
		if int32(f.pulseEnd.Load()-now) > 0 {
			want = true
		} else {
			f.armed.Store(false)
		}
	}
	if want == f.on {
		return
	}
	f.on = want
	f.Set(want)
}

// Set switches tone and indicator unconditionally.
func (f *Feedback) Set(on bool) {
	if on {
		f.bz.On()
		f.led.High()
	} else {
		f.bz.Off()
		f.led.Low()
	}
}
