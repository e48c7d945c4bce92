package main

import (
	"machine"
	"math/rand"
	"time"

	"github.com/elinall1/MorseCode-LM-working/config"
	"github.com/elinall1/MorseCode-LM-working/dev"
	"github.com/elinall1/MorseCode-LM-working/keyer"
	"github.com/elinall1/MorseCode-LM-working/morse"
)

//go:generate tinygo flash -target=pico

func main() {
	machine.InitADC()

	// Dot/dash boundary from the speed pot; the keyer falls back to
	// its fixed default when the sensor is absent.
	var threshold func() uint32
	pot, err := dev.NewThresholdSensor(config.SpeedPot, dev.MinThresholdMS, dev.MaxThresholdMS)
	if err != nil {
		println("threshold sensor: " + err.Error())
	} else {
		pot.Configure()
		threshold = pot.ReadThreshold
	}

	config.DisplayBus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       config.DisplaySDA,
		SCL:       config.DisplaySCL,
	})
	// the delay is needed for display start from a cold reboot
	time.Sleep(time.Second)
	disp := newDisplay()

	fb := dev.NewFeedback(config.Buzzer, config.Indicator)
	fb.Configure()

	clock := &keyer.Clock{}
	k := keyer.New(clock, keyer.Config{
		Threshold: threshold,
		Feedback: func(s morse.Symbol) {
			d := uint32(keyer.DotPulseMS)
			if s == morse.Dash {
				d = keyer.DashPulseMS
			}
			fb.Pulse(clock.Now(), d)
		},
	})

	key := dev.NewKey(config.Key, true, k.Edge)
	if err := key.Configure(machine.PinInputPullup); err != nil {
		println("key: " + err.Error())
	}

	config.ModeSwitch.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})

	ctrl := keyer.NewController(clock, k, disp,
		func() bool { return config.ModeSwitch.Get() },
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)

	machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: 3000,
	})
	machine.Watchdog.Start()

	// Millisecond heartbeat: advances the clock and keeps the actuator
	// in step with the raw key state every tick.
	go func() {
		tick := time.NewTicker(time.Millisecond)
		for range tick.C {
			clock.Tick()
			fb.Sync(clock.Now(), k.RawPressed())
		}
	}()

	loop := time.NewTicker(time.Millisecond * 5)
	for range loop.C {
		ctrl.Step()
		machine.Watchdog.Update()
	}
}
