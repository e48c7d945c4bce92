//go:build rp2040

package config

import "machine"

var (
	// Morse key, wired to ground; the input uses the internal pullup.
	Key = machine.GP16

	// Mode selector switch: high selects practice, low learning.
	ModeSwitch = machine.GP17

	// Feedback actuator, buzzer and indicator LED driven together.
	Buzzer    = machine.GP14
	Indicator = machine.GP15

	// Speed potentiometer setting the dot/dash threshold.
	SpeedPot = machine.ADC{Pin: machine.ADC0}

	// Display bus.
	DisplayBus = machine.I2C0
	DisplaySDA = machine.GP4
	DisplaySCL = machine.GP5
)

const (
	// 7-bit I2C addresses of the two supported display modules.
	LCDAddr  uint8  = 0x27
	OLEDAddr uint16 = 0x3C
)
