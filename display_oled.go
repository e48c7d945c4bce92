//go:build oled

package main

import (
	"github.com/elinall1/MorseCode-LM-working/config"
	"github.com/elinall1/MorseCode-LM-working/dev"
	"github.com/elinall1/MorseCode-LM-working/keyer"
)

func newDisplay() keyer.TextDisplay {
	oled := dev.NewOLEDText(config.DisplayBus, config.OLEDAddr)
	oled.Configure()
	return oled
}
