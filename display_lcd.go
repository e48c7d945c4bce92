//go:build !oled

package main

import (
	"github.com/elinall1/MorseCode-LM-working/config"
	"github.com/elinall1/MorseCode-LM-working/dev"
	"github.com/elinall1/MorseCode-LM-working/keyer"
)

func newDisplay() keyer.TextDisplay {
	lcd := dev.NewCharLCD(config.DisplayBus, config.LCDAddr)
	if err := lcd.Configure(); err != nil {
		println("display: " + err.Error())
	}
	return lcd
}
