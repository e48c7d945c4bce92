package dev

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// Character panel geometry assumed throughout.
const (
	DisplayColumns = 16
	DisplayRows    = 2
)

// CharLCD adapts the HD44780 panel behind an I2C backpack to the text
// sink the mode controller draws on. Writes are fire-and-forget; the
// panel has no error path worth reporting mid-loop.
type CharLCD struct {
	d hd44780i2c.Device
}

func NewCharLCD(bus drivers.I2C, addr uint8) *CharLCD {
	return &CharLCD{d: hd44780i2c.New(bus, addr)}
}

func (l *CharLCD) Configure() error {
	return l.d.Configure(hd44780i2c.Config{
		Width:  DisplayColumns,
		Height: DisplayRows,
	})
}

func (l *CharLCD) SetCursor(col, row uint8) {
	l.d.SetCursor(col, row)
}

func (l *CharLCD) Print(text string) {
	l.d.Print([]byte(text))
}
