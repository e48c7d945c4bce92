package dev

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// OLEDText renders the same 16x2 character grid on a 128x64 SSD1306,
// for boards wired with the OLED module instead of the character LCD.
// A shadow cell grid keeps cursor addressing identical to the LCD; the
// whole frame is redrawn on every Print.
type OLEDText struct {
	d     ssd1306.Device
	addr  uint16
	cells [DisplayRows][DisplayColumns]byte
	col   uint8
	row   uint8
}

var oledWhite = color.RGBA{255, 255, 255, 255}

func NewOLEDText(bus drivers.I2C, addr uint16) *OLEDText {
	return &OLEDText{
		d:    ssd1306.NewI2C(bus),
		addr: addr,
	}
}

func (o *OLEDText) Configure() {
	o.d.Configure(ssd1306.Config{
		Width:    128,
		Height:   64,
		Address:  o.addr,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	o.d.ClearDisplay()
	for r := range o.cells {
		for c := range o.cells[r] {
			o.cells[r][c] = ' '
		}
	}
}

func (o *OLEDText) SetCursor(col, row uint8) {
	if col >= DisplayColumns {
		col = DisplayColumns - 1
	}
	if row >= DisplayRows {
		row = DisplayRows - 1
	}
	o.col, o.row = col, row
}

func (o *OLEDText) Print(text string) {
	for i := 0; i < len(text) && o.col < DisplayColumns; i++ {
		o.cells[o.row][o.col] = text[i]
		o.col++
	}
	o.flush()
}

func (o *OLEDText) flush() {
	o.d.ClearBuffer()
	for r := range o.cells {
		line := string(o.cells[r][:])
		tinyfont.WriteLine(&o.d, &proggy.TinySZ8pt7b, 0, int16(20+r*28), line, oledWhite)
	}
	o.d.Display()
}
