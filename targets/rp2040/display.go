//go:build rp2040 || rp2350

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/st7735"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"stopclock/core"
)

// Display wiring: 128x128 ST7735 panel on SPI0.
const (
	pinDisplaySCK = machine.GP2
	pinDisplaySDO = machine.GP3
	pinDisplayDC  = machine.GP4
	pinDisplayRST = machine.GP5
	pinDisplayCS  = machine.GP6
	pinDisplayBL  = machine.GP7
)

const (
	screenWidth  = 128
	screenHeight = 128

	// The readout occupies the region above the button boxes.
	readoutHeight = 78
)

var (
	colorBlack  = color.RGBA{A: 255}
	colorWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorGray   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorCyan   = color.RGBA{G: 255, B: 255, A: 255}
	colorYellow = color.RGBA{R: 255, G: 255, A: 255}
	colorOlive  = color.RGBA{R: 128, G: 128, A: 255}
)

// On-screen button boxes, in core.ButtonPin order.
var buttonBoxes = [core.NumButtons]struct{ x, y, w, h int16 }{
	{0, 80, 50, 28},
	{60, 80, 50, 28},
}

// st7735Renderer implements core.Renderer on the panel. Every draw
// call fully repaints its region.
type st7735Renderer struct {
	dev  st7735.Device
	font *tinyfont.Font
}

func newDisplay() (*st7735Renderer, error) {
	err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 12000000,
		SCK:       pinDisplaySCK,
		SDO:       pinDisplaySDO,
		Mode:      0,
	})
	if err != nil {
		return nil, err
	}

	r := &st7735Renderer{
		dev:  st7735.New(machine.SPI0, pinDisplayRST, pinDisplayDC, pinDisplayCS, pinDisplayBL),
		font: &proggy.TinySZ8pt7b,
	}
	r.dev.Configure(st7735.Config{
		Width:  screenWidth,
		Height: screenHeight,
	})
	r.dev.FillScreen(colorBlack)
	return r, nil
}

func (r *st7735Renderer) DrawFrame(hours, minutes, seconds, milliseconds uint32, running bool) {
	r.dev.FillRectangle(0, 0, screenWidth, readoutHeight, colorBlack)

	tinyfont.WriteLine(&r.dev, r.font, 30, 16, "STOPWATCH", colorCyan)

	status := "STOPPED"
	c := colorOlive
	if running {
		status = "RUNNING"
		c = colorYellow
	}
	tinyfont.WriteLine(&r.dev, r.font, 40, 40, status, c)

	readout := pad(hours, 2) + ":" + pad(minutes, 2) + ":" + pad(seconds, 2) + ":" + pad(milliseconds, 3)
	tinyfont.WriteLine(&r.dev, r.font, 14, 58, readout, c)
}

func (r *st7735Renderer) DrawButtonLabel(pin core.ButtonPin, label string, pressed bool) {
	box := buttonBoxes[pin]
	bg, fg := colorGray, colorBlack
	if pressed {
		bg, fg = colorBlack, colorWhite
	}
	r.dev.FillRectangle(box.x, box.y, box.w, box.h, bg)
	tinyfont.WriteLine(&r.dev, r.font, box.x+6, box.y+18, label, fg)
}

// pad formats v in decimal with at least width digits, without
// importing strconv (for embedded).
func pad(v uint32, width int) string {
	var buf [10]byte
	pos := len(buf)
	for v > 0 || len(buf)-pos < width {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[pos:])
}
