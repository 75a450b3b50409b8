// Package screen draws the panel frame: a border whose style mirrors the
// green LED and the cursor square.
package screen

import (
	"image/color"

	"github.com/harveysanders/picojoystick/joydisplay/stick"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

// Display geometry.
const (
	Width      = 128
	Height     = 64
	SquareSize = 8
	// BorderInset is the gap between the outer and inner border lines.
	BorderInset = 2
)

var white = color.RGBA{255, 255, 255, 255}

// Canvas is a buffered display. *ssd1306.Device satisfies it.
type Canvas interface {
	drivers.Displayer
	ClearBuffer()
}

// DrawBorder outlines the full display. With double set it adds a second
// outline BorderInset pixels inside the first.
func DrawBorder(d drivers.Displayer, double bool) error {
	if err := tinydraw.Rectangle(d, 0, 0, Width, Height, white); err != nil {
		return err
	}
	if !double {
		return nil
	}
	return tinydraw.Rectangle(d, BorderInset, BorderInset,
		Width-2*BorderInset, Height-2*BorderInset, white)
}

// DrawFrame redraws the whole buffer and flushes it to the device.
// The cursor's X is the row and Y the column of the square's corner.
func DrawFrame(c Canvas, cur stick.Cursor, double bool) error {
	c.ClearBuffer()
	if err := DrawBorder(c, double); err != nil {
		return err
	}
	err := tinydraw.FilledRectangle(c, int16(cur.Y), int16(cur.X), SquareSize, SquareSize, white)
	if err != nil {
		return err
	}
	return c.Display()
}
