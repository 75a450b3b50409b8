package screen

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
)

// NewSSD1306 configures a Width x Height SSD1306 at address on bus and
// blanks both its buffer and the panel.
func NewSSD1306(bus drivers.I2C, address uint16) *ssd1306.Device {
	display := ssd1306.NewI2C(bus)
	display.Configure(ssd1306.Config{
		Width:    Width,
		Height:   Height,
		Address:  address,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	display.ClearBuffer()
	display.ClearDisplay()
	return display
}
