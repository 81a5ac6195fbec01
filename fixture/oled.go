//go:build rp2040

package fixture

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// OLEDConfig describes the SSD1306 panel.
type OLEDConfig struct {
	Address uint16
	Width   int16
	Height  int16
}

// DefaultOLEDConfig is the 128x64 panel at 0x3C.
var DefaultOLEDConfig = OLEDConfig{Address: 0x3C, Width: 128, Height: 64}

// OLED is a TextDisplay on an SSD1306 panel. Lines are drawn into the
// driver's frame buffer and sent to the panel on Flush.
type OLED struct {
	dev   *ssd1306.Device
	font  tinyfont.Fonter
	color color.RGBA
	err   error
}

// NewOLED configures the panel on an already configured I2C bus and blanks it.
func NewOLED(bus drivers.I2C, cfg OLEDConfig) (*OLED, error) {
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address: cfg.Address,
		Width:   cfg.Width,
		Height:  cfg.Height,
	})
	o := &OLED{
		dev:   &dev,
		font:  &proggy.TinySZ8pt7b,
		color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	o.Clear()
	if err := o.dev.Display(); err != nil {
		return nil, err
	}
	return o, nil
}

// Clear blanks the frame buffer.
func (o *OLED) Clear() { o.dev.ClearBuffer() }

// DrawLine writes text with its baseline at y.
func (o *OLED) DrawLine(text string, x, y int16) {
	tinyfont.WriteLine(o.dev, o.font, x, y, text, o.color)
}

// Flush sends the frame buffer to the panel. Bus errors are kept for Err.
func (o *OLED) Flush() {
	if err := o.dev.Display(); err != nil {
		o.err = err
	}
}

// Err returns the last bus error seen by Flush, if any.
func (o *OLED) Err() error { return o.err }
