//go:build rp2040

package fixture

import (
	"machine"

	"github.com/tinygo-org/trafficlight/signal"
)

// Lights drives the three indicator channels of the RGB LED, one GPIO each.
type Lights struct {
	pins [len(signal.Channels)]machine.Pin
}

// NewLights configures red, mid and green as outputs, all off.
func NewLights(red, mid, green machine.Pin) *Lights {
	l := &Lights{pins: [...]machine.Pin{
		signal.ChannelRed:   red,
		signal.ChannelMid:   mid,
		signal.ChannelGreen: green,
	}}
	for _, pin := range l.pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}
	return l
}

// Set switches channel ch. Unknown channels are ignored.
func (l *Lights) Set(ch signal.Channel, on bool) {
	if int(ch) >= len(l.pins) {
		return
	}
	l.pins[ch].Set(on)
}
