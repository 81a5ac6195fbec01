package signal

import "time"

// Channel is one of the three indicator light channels.
type Channel uint8

const (
	ChannelRed Channel = iota
	ChannelMid
	ChannelGreen
)

// Channels lists every indicator channel in drive order.
var Channels = [...]Channel{ChannelRed, ChannelMid, ChannelGreen}

func (ch Channel) String() string {
	switch ch {
	case ChannelRed:
		return "red"
	case ChannelMid:
		return "mid"
	case ChannelGreen:
		return "green"
	default:
		return "unknown"
	}
}

// IndicatorPanel switches the indicator light channels.
type IndicatorPanel interface {
	Set(ch Channel, on bool)
}

// BuzzerDriver starts and stops the buzzer tone. duty is on the DutyScale.
type BuzzerDriver interface {
	Enable(frequencyHz, duty uint32)
	Disable()
}

// TextDisplay is a buffered text screen. Drawn lines become visible on Flush.
type TextDisplay interface {
	Clear()
	DrawLine(text string, x, y int16)
	Flush()
}

// CountdownMatrix renders a single decimal digit, 0 through 9, or a blank.
type CountdownMatrix interface {
	ShowDigit(n uint8)
	Clear()
}

// Clock blocks the caller for a duration.
type Clock interface {
	Wait(d time.Duration)
}

// SleepClock waits with time.Sleep.
type SleepClock struct{}

func (SleepClock) Wait(d time.Duration) { time.Sleep(d) }

// Peripherals bundles the output collaborators of a Controller.
type Peripherals struct {
	Panel   IndicatorPanel
	Buzzer  BuzzerDriver
	Display TextDisplay
	Matrix  CountdownMatrix
}
