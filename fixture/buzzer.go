//go:build rp2040

package fixture

import (
	"machine"
)

// PWM is the subset of a machine PWM slice the buzzer needs, e.g. machine.PWM2.
type PWM interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Set(channel uint8, value uint32)
	Top() uint32
}

// Buzzer plays tones on a piezo buzzer through a PWM slice. Disable hands
// the pin back to plain GPIO and drives it low.
type Buzzer struct {
	pwm PWM
	pin machine.Pin
	err error
}

// NewBuzzer returns a silent buzzer on pin, which must belong to pwm's slice.
func NewBuzzer(pwm PWM, pin machine.Pin) *Buzzer {
	b := &Buzzer{pwm: pwm, pin: pin}
	b.Disable()
	return b
}

// Enable starts a tone of frequencyHz at duty (on signal.DutyScale).
// Failures are kept for Err; the buzzer stays silent.
func (b *Buzzer) Enable(frequencyHz, duty uint32) {
	err := b.pwm.Configure(machine.PWMConfig{Period: PeriodNanos(frequencyHz)})
	if err != nil {
		b.err = err
		return
	}
	ch, err := b.pwm.Channel(b.pin)
	if err != nil {
		b.err = err
		return
	}
	b.pwm.Set(ch, Level(b.pwm.Top(), duty))
}

// Disable silences the buzzer.
func (b *Buzzer) Disable() {
	b.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	b.pin.Low()
}

// Err returns the last PWM configuration error, if any.
func (b *Buzzer) Err() error { return b.err }
