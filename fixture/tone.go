// Package fixture binds the traffic light controller to the board
// peripherals: the RGB indicator LED, the PWM buzzer and the SSD1306 OLED.
package fixture

import "github.com/tinygo-org/trafficlight/signal"

// PeriodNanos returns the PWM period in nanoseconds for a tone of
// frequencyHz. Zero frequency yields zero.
func PeriodNanos(frequencyHz uint32) uint64 {
	if frequencyHz == 0 {
		return 0
	}
	return 1e9 / uint64(frequencyHz)
}

// Level converts duty, on the signal.DutyScale, into the compare level of a
// PWM counter running up to top.
func Level(top, duty uint32) uint32 {
	if duty >= signal.DutyScale {
		return top
	}
	return uint32(uint64(top) * uint64(duty) / signal.DutyScale)
}
