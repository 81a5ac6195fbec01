package signal

import (
	"fmt"
	"time"
)

// recorder implements every peripheral and the clock, logging each call in
// order so tests can assert exact command sequences.
type recorder struct {
	calls  []string
	lights [3]bool
	buzz   bool
	digits []uint8
	waits  []time.Duration
	lines  []TextLine
}

func (r *recorder) peripherals() Peripherals {
	return Peripherals{Panel: r, Buzzer: r, Display: r, Matrix: r}
}

func (r *recorder) Set(ch Channel, on bool) {
	r.lights[ch] = on
	r.calls = append(r.calls, fmt.Sprintf("set %s %t", ch, on))
}

func (r *recorder) Enable(freq, duty uint32) {
	r.buzz = true
	r.calls = append(r.calls, fmt.Sprintf("buzz %d %d", freq, duty))
}

func (r *recorder) Disable() {
	r.buzz = false
	r.calls = append(r.calls, "mute")
}

func (r *recorder) Clear() {
	// Display and matrix share the method name; the preceding call tells
	// them apart in the log.
	r.calls = append(r.calls, "clear")
}

func (r *recorder) DrawLine(text string, x, y int16) {
	r.lines = append(r.lines, TextLine{Text: text, X: x, Y: y})
	r.calls = append(r.calls, fmt.Sprintf("draw %q %d %d", text, x, y))
}

func (r *recorder) Flush() { r.calls = append(r.calls, "flush") }

func (r *recorder) ShowDigit(n uint8) {
	r.digits = append(r.digits, n)
	r.calls = append(r.calls, fmt.Sprintf("digit %d", n))
}

func (r *recorder) Wait(d time.Duration) {
	r.waits = append(r.waits, d)
	r.calls = append(r.calls, "wait")
}

func (r *recorder) reset() {
	r.calls = nil
	r.digits = nil
	r.waits = nil
	r.lines = nil
}

func newRecordedController(opts ...Option) (*Controller, *recorder) {
	rec := &recorder{}
	opts = append([]Option{WithClock(rec)}, opts...)
	return NewController(rec.peripherals(), opts...), rec
}
