// Package console renders the traffic light fixture on a terminal so the
// controller can run on a host without the board attached.
//
// A Board holds the simulated peripheral state. Its Panel, Buzzer, Display
// and Matrix views implement the signal collaborator interfaces; every
// countdown step prints one block with the digit glyph beside the lamps,
// the buzzer and the text on the OLED.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/tinygo-org/trafficlight/pio/piolib"
	"github.com/tinygo-org/trafficlight/signal"
)

var lampColors = [...]string{
	signal.ChannelRed:   "#ef4444",
	signal.ChannelMid:   "#3b82f6",
	signal.ChannelGreen: "#22c55e",
}

const digitColor = "#fbbf24"

// Board is the simulated fixture. The zero value is not usable; use New.
type Board struct {
	out     io.Writer
	profile termenv.Profile

	lamps   [len(signal.Channels)]bool
	tone    signal.Tone
	pending []signal.TextLine
	shown   []signal.TextLine
	digit   int
	frames  int
}

// New returns a board printing to w. With color false the output carries
// no escape sequences.
func New(w io.Writer, color bool) *Board {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}
	return &Board{out: w, profile: profile, digit: -1}
}

// Peripherals returns the board's views wired for signal.NewController.
func (b *Board) Peripherals() signal.Peripherals {
	return signal.Peripherals{
		Panel:   Panel{b},
		Buzzer:  Buzzer{b},
		Display: Display{b},
		Matrix:  Matrix{b},
	}
}

// Lamp reports whether channel ch is lit.
func (b *Board) Lamp(ch signal.Channel) bool {
	if int(ch) >= len(b.lamps) {
		return false
	}
	return b.lamps[ch]
}

// Tone returns the tone playing, zero when silent.
func (b *Board) Tone() signal.Tone { return b.tone }

// Text returns the lines last flushed to the display.
func (b *Board) Text() []string {
	s := make([]string, len(b.shown))
	for i, l := range b.shown {
		s[i] = l.Text
	}
	return s
}

// Digit returns the digit on the matrix, or -1 when blank.
func (b *Board) Digit() int { return b.digit }

// Frames returns how many countdown blocks have been printed.
func (b *Board) Frames() int { return b.frames }

func (b *Board) render() {
	var side [piolib.MatrixSize]string
	side[0] = b.lampRow()
	side[1] = b.buzzerRow()
	for i := 0; i < len(b.shown) && i+2 < len(side); i++ {
		side[i+2] = "| " + b.shown[i].Text
	}
	var sb strings.Builder
	for y := 0; y < piolib.MatrixSize; y++ {
		for x := 0; x < piolib.MatrixSize; x++ {
			if b.digit >= 0 && piolib.GlyphLit(uint8(b.digit), x, y) {
				sb.WriteString(termenv.String("#").Foreground(b.profile.Color(digitColor)).String())
			} else {
				sb.WriteByte('.')
			}
		}
		if side[y] != "" {
			sb.WriteString("  ")
			sb.WriteString(side[y])
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	b.frames++
	io.WriteString(b.out, sb.String())
}

func (b *Board) lampRow() string {
	parts := make([]string, 0, len(signal.Channels))
	for _, ch := range signal.Channels {
		mark := "o"
		if b.lamps[ch] {
			mark = termenv.String("@").Foreground(b.profile.Color(lampColors[ch])).String()
		}
		parts = append(parts, fmt.Sprintf("%s%s", lampLabel(ch), mark))
	}
	return strings.Join(parts, " ")
}

func (b *Board) buzzerRow() string {
	if b.tone == (signal.Tone{}) {
		return "buzzer off"
	}
	return fmt.Sprintf("buzzer %dHz %d/%d", b.tone.FrequencyHz, b.tone.Duty, signal.DutyScale)
}

func lampLabel(ch signal.Channel) string {
	switch ch {
	case signal.ChannelRed:
		return "R"
	case signal.ChannelMid:
		return "B"
	case signal.ChannelGreen:
		return "G"
	}
	return "?"
}

// Panel is the IndicatorPanel view of a Board.
type Panel struct{ b *Board }

func (p Panel) Set(ch signal.Channel, on bool) {
	if int(ch) < len(p.b.lamps) {
		p.b.lamps[ch] = on
	}
}

// Buzzer is the BuzzerDriver view of a Board.
type Buzzer struct{ b *Board }

func (z Buzzer) Enable(frequencyHz, duty uint32) {
	z.b.tone = signal.Tone{FrequencyHz: frequencyHz, Duty: duty}
}

func (z Buzzer) Disable() { z.b.tone = signal.Tone{} }

// Display is the TextDisplay view of a Board. Drawn lines show up on Flush.
type Display struct{ b *Board }

func (d Display) Clear() { d.b.pending = d.b.pending[:0] }

func (d Display) DrawLine(text string, x, y int16) {
	d.b.pending = append(d.b.pending, signal.TextLine{Text: text, X: x, Y: y})
}

func (d Display) Flush() {
	d.b.shown = append(d.b.shown[:0], d.b.pending...)
}

// Matrix is the CountdownMatrix view of a Board. Each digit prints a block.
type Matrix struct{ b *Board }

func (m Matrix) ShowDigit(n uint8) {
	if n > 9 {
		m.b.digit = -1
	} else {
		m.b.digit = int(n)
	}
	m.b.render()
}

func (m Matrix) Clear() { m.b.digit = -1 }
