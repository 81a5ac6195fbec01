//go:build rp2040

package piolib

import (
	"errors"
	"image/color"
	"machine"
	"runtime"

	pio "github.com/tinygo-org/trafficlight/pio"
)

var errBadPin = errors.New("piolib:matrix pin out of range")

// Matrix drives a 5x5 WS2812 LED matrix through a PIO state machine and
// renders countdown digits on it.
type Matrix struct {
	sm    pio.StateMachine
	color color.RGBA
}

// NewMatrix loads the WS2812 program on sm and drives the strip on pin.
func NewMatrix(sm pio.StateMachine, pin machine.Pin) (*Matrix, error) {
	if pin >= 32 {
		return nil, errBadPin
	}
	sm.TryClaim() // SM should be claimed beforehand, we just guarantee it's claimed.
	whole, frac, err := pio.ClkDivFromFrequency(pio.WS2812BitRate*pio.WS2812CyclesPerBit, machine.CPUFrequency())
	if err != nil {
		return nil, err
	}
	prog := pio.WS2812Program()
	Pio := sm.PIO()
	offset, err := Pio.AddProgram(prog)
	if err != nil {
		return nil, err
	}
	pin.Configure(machine.PinConfig{Mode: Pio.PinMode()})
	sm.SetPindirsConsecutive(pin, 1, true)
	cfg := pio.ProgramConfig(prog, offset, pio.WS2812SidesetBits)
	cfg.SetSidesetPins(pin)
	// Shift left, autopull every 24 bits of GRB.
	cfg.SetOutShift(false, true, 24)
	// We only use Tx FIFO, so we set the join to Tx.
	cfg.SetFIFOJoin(pio.FifoJoinTx)
	cfg.SetClkDivIntFrac(whole, frac)
	sm.Init(offset, cfg)
	sm.SetEnabled(true)
	return &Matrix{sm: sm, color: DefaultDigitColor}, nil
}

// SetColor sets the colour of digits drawn from now on.
func (m *Matrix) SetColor(c color.RGBA) { m.color = c }

// ShowDigit draws digit n. Values above 9 blank the matrix.
func (m *Matrix) ShowDigit(n uint8) {
	f := DigitFrame(n, m.color)
	m.WriteFrame(&f)
}

// Clear switches every LED off.
func (m *Matrix) Clear() {
	var f Frame
	m.WriteFrame(&f)
}

// WriteFrame pushes f to the strip, yielding while the TX FIFO is full.
func (m *Matrix) WriteFrame(f *Frame) {
	for i := 0; i < len(f); {
		if m.sm.IsTxFIFOFull() {
			runtime.Gosched()
			continue
		}
		m.sm.TxPut(f[i])
		i++
	}
}
