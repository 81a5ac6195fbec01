package console

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinygo-org/trafficlight/signal"
)

type nopClock struct{ waits int }

func (c *nopClock) Wait(time.Duration) { c.waits++ }

func TestBoard_StopPhase(t *testing.T) {
	var out bytes.Buffer
	b := New(&out, false)
	clk := &nopClock{}
	ctrl := signal.NewController(b.Peripherals(), signal.WithClock(clk))

	ctrl.RunCurrentPhase()

	assert.True(t, b.Lamp(signal.ChannelRed))
	assert.False(t, b.Lamp(signal.ChannelMid))
	assert.False(t, b.Lamp(signal.ChannelGreen))
	assert.Equal(t, signal.Tone{}, b.Tone())
	assert.Equal(t, []string{"Proibido a", "passagem"}, b.Text())
	assert.Equal(t, -1, b.Digit())
	assert.Equal(t, 3, b.Frames())
	assert.Equal(t, 3, clk.waits)

	blocks := strings.Split(strings.TrimSuffix(out.String(), "\n\n"), "\n\n")
	require.Len(t, blocks, 3)
	assert.Equal(t, strings.Join([]string{
		"####.  R@ Bo Go",
		"....#  buzzer off",
		".###.  | Proibido a",
		"....#  | passagem",
		"####.",
	}, "\n"), blocks[0])
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestBoard_GoPhaseBuzzes(t *testing.T) {
	var out bytes.Buffer
	b := New(&out, false)
	ctrl := signal.NewController(b.Peripherals(), signal.WithClock(&nopClock{}))
	ctrl.RunCurrentPhase() // STOP
	ctrl.RunCurrentPhase() // CAUTION
	out.Reset()

	ctrl.RunCurrentPhase() // GO

	assert.Equal(t, 6, strings.Count(out.String(), "buzzer 300Hz 300/10000"))
	assert.Contains(t, out.String(), "Ro Bo G@")
	assert.Contains(t, out.String(), "| Permitido a")
	// the tone is retired by the next phase, not at the end of GO.
	assert.Equal(t, signal.Tone{FrequencyHz: 300, Duty: 300}, b.Tone())

	ctrl.RunCurrentPhase()
	assert.Equal(t, signal.Tone{}, b.Tone())
}

func TestBoard_CautionMixesRedAndGreen(t *testing.T) {
	b := New(&bytes.Buffer{}, false)
	ctrl := signal.NewController(b.Peripherals(), signal.WithClock(&nopClock{}))
	ctrl.RunCurrentPhase()
	ctrl.RunCurrentPhase()

	assert.True(t, b.Lamp(signal.ChannelRed))
	assert.False(t, b.Lamp(signal.ChannelMid))
	assert.True(t, b.Lamp(signal.ChannelGreen))
	assert.Equal(t, []string{"Atencao!"}, b.Text())
}

func TestDisplay_FlushPublishes(t *testing.T) {
	b := New(&bytes.Buffer{}, false)
	d := Display{b}

	d.Clear()
	d.DrawLine("one", 0, 0)
	assert.Empty(t, b.Text())
	d.Flush()
	assert.Equal(t, []string{"one"}, b.Text())

	d.Clear()
	d.DrawLine("two", 0, 0)
	assert.Equal(t, []string{"one"}, b.Text())
	d.Flush()
	assert.Equal(t, []string{"two"}, b.Text())
}

func TestMatrix_OutOfRangeIsBlank(t *testing.T) {
	var out bytes.Buffer
	b := New(&out, false)
	Matrix{b}.ShowDigit(12)

	assert.Equal(t, -1, b.Digit())
	assert.Equal(t, 1, b.Frames())
	assert.NotContains(t, out.String(), "#")
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	b := New(&bytes.Buffer{}, false)
	ctrl := signal.NewController(b.Peripherals(), signal.WithClock(&nopClock{}))
	loop := signal.NewLoop(ctrl, LogReporter(logger), signal.WithMaxPhases(2))

	require.NoError(t, loop.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first struct {
		Level     string `json:"level"`
		State     string `json:"state"`
		Completed uint64 `json:"completed"`
		Ticks     uint64 `json:"ticks"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "info", first.Level)
	assert.Equal(t, "CAUTION", first.State)
	assert.Equal(t, uint64(1), first.Completed)
	assert.Equal(t, uint64(3), first.Ticks)
	assert.Equal(t, "traffic light running - state: CAUTION", first.Message)
	assert.Contains(t, lines[1], `"state":"GO"`)
}
