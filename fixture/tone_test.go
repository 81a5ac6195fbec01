package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinygo-org/trafficlight/signal"
)

func TestPeriodNanos(t *testing.T) {
	tests := []struct {
		freq uint32
		want uint64
	}{
		{freq: 300, want: 3_333_333},
		{freq: 1000, want: 1_000_000},
		{freq: 1, want: 1_000_000_000},
		{freq: 0, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PeriodNanos(tt.freq), "freq %d", tt.freq)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name      string
		top, duty uint32
		want      uint32
	}{
		{name: "go phase tone", top: 10000, duty: 300, want: 300},
		{name: "scaled top", top: 65535, duty: 300, want: 1966},
		{name: "silent", top: 65535, duty: 0, want: 0},
		{name: "full", top: 65535, duty: signal.DutyScale, want: 65535},
		{name: "over full clamps", top: 1000, duty: 2 * signal.DutyScale, want: 1000},
		{name: "half", top: 4000, duty: signal.DutyScale / 2, want: 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.top, tt.duty))
		})
	}
}

func TestLevel_DefaultTone(t *testing.T) {
	table := signal.DefaultTable()
	tone := table.Phase(signal.Go).Tone
	// 3% duty, as the fixture's 10000-step PWM wrap with level 300.
	assert.Equal(t, uint32(300), Level(signal.DutyScale, tone.Duty))
	assert.Equal(t, uint64(3_333_333), PeriodNanos(tone.FrequencyHz))
}
