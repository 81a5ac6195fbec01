// Package signal implements the phase state machine and countdown sequencer
// of a three-phase traffic light. Peripherals are reached only through the
// narrow interfaces in peripheral.go so the same controller drives real
// hardware and the host simulator.
package signal

import "errors"

// PhaseID identifies one of the three traffic light phases.
type PhaseID uint8

const (
	Stop PhaseID = iota
	Caution
	Go

	numPhases = 3
)

// String returns the upper-case phase name used in status lines.
func (id PhaseID) String() string {
	switch id {
	case Stop:
		return "STOP"
	case Caution:
		return "CAUTION"
	case Go:
		return "GO"
	default:
		return "UNKNOWN"
	}
}

// DutyScale is the fixed scale Tone.Duty is expressed on. A duty of
// DutyScale is a 100% high output.
const DutyScale = 10000

// Tone is the buzzer setting of a phase.
type Tone struct {
	FrequencyHz uint32
	// Duty on the DutyScale.
	Duty uint32
}

// Pattern is the on/off state of the three indicator channels.
type Pattern struct {
	Red   bool
	Mid   bool
	Green bool
}

// On reports the state of channel ch in the pattern.
func (p Pattern) On(ch Channel) bool {
	switch ch {
	case ChannelRed:
		return p.Red
	case ChannelMid:
		return p.Mid
	case ChannelGreen:
		return p.Green
	}
	return false
}

// TextLine is a message line drawn at a fixed display position.
type TextLine struct {
	Text string
	X, Y int16
}

// Phase is the immutable descriptor of a traffic light phase.
type Phase struct {
	ID PhaseID
	// Duration of the phase in seconds (one countdown tick per second).
	Duration int
	Pattern  Pattern
	Message  []TextLine
	// Buzzer enables Tone for the whole phase.
	Buzzer bool
	Tone   Tone
	Next   PhaseID
}

// Table errors.
var (
	ErrZeroDuration    = errors.New("signal: phase duration must be positive")
	ErrDurationTooLong = errors.New("signal: phase duration exceeds one countdown digit")
	ErrIDMismatch      = errors.New("signal: phase stored under wrong id")
	ErrBrokenCycle     = errors.New("signal: next-phase relation is not a single 3-cycle")
)

// MaxDuration is the longest phase the single-digit countdown can show.
const MaxDuration = 9

// Table holds one descriptor per PhaseID, indexed by the ID.
type Table [numPhases]Phase

// Message line positions on the 128x64 display.
const (
	upperLineX, upperLineY = 5, 20
	lowerLineX, lowerLineY = 5, 40
)

// DefaultTable returns the fixed phase table of the fixture.
//
//	STOP     3s  red          "Proibido a" / "passagem"
//	CAUTION  3s  red+green    "Atencao!"
//	GO       6s  green, tone  "Permitido a" / "passagem"
//
// The RGB indicator has no dedicated yellow; caution mixes red and green.
func DefaultTable() Table {
	return Table{
		Stop: {
			ID:       Stop,
			Duration: 3,
			Pattern:  Pattern{Red: true},
			Message: []TextLine{
				{Text: "Proibido a", X: upperLineX, Y: upperLineY},
				{Text: "passagem", X: lowerLineX, Y: lowerLineY},
			},
			Next: Caution,
		},
		Caution: {
			ID:       Caution,
			Duration: 3,
			Pattern:  Pattern{Red: true, Green: true},
			Message: []TextLine{
				{Text: "Atencao!", X: upperLineX, Y: upperLineY},
			},
			Next: Go,
		},
		Go: {
			ID:       Go,
			Duration: 6,
			Pattern:  Pattern{Green: true},
			Message: []TextLine{
				{Text: "Permitido a", X: upperLineX, Y: upperLineY},
				{Text: "passagem", X: lowerLineX, Y: lowerLineY},
			},
			Buzzer: true,
			Tone:   Tone{FrequencyHz: 300, Duty: 300},
			Next:   Stop,
		},
	}
}

// Validate checks that every duration is between 1 and MaxDuration, that
// descriptors sit at their own index and that following Next from Stop
// visits every phase once before returning to Stop.
func (t *Table) Validate() error {
	for i := range t {
		if t[i].ID != PhaseID(i) {
			return ErrIDMismatch
		}
		if t[i].Duration <= 0 {
			return ErrZeroDuration
		}
		if t[i].Duration > MaxDuration {
			return ErrDurationTooLong
		}
		if t[i].Next >= numPhases {
			return ErrBrokenCycle
		}
	}
	var seen [numPhases]bool
	id := Stop
	for i := 0; i < numPhases; i++ {
		if seen[id] {
			return ErrBrokenCycle
		}
		seen[id] = true
		id = t[id].Next
	}
	if id != Stop {
		return ErrBrokenCycle
	}
	return nil
}

// Phase returns the descriptor for id. An id outside the table cannot be
// produced by a valid Next relation and panics.
func (t *Table) Phase(id PhaseID) Phase {
	if id >= numPhases {
		panic("signal: invalid phase " + id.String())
	}
	return t[id]
}

// CycleSeconds returns the nominal duration of one full cycle starting at Stop.
func (t *Table) CycleSeconds() int {
	total := 0
	id := Stop
	for i := 0; i < numPhases; i++ {
		p := t.Phase(id)
		total += p.Duration
		id = p.Next
	}
	return total
}
