package signal

import "time"

// DefaultTick is the nominal countdown step.
const DefaultTick = time.Second

// Sequencer renders a descending countdown on a matrix, one digit per tick.
// Tick time spent writing to the matrix is not compensated for.
type Sequencer struct {
	Matrix CountdownMatrix
	Clock  Clock
	Tick   time.Duration
}

// Run shows seconds, seconds-1, ..., 1 on the matrix, waiting one tick after
// each digit, and returns the number of steps performed. The matrix is left
// showing 1; clearing it is up to the caller. seconds <= 0 does nothing.
// Steps above MaxDuration have no digit and blank the matrix instead.
func (s Sequencer) Run(seconds int) int {
	steps := 0
	for remaining := seconds; remaining > 0; remaining-- {
		if remaining > MaxDuration {
			s.Matrix.Clear()
		} else {
			s.Matrix.ShowDigit(uint8(remaining))
		}
		s.Clock.Wait(s.Tick)
		steps++
	}
	return steps
}
