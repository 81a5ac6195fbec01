package signal

import "time"

// Controller owns the current phase and runs it to completion on the
// peripherals. It is not safe for concurrent use; a single goroutine drives it.
type Controller struct {
	table   Table
	current PhaseID
	out     Peripherals
	seq     Sequencer
	ticks   uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithTick sets the countdown step, DefaultTick if unset.
func WithTick(d time.Duration) Option {
	return func(c *Controller) { c.seq.Tick = d }
}

// WithClock replaces the SleepClock used between countdown steps.
func WithClock(clk Clock) Option {
	return func(c *Controller) { c.seq.Clock = clk }
}

// NewController returns a controller in the Stop phase driving p with the
// fixed DefaultTable.
func NewController(p Peripherals, opts ...Option) *Controller {
	c := &Controller{
		table:   DefaultTable(),
		current: Stop,
		out:     p,
		seq: Sequencer{
			Matrix: p.Matrix,
			Clock:  SleepClock{},
			Tick:   DefaultTick,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentPhase returns the phase the next RunCurrentPhase call will run.
func (c *Controller) CurrentPhase() PhaseID { return c.current }

// Phase returns the descriptor of the current phase.
func (c *Controller) Phase() Phase { return c.table.Phase(c.current) }

// Ticks returns the number of countdown digits rendered so far.
func (c *Controller) Ticks() uint64 { return c.ticks }

// Table returns a copy of the phase table.
func (c *Controller) Table() Table { return c.table }

// RunCurrentPhase retires the previous outputs, applies the current phase,
// blocks for its countdown and advances to the next phase.
func (c *Controller) RunCurrentPhase() {
	p := c.table.Phase(c.current)

	c.retire()
	for _, ch := range Channels {
		c.out.Panel.Set(ch, p.Pattern.On(ch))
	}
	if p.Buzzer {
		c.out.Buzzer.Enable(p.Tone.FrequencyHz, p.Tone.Duty)
	}

	c.out.Display.Clear()
	for _, line := range p.Message {
		c.out.Display.DrawLine(line.Text, line.X, line.Y)
	}
	c.out.Display.Flush()

	c.ticks += uint64(c.seq.Run(p.Duration))
	c.out.Matrix.Clear()

	c.current = p.Next
}

// retire switches every indicator channel off and silences the buzzer.
func (c *Controller) retire() {
	for _, ch := range Channels {
		c.out.Panel.Set(ch, false)
	}
	c.out.Buzzer.Disable()
}
