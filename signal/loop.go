package signal

import (
	"context"
	"fmt"
	"time"
)

// DefaultStatusLabel prefixes every status line.
const DefaultStatusLabel = "traffic light running"

// Status is reported by Loop after every completed phase.
type Status struct {
	Label string
	// Phase is the phase that runs next.
	Phase PhaseID
	// Completed counts the phases run so far.
	Completed uint64
	Ticks     uint64
}

func (s Status) String() string {
	return fmt.Sprintf("%s - state: %s", s.Label, s.Phase)
}

// Reporter receives one Status per completed phase.
type Reporter interface {
	Report(Status)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Status)

func (f ReporterFunc) Report(s Status) { f(s) }

// Loop drives a Controller phase after phase.
type Loop struct {
	ctrl      *Controller
	report    Reporter
	label     string
	pause     time.Duration
	maxPhases uint64
	clock     Clock
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithPause waits d between the status report and the next phase.
func WithPause(d time.Duration) LoopOption {
	return func(l *Loop) { l.pause = d }
}

// WithMaxPhases makes Run return after n phases. Zero runs forever.
func WithMaxPhases(n uint64) LoopOption {
	return func(l *Loop) { l.maxPhases = n }
}

// WithLabel replaces DefaultStatusLabel.
func WithLabel(label string) LoopOption {
	return func(l *Loop) { l.label = label }
}

// WithLoopClock sets the clock used for the inter-phase pause.
func WithLoopClock(clk Clock) LoopOption {
	return func(l *Loop) { l.clock = clk }
}

// NewLoop returns a loop over ctrl. A nil r discards status reports.
func NewLoop(ctrl *Controller, r Reporter, opts ...LoopOption) *Loop {
	if r == nil {
		r = ReporterFunc(func(Status) {})
	}
	l := &Loop{
		ctrl:   ctrl,
		report: r,
		label:  DefaultStatusLabel,
		clock:  SleepClock{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run runs the first phase immediately and then keeps running phases,
// reporting status between them. ctx is only checked at phase boundaries so
// a started phase always completes. Run returns ctx.Err() on cancellation and
// nil once the phase budget set with WithMaxPhases is spent.
func (l *Loop) Run(ctx context.Context) error {
	var completed uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.ctrl.RunCurrentPhase()
		completed++
		l.report.Report(Status{
			Label:     l.label,
			Phase:     l.ctrl.CurrentPhase(),
			Completed: completed,
			Ticks:     l.ctrl.Ticks(),
		})
		if l.maxPhases != 0 && completed >= l.maxPhases {
			return nil
		}
		if l.pause > 0 {
			l.clock.Wait(l.pause)
		}
	}
}
