package console

import (
	"github.com/rs/zerolog"

	"github.com/tinygo-org/trafficlight/signal"
)

// LogReporter logs one info event per completed phase, with the status
// line as the message.
func LogReporter(logger zerolog.Logger) signal.Reporter {
	return signal.ReporterFunc(func(s signal.Status) {
		logger.Info().
			Str("state", s.Phase.String()).
			Uint64("completed", s.Completed).
			Uint64("ticks", s.Ticks).
			Msg(s.String())
	})
}
