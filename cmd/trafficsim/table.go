package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tinygo-org/trafficlight/signal"
)

// printTable writes one row per phase in cycle order followed by the
// nominal cycle length.
func printTable(w io.Writer, table *signal.Table) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PHASE\tSECONDS\tLAMPS\tBUZZER\tNEXT\tMESSAGE")
	id := signal.Stop
	for range table {
		p := table.Phase(id)
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			p.ID, p.Duration, lamps(p.Pattern), buzzer(p), p.Next, message(p.Message))
		id = p.Next
	}
	tw.Flush()
	fmt.Fprintf(w, "cycle: %ds\n", table.CycleSeconds())
}

func lamps(p signal.Pattern) string {
	var on []string
	for _, ch := range signal.Channels {
		if p.On(ch) {
			on = append(on, ch.String())
		}
	}
	if len(on) == 0 {
		return "-"
	}
	return strings.Join(on, "+")
}

func buzzer(p signal.Phase) string {
	if !p.Buzzer {
		return "-"
	}
	return fmt.Sprintf("%dHz@%d/%d", p.Tone.FrequencyHz, p.Tone.Duty, signal.DutyScale)
}

func message(lines []signal.TextLine) string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, " / ")
}
