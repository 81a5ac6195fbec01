// Package main provides the traffic light simulator entry point. It drives
// the phase controller against a terminal rendition of the fixture.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/tinygo-org/trafficlight/console"
	"github.com/tinygo-org/trafficlight/internal/config"
	"github.com/tinygo-org/trafficlight/internal/logger"
	"github.com/tinygo-org/trafficlight/signal"
)

var (
	app        = kingpin.New("trafficsim", "Traffic light fixture simulator")
	configPath = app.Flag("config", "Path to config file (default: built-in defaults)").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stdout)").String()
	tick       = app.Flag("tick", "Countdown step length, e.g. 100ms").Duration()
	phases     = app.Flag("phases", "Stop after this many phases (0: until interrupted)").IsSetByUser(&phasesSet).Uint64()
	noColor    = app.Flag("no-color", "Disable coloured output").Bool()

	phasesSet bool

	// table command
	tableCmd = app.Command("table", "Print the phase table and exit")
)

func init() {
	app.Command("run", "Run the simulator (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if command == tableCmd.FullCommand() {
		table := signal.DefaultTable()
		printTable(os.Stdout, &table)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	loggerConfig := logger.Config{
		Output: cfg.Log.Output,
		Level:  cfg.Log.Level,
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
	}
	logCloser, err := logger.Init(loggerConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, os.Stdout)
	stop()
	if err != nil {
		zlog.Error().Msgf("Simulation error: %v", err)
	}
	if cerr := logCloser.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Failed to close log: %v\n", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}

// applyFlags lets command-line flags take precedence over the config file.
func applyFlags(cfg *config.Config) {
	if *tick > 0 {
		cfg.Simulator.TickMs = int(tick.Milliseconds())
		if cfg.Simulator.TickMs == 0 {
			cfg.Simulator.TickMs = 1
		}
	}
	if phasesSet {
		cfg.Simulator.MaxPhases = *phases
	}
	if *noColor {
		off := false
		cfg.Simulator.Color = &off
	}
}

// run drives the controller until the phase budget is spent or ctx is
// cancelled. Cancellation is a normal stop.
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	board := console.New(out, cfg.Simulator.ColorEnabled())
	ctrl := signal.NewController(board.Peripherals(), signal.WithTick(cfg.Simulator.Tick()))
	table := ctrl.Table()
	if err := table.Validate(); err != nil {
		return errors.Wrap(err, "invalid phase table")
	}

	loop := signal.NewLoop(ctrl, console.LogReporter(zlog.Logger),
		signal.WithPause(cfg.Simulator.Pause()),
		signal.WithMaxPhases(cfg.Simulator.MaxPhases),
		signal.WithLabel(cfg.Simulator.Label),
	)

	zlog.Info().
		Dur("tick", cfg.Simulator.Tick()).
		Dur("pause", cfg.Simulator.Pause()).
		Uint64("max_phases", cfg.Simulator.MaxPhases).
		Msg("Starting traffic light")

	err := loop.Run(ctx)

	zlog.Info().
		Str("state", ctrl.CurrentPhase().String()).
		Uint64("ticks", ctrl.Ticks()).
		Int("frames", board.Frames()).
		Msg("Traffic light stopped")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
