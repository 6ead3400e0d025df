package main

import (
	"fmt"
	"io"
	"os"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"
	"github.com/tevino/abool"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/internal/config"
)

var loggingStarted = abool.New()

// flags holds the raw persistent flag values of one command tree.
type flags struct {
	configPath string
	logLevel   string
	maxClimb   int
	render     string
}

// app carries the resolved configuration from PersistentPreRunE to the
// subcommands.
type app struct {
	flags flags
	cfg   config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "hillclimb [map]",
		Short:        "Find fewest-step routes over letter height maps",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, args, a.cfg.Mode)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: trace, debug, info (logged to stdout), warning, error, critical")
	pf.IntVar(&a.flags.maxClimb, "max-climb", elevation.DefaultMaxClimb, "largest legal height gain of one step")
	pf.StringVar(&a.flags.render, "render", "", "draw the route: none, ascii, dot")

	root.AddCommand(
		&cobra.Command{
			Use:   "direct [map]",
			Short: "Fewest steps from S to E",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.query(cmd, args, config.ModeDirect)
			},
		},
		&cobra.Command{
			Use:   "nearest [map]",
			Short: "Fewest steps from any lowest cell to E",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.query(cmd, args, config.ModeNearest)
			},
		},
		&cobra.Command{
			Use:   "render [map]",
			Short: "Draw every cell's distance to E",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.renderMap(cmd, args)
			},
		},
	)

	return root
}

// setup resolves the configuration (defaults, then file, then explicit
// flags), validates it and starts logging for the verbose levels.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.flags.configPath != "" {
		loaded, err := config.Load(a.flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	pf := cmd.Flags()
	if pf.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if pf.Changed("max-climb") {
		cfg.MaxClimb = a.flags.maxClimb
	}
	if pf.Changed("render") {
		cfg.Render = a.flags.render
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if !verboseLogging(cfg.LogLevel) {
		// The log writer frames its output on stdout, which is reserved for
		// results at the quieter levels. Failures still reach stderr as the
		// command error.
		log.SetLogLevel(log.CriticalLevel)
		return nil
	}
	if loggingStarted.SetToIf(false, true) {
		if err := log.Start(); err != nil {
			return fmt.Errorf("failed to start logging: %w", err)
		}
	}
	log.SetLogLevel(log.ParseLevel(cfg.LogLevel))
	log.Debugf("hillclimb: config mode=%s maxClimb=%d render=%s", cfg.Mode, cfg.MaxClimb, cfg.Render)

	return nil
}

// verboseLogging reports whether level asks for more than warnings. Only
// then is the log writer started.
func verboseLogging(level string) bool {
	return log.ParseLevel(level) < log.WarningLevel
}

// loadGrid parses the map named by args[0], or by the configured input.
// "-" reads from the command's stdin.
func (a *app) loadGrid(cmd *cobra.Command, args []string) (*elevation.Grid, error) {
	input := a.cfg.Input
	if len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		return nil, fmt.Errorf("no map given: pass a file argument or set input in the config")
	}

	var r io.Reader
	if input == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	g, err := heightmap.Parse(r, elevation.WithMaxClimb(a.cfg.MaxClimb))
	if err != nil {
		log.Warningf("hillclimb: failed to parse %s: %s", input, err)
		return nil, err
	}
	log.Infof("hillclimb: loaded %dx%d map from %s, start %s, end %s",
		g.Width(), g.Height(), input, g.Start(), g.End())

	return g, nil
}
