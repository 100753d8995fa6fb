package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/verve"
	"github.com/gogpu/verve/config"
	"github.com/gogpu/verve/signal"
)

var (
	version = "dev" // injected via ldflags
	commit  = ""
	date    = ""
)

// execute runs the vervedemo CLI and returns an error if any command
// fails. Logging level follows --verbose; the charm logger is installed
// as verve's slog handler so engine lifecycle events land in the same
// stream as CLI output.
func execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "vervedemo",
		Short:        "vervedemo drives the verve visual parameter engine",
		Long:         `vervedemo exercises the verve engine end to end: an interactive window, a live terminal monitor, an HTTP snapshot/event feed and a headless run for profiling.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			verve.SetLogger(slog.New(handler))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("vervedemo %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newRunCmd(&configPath))
	root.AddCommand(newWindowCmd(&configPath))
	root.AddCommand(newMonitorCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))

	return root.ExecuteContext(context.Background())
}

// buildEngine constructs an engine from the optional config file plus
// command-specific options.
func buildEngine(configPath string, extra ...verve.Option) (*verve.Engine, error) {
	var opts []verve.Option
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		opts = cfg.Options()
	}
	opts = append(opts, extra...)
	return verve.New(opts...), nil
}

// seedClock delivers the initial diurnal sample so the time-of-day
// multiplier is live from the first frame.
func seedClock(eng *verve.Engine) {
	eng.Deliver(signal.ClockSample(time.Now()))
}
