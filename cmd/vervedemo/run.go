package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/verve"
	"github.com/gogpu/verve/render"
)

// newRunCmd builds the headless run: the engine loops on the soft
// backend, lifecycle events stream to stdout, and an optional duration
// bounds the run for profiling.
func newRunCmd(configPath *string) *cobra.Command {
	var (
		duration time.Duration
		section  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the engine headless and print lifecycle events",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(*configPath, verve.WithBackend("soft"))
			if err != nil {
				return err
			}
			defer eng.Close()

			if _, _, err := eng.CreateSurface("headless", verve.SurfaceOptions{
				Canvas:   render.CanvasOptions{Width: 640, Height: 360},
				Priority: 10,
				Cost:     1,
			}); err != nil {
				return err
			}

			events, err := eng.Bus().Subscribe("run", 64)
			if err != nil {
				return err
			}
			go func() {
				for e := range events {
					fmt.Printf("%s  %s  %+v\n", e.At.Format("15:04:05.000"), e.Kind, e.Payload)
				}
			}()

			seedClock(eng)
			eng.TransitionToSection(section)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			err = eng.Run(ctx)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				err = nil
			}

			f := eng.Snapshot()
			fmt.Printf("frames: %d  section: %s  quality: %s  intensity: %.3f\n",
				f.Seq, f.Section, f.Quality, f.Current.Intensity)
			return err
		},
	}

	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "stop after this long (0 = until interrupted)")
	cmd.Flags().StringVarP(&section, "section", "s", "home", "initial section")
	return cmd
}
