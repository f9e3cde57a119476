package cli

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"vento/internal/dateutil"
	"vento/internal/view"
)

// addWatch registers the periodic dashboard render. Each tick is an
// ordinary load and render; nothing mutates between ticks, and the rollover
// check still runs only as part of the load.
func addWatch(topLevel *cobra.Command, opts *options) {
	var every time.Duration
	var window string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the dashboard on an interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			if every <= 0 {
				return fmt.Errorf("interval must be positive")
			}
			w := view.Window(window)
			switch w {
			case view.WindowWeek, view.WindowMonth:
			default:
				return fmt.Errorf("unknown window %q, expected week or month", window)
			}

			events, _, closer, err := opts.open()
			if err != nil {
				return err
			}
			defer closer()

			render := func() {
				snap, err := events.Load(cmd.Context())
				if err != nil {
					log.Printf("load: %v", err)
					return
				}
				newPrinter(cmd.OutOrStdout()).dashboard(snap, w, dateutil.Today())
			}

			scheduler := cron.New(cron.WithSeconds())
			spec := fmt.Sprintf("@every %ds", int(every.Seconds()))
			if _, err := scheduler.AddFunc(spec, render); err != nil {
				return fmt.Errorf("schedule render: %w", err)
			}

			render()
			scheduler.Start()
			log.Printf("[info] watching every %s", every)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop

			ctx := scheduler.Stop()
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().DurationVar(&every, "every", time.Hour, "how often to re-render")
	cmd.Flags().StringVar(&window, "window", string(view.WindowMonth), "interval to show: week or month")

	topLevel.AddCommand(cmd)
}
