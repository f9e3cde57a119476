package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vento/internal/dateutil"
	"vento/internal/view"
)

func addDashboard(topLevel *cobra.Command, opts *options) {
	var window string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the next event and the current week or month",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			snap, err := events.Load(cmd.Context())
			if err != nil {
				return err
			}

			newPrinter(cmd.OutOrStdout()).dashboard(snap, w, dateutil.Today())
			return nil
		},
	}
	cmd.Flags().StringVar(&window, "window", string(view.WindowMonth), "interval to show: week or month")

	topLevel.AddCommand(cmd)
}
