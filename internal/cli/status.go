package cli

import (
	"github.com/spf13/cobra"

	"vento/internal/model"
)

// addStatusCommands registers the manual status transitions. Restore is the
// "return to upcoming" action: it self-corrects through the resolver, so a
// past-dated event lands on pending rather than normal.
func addStatusCommands(topLevel *cobra.Command, opts *options) {
	transitions := []struct {
		use    string
		short  string
		target model.Status
	}{
		{"complete <id>", "Mark an event as completed", model.StatusCompleted},
		{"deactivate <id>", "Hide an event from aggregates", model.StatusDeactivated},
		{"restore <id>", "Return an event to upcoming", model.StatusNormal},
		{"reopen <id>", "Mark an event as in progress", model.StatusPending},
	}

	for _, tr := range transitions {
		target := tr.target
		cmd := &cobra.Command{
			Use:   tr.use,
			Short: tr.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}

				events, _, closer, err := opts.open()
				if err != nil {
					return err
				}
				defer closer()

				evt, _, err := events.SetStatus(cmd.Context(), id, target)
				if err != nil {
					return err
				}

				newPrinter(cmd.OutOrStdout()).eventLine("updated", evt)
				return nil
			},
		}
		topLevel.AddCommand(cmd)
	}
}
