package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vento/internal/service"
)

func addPostpone(topLevel *cobra.Command, opts *options) {
	var by string

	cmd := &cobra.Command{
		Use:   "postpone <id>",
		Short: "Push an event one month or one year forward",
		Example: `
vento postpone 4 --by month
vento postpone 4 --by year
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := service.PostponeUnit(by)
			switch unit {
			case service.PostponeMonth, service.PostponeYear:
			default:
				return fmt.Errorf("unknown unit %q, expected month or year", by)
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			events, _, closer, err := opts.open()
			if err != nil {
				return err
			}
			defer closer()

			evt, _, err := events.Postpone(cmd.Context(), id, unit)
			if err != nil {
				return err
			}

			newPrinter(cmd.OutOrStdout()).eventLine("postponed", evt)
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", string(service.PostponeMonth), "how far to move: month or year")

	topLevel.AddCommand(cmd)
}
