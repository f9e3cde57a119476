package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vento/internal/dateutil"
	"vento/internal/service"
)

func addAdd(topLevel *cobra.Command, opts *options) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event or a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddEvent(cmd, opts)
	addAddCategory(cmd, opts)

	topLevel.AddCommand(cmd)
}

func addAddEvent(parent *cobra.Command, opts *options) {
	var categoryID uint
	var date, description string
	var deactivated bool

	cmd := &cobra.Command{
		Use:   "event <title>",
		Short: "Create an event",
		Example: `
vento add event "Team meeting" --category 1 --date 2025-07-01
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := dateutil.Today()
			if date != "" {
				parsed, err := dateutil.Parse(date)
				if err != nil {
					return err
				}
				day = parsed
			}

			events, _, closer, err := opts.open()
			if err != nil {
				return err
			}
			defer closer()

			evt, _, err := events.Create(cmd.Context(), service.EventInput{
				CategoryID:  categoryID,
				Title:       strings.Join(args, " "),
				Description: description,
				Date:        day,
				Deactivated: deactivated,
			})
			if err != nil {
				return err
			}

			newPrinter(cmd.OutOrStdout()).eventLine("created", evt)
			return nil
		},
	}
	cmd.Flags().UintVar(&categoryID, "category", 0, "category id the event belongs to")
	cmd.Flags().StringVar(&date, "date", "", "event date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&description, "description", "", "free text notes")
	cmd.Flags().BoolVar(&deactivated, "deactivated", false, "create the event hidden from aggregates")
	_ = cmd.MarkFlagRequired("category")

	parent.AddCommand(cmd)
}

func addAddCategory(parent *cobra.Command, opts *options) {
	var colorToken string

	cmd := &cobra.Command{
		Use:   "category <name>",
		Short: "Create a category",
		Example: `
vento add category Work --color "#6366f1"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, categories, closer, err := opts.open()
			if err != nil {
				return err
			}
			defer closer()

			cat, _, err := categories.Create(cmd.Context(), strings.Join(args, " "), colorToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created category #%d %q (%s)\n", cat.ID, cat.Name, cat.Color)
			return nil
		},
	}
	cmd.Flags().StringVar(&colorToken, "color", "", "color token, for example #6366f1")

	parent.AddCommand(cmd)
}
