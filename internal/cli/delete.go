package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vento/internal/service"
)

func addDelete(topLevel *cobra.Command, opts *options) {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an event or a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDeleteEvent(cmd, opts)
	addDeleteCategory(cmd, opts)

	topLevel.AddCommand(cmd)
}

func addDeleteEvent(parent *cobra.Command, opts *options) {
	cmd := &cobra.Command{
		Use:   "event <id>",
		Short: "Delete an event permanently",
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

			if _, err := events.Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted event #%d\n", id)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addDeleteCategory(parent *cobra.Command, opts *options) {
	cmd := &cobra.Command{
		Use:   "category <id>",
		Short: "Delete a category and all its events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			_, categories, closer, err := opts.open()
			if err != nil {
				return err
			}
			defer closer()

			_, snap, err := categories.Delete(cmd.Context(), id, service.State{})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted category #%d, %d categories and %d events remain\n",
				id, len(snap.Categories), len(snap.Events))
			return nil
		},
	}
	parent.AddCommand(cmd)
}
