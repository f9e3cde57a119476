package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vento/internal/dateutil"
	"vento/internal/model"
	"vento/internal/service"
)

func addEdit(topLevel *cobra.Command, opts *options) {
	var title, description, date string
	var categoryID uint
	var deactivated bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an event's fields",
		Long: `Edit an event. Only the flags you pass change; the rest keep their
stored values. Unless the event is completed, its status is recomputed from
the new date, so moving an overdue event to a future day puts it back to
upcoming.`,
		Args: cobra.ExactArgs(1),
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

			snap, err := events.Load(cmd.Context())
			if err != nil {
				return err
			}
			var current *model.Event
			for i := range snap.Events {
				if snap.Events[i].ID == id {
					current = &snap.Events[i]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("event %d not found", id)
			}

			in := service.EventInput{
				CategoryID:  current.CategoryID,
				Title:       current.Title,
				Description: current.Description,
				Date:        current.EventDate,
				Deactivated: current.Deactivated(),
				Status:      current.Status,
			}
			if cmd.Flags().Changed("title") {
				in.Title = title
			}
			if cmd.Flags().Changed("description") {
				in.Description = description
			}
			if cmd.Flags().Changed("category") {
				in.CategoryID = categoryID
			}
			if cmd.Flags().Changed("date") {
				parsed, err := dateutil.Parse(date)
				if err != nil {
					return err
				}
				in.Date = parsed
			}
			if cmd.Flags().Changed("deactivated") {
				in.Deactivated = deactivated
			}

			evt, _, err := events.Update(cmd.Context(), id, in)
			if err != nil {
				return err
			}

			newPrinter(cmd.OutOrStdout()).eventLine("updated", evt)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&date, "date", "", "new date as YYYY-MM-DD")
	cmd.Flags().UintVar(&categoryID, "category", 0, "new category id")
	cmd.Flags().BoolVar(&deactivated, "deactivated", false, "toggle the deactivation override")

	topLevel.AddCommand(cmd)
}

func parseID(raw string) (uint, error) {
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id must be a number, got %q", raw)
	}
	return uint(value), nil
}
