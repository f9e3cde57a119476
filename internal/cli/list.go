package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vento/internal/dateutil"
	"vento/internal/view"
)

func addList(topLevel *cobra.Command, opts *options) {
	var tab string
	var category uint

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events by tab, grouped by category",
		Example: `
vento list
vento list --tab progress
vento list --tab done --category 2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := view.Tab(tab)
			switch t {
			case view.TabUpcoming, view.TabInProgress, view.TabCompleted:
			default:
				return fmt.Errorf("unknown tab %q, expected upcoming, progress or done", tab)
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

			today := dateutil.Today()
			p := newPrinter(cmd.OutOrStdout())

			// The progress tab keeps its display split: still-upcoming
			// pending first, past-due pending after.
			if t == view.TabInProgress {
				split := view.InProgressTab(snap.Events, today)
				p.section("In progress, still upcoming",
					view.GroupByCategory(view.FilterByCategory(split.Upcoming, category), snap.Categories), today)
				p.section("In progress, past due",
					view.GroupByCategory(view.FilterByCategory(split.Past, category), snap.Categories), today)
				return nil
			}

			groups := view.TabView(snap.Events, snap.Categories, t, category, today)
			p.section(tabHeading(t), groups, today)
			return nil
		},
	}
	cmd.Flags().StringVar(&tab, "tab", string(view.TabUpcoming), "tab to show: upcoming, progress or done")
	cmd.Flags().UintVar(&category, "category", 0, "only show the given category id")

	topLevel.AddCommand(cmd)
}

func tabHeading(t view.Tab) string {
	switch t {
	case view.TabCompleted:
		return "Completed"
	default:
		return "Upcoming"
	}
}
