package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"vento/internal/dateutil"
	"vento/internal/model"
	"vento/internal/service"
	"vento/internal/view"
)

type printer struct {
	out io.Writer
}

func newPrinter(out io.Writer) *printer {
	return &printer{out: out}
}

func (p *printer) title(text string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(p.out, text)
}

func (p *printer) faint(text string) {
	c := color.New(color.Faint)
	_, _ = c.Fprintln(p.out, text)
}

func (p *printer) newline() {
	fmt.Fprintln(p.out, "")
}

// section prints a heading followed by one table per category group.
func (p *printer) section(heading string, groups []view.Group, today dateutil.Day) {
	p.title(heading)
	if len(groups) == 0 {
		p.faint("no events to show")
		p.newline()
		return
	}
	for _, g := range groups {
		p.group(g, today)
	}
}

func (p *printer) group(g view.Group, today dateutil.Day) {
	swatch := color.New(color.Bold)
	_, _ = swatch.Fprintf(p.out, "%s (%s)\n", g.Category.Name, g.Category.Color)

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("ID", "DATE", "STATUS", "TITLE", "DESCRIPTION")
	for _, e := range g.Events {
		table.AddRow(e.ID, p.date(e, today), string(e.Status), e.Title, e.Description)
	}
	fmt.Fprintln(p.out, table)
	p.newline()
}

func (p *printer) date(e model.Event, today dateutil.Day) string {
	return proximityColor(e, today).Sprint(e.EventDate.String())
}

// proximityColor mirrors the card accents of the UI: overdue red, due
// within three days yellow, otherwise green. Deactivated rows render faint.
func proximityColor(e model.Event, today dateutil.Day) *color.Color {
	if e.Status == model.StatusDeactivated {
		return color.New(color.Faint)
	}
	switch {
	case e.EventDate.Before(today):
		return color.New(color.FgRed)
	case !e.EventDate.After(today.AddDays(3)):
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// dashboard prints the next-up card and the current-window listing.
func (p *printer) dashboard(snap service.Snapshot, w view.Window, today dateutil.Day) {
	p.title("Next up")
	if next, ok := view.NextUpcoming(snap.Events, today); ok {
		fmt.Fprintf(p.out, "#%d %s on %s\n", next.ID, next.Title, p.date(next, today))
	} else {
		p.faint("no upcoming events")
	}
	p.newline()

	p.title(fmt.Sprintf("This %s", w))
	inWindow := view.InWindow(snap.Events, w, today)
	if len(inWindow) == 0 {
		p.faint("nothing in this window")
		return
	}
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("ID", "DATE", "TITLE")
	for _, e := range inWindow {
		table.AddRow(e.ID, p.date(e, today), e.Title)
	}
	fmt.Fprintln(p.out, table)
}

func (p *printer) eventLine(verb string, e model.Event) {
	fmt.Fprintf(p.out, "%s event #%d %q (%s, %s)\n", verb, e.ID, e.Title, e.EventDate, e.Status)
}
