// Package render formats reports for the terminal. All formatting and locale
// concerns live here; the engine hands over structured data and nothing else.
package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/juju/ansiterm"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/outlay-dev/outlay/internal/model"
)

// Printer renders reports, localizing numbers and coloring when asked.
type Printer struct {
	msg   *message.Printer
	color bool
}

// New creates a Printer. Pass color=true only when writing to a terminal.
func New(color bool) *Printer {
	return &Printer{
		msg:   message.NewPrinter(language.English),
		color: color,
	}
}

// Report writes a full budget report as aligned tables.
func (p *Printer) Report(w io.Writer, rep model.Report) {
	fmt.Fprintf(w, "Report as of %s (period %s)\n\n", rep.AsOf.Format("2006-01-02"), rep.CurrentPeriod)

	if len(rep.CurrentSummaries) == 0 {
		fmt.Fprintf(w, "No spending recorded for %s yet.\n", rep.CurrentPeriod)
	} else {
		tw := ansiterm.NewTabWriter(w, 0, 1, 2, ' ', 0)
		fmt.Fprint(tw, "CATEGORY\tCOUNT\tTOTAL\n")
		for _, s := range rep.CurrentSummaries {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", s.Category, s.Count, p.Amount(s.Total))
		}
		fmt.Fprintf(tw, "total\t\t%s\n", p.Amount(rep.CurrentTotal))
		tw.Flush()
	}

	fmt.Fprintln(w)
	p.remaining(w, fmt.Sprintf("Remaining this period (%s)", rep.CurrentPeriod), rep.RemainingThisPeriod)

	fmt.Fprintf(w, "\nForecast for %s: %s (%s)\n", rep.Forecast.Target, p.Amount(rep.Forecast.Total), rep.Forecast.Method)
	if len(rep.Forecast.ByCategory) > 0 {
		categories := make([]string, 0, len(rep.Forecast.ByCategory))
		for c := range rep.Forecast.ByCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		tw := ansiterm.NewTabWriter(w, 0, 1, 2, ' ', 0)
		for _, c := range categories {
			fmt.Fprintf(tw, "  %s\t%s\n", c, p.Amount(rep.Forecast.ByCategory[c]))
		}
		tw.Flush()
	}

	fmt.Fprintln(w)
	p.remaining(w, fmt.Sprintf("Remaining next period (%s)", rep.Forecast.Target), rep.RemainingNextPeriod)
}

// Amount formats a money amount with locale-aware digit grouping.
func (p *Printer) Amount(d decimal.Decimal) string {
	return p.msg.Sprintf("%.2f", d.InexactFloat64())
}

// remaining prints one budget-remainder line, in red when over budget.
func (p *Printer) remaining(w io.Writer, label string, amount decimal.Decimal) {
	aw := ansiterm.NewWriter(w)
	aw.SetColorCapable(p.color)

	ctx := ansiterm.Foreground(ansiterm.Green)
	if amount.IsNegative() {
		ctx = ansiterm.Foreground(ansiterm.BrightRed)
	}
	ctx.Fprintf(aw, "%s: %s\n", label, p.Amount(amount))
}
