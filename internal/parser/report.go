package parser

import (
	"fmt"
	"io"
	"text/tabwriter"

	"readingscan/internal/domain"
)

// Markdown renders the session summary as markdown tables.
func (p *LineParser) Markdown(info domain.SessionInfo, w io.Writer) {
	fmt.Fprintf(w, "#### Session %s\n\n", info.ID)

	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|:------:|:-----:|")
	fmt.Fprintf(w, "| Total lines | %d |\n", info.TotalLines)
	fmt.Fprintf(w, "| Parsed lines | %d |\n", info.ParsedLines)
	fmt.Fprintf(w, "| Failed lines | %d |\n", info.FailedLines)
	fmt.Fprintf(w, "| Min magnitude | %g |\n", info.MinMagnitude)
	fmt.Fprintf(w, "| Avg magnitude | %g |\n", info.AvgMagnitude)
	fmt.Fprintf(w, "| Max magnitude | %g |\n", info.MaxMagnitude)

	if len(info.FrequentUnits) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "#### Frequent units")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Unit | Quantity |")
	fmt.Fprintln(w, "|:----:|:--------:|")

	for _, unit := range info.FrequentUnits {
		fmt.Fprintf(w, "| %s | %d |\n", unit.Unit, unit.Quantity)
	}
}

// Text renders the session summary as aligned plain text.
func (p *LineParser) Text(info domain.SessionInfo, w io.Writer) {
	fmt.Fprintf(w, "session %s\n", info.ID)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "total lines:\t%d\n", info.TotalLines)
	fmt.Fprintf(tw, "parsed lines:\t%d\n", info.ParsedLines)
	fmt.Fprintf(tw, "failed lines:\t%d\n", info.FailedLines)
	fmt.Fprintf(tw, "min magnitude:\t%g\n", info.MinMagnitude)
	fmt.Fprintf(tw, "avg magnitude:\t%g\n", info.AvgMagnitude)
	fmt.Fprintf(tw, "max magnitude:\t%g\n", info.MaxMagnitude)

	for _, unit := range info.FrequentUnits {
		fmt.Fprintf(tw, "unit %s:\t%d\n", unit.Unit, unit.Quantity)
	}

	tw.Flush()
}
