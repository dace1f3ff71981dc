package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/planwise/nestegg/internal/domain"
)

// ConsoleFormatter renders the comparison as an aligned year-by-year table:
// one row per projected year, one nest egg column per series.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(comparison *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "NEST EGG PROJECTION: %s\n", comparison.PlanName)
	fmt.Fprintf(&buf, "Years %d-%d, retirement %d\n\n", comparison.StartYear, comparison.EndYear, comparison.RetirementYear)

	all := comparison.AllSeries()
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(w, "Year\tAge\t")
	for _, series := range all {
		fmt.Fprintf(w, "%s\t", series.Name)
	}
	fmt.Fprintln(w)

	for i, yr := range comparison.Base.Years {
		marker := " "
		if yr.Year == comparison.RetirementYear {
			marker = "*"
		}
		fmt.Fprintf(w, "%d%s\t%d\t", yr.Year, marker, yr.AgePerson1)
		for _, series := range all {
			if i < len(series.Years) {
				fmt.Fprintf(w, "%s\t", FormatCurrency(series.Years[i].NestEgg))
			} else {
				fmt.Fprint(w, "-\t")
			}
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	fmt.Fprintln(&buf)
	for _, series := range all {
		line := fmt.Sprintf("%s: final nest egg %s", series.Name, FormatCurrency(series.FinalNestEgg()))
		if year, depleted := series.DepletionYear(); depleted {
			line += fmt.Sprintf(" (depleted in %d)", year)
		}
		fmt.Fprintln(&buf, line)
	}
	fmt.Fprintln(&buf, "\n* retirement year")
	return buf.Bytes(), nil
}
