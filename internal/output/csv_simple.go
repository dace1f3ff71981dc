package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/planwise/nestegg/internal/domain"
)

// CSVExporter implements the yearly CSV output: one row per projected year,
// with a nest egg and net worth column pair per series. All series share the
// plan's window, so every row is fully populated.
type CSVExporter struct{}

func (c CSVExporter) Name() string { return "csv" }

func (c CSVExporter) Format(comparison *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	all := comparison.AllSeries()
	header := []string{"Year", "AgePerson1", "AgePerson2"}
	for _, series := range all {
		header = append(header, series.Name+"NestEgg", series.Name+"NetWorth")
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, yr := range comparison.Base.Years {
		row := []string{
			strconv.Itoa(yr.Year),
			strconv.Itoa(yr.AgePerson1),
			strconv.Itoa(yr.AgePerson2),
		}
		for _, series := range all {
			if i < len(series.Years) {
				row = append(row, series.Years[i].NestEgg.StringFixed(2), series.Years[i].NetWorth.StringFixed(2))
			} else {
				row = append(row, "", "")
			}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
