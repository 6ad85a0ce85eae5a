package renderer

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fundsight/fundsight"
)

// ForecastCSV writes a forecast as CSV with a header row, one row per
// forecast date.
func ForecastCSV(w io.Writer, res *fundsight.ForecastResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "forecast", "lower", "upper"}); err != nil {
		return err
	}
	for i := range res.Dates {
		row := []string{
			res.Dates[i].String(),
			strconv.FormatFloat(res.Point[i], 'f', 4, 64),
			strconv.FormatFloat(res.Lower[i], 'f', 4, 64),
			strconv.FormatFloat(res.Upper[i], 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
