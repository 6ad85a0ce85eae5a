package renderer

import (
	"errors"

	"github.com/fundsight/fundsight"
	charts "github.com/vicanso/go-charts/v2"
)

// chart dimensions shared by both renderings.
const (
	chartWidth  = 1000
	chartHeight = 500
)

// yRange computes a padded y-axis range over the present values.
func yRange(values [][]float64) (yMin, yMax float64) {
	first := true
	null := charts.GetNullValue()
	for _, col := range values {
		for _, v := range col {
			if v == null {
				continue
			}
			if first {
				yMin, yMax = v, v
				first = false
				continue
			}
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}
	pad := (yMax - yMin) * 0.05
	if pad == 0 {
		pad = yMax * 0.05
	}
	return yMin - pad, yMax + pad
}

// ComparisonChartPNG renders every column of an aligned table of normalized
// series as one line chart. Absent cells break the line instead of dropping
// to zero.
func ComparisonChartPNG(t *fundsight.AlignedTable) ([]byte, error) {
	dates := t.Dates()
	if len(dates) == 0 {
		return nil, errors.New("empty table, nothing to chart")
	}

	xLabels := make([]string, len(dates))
	for i, d := range dates {
		xLabels[i] = d.Format("Jan 02 '06")
	}

	names := make([]string, 0, len(t.Codes()))
	values := make([][]float64, 0, len(t.Codes()))
	for _, code := range t.Codes() {
		names = append(names, t.Name(code))
		col := make([]float64, len(dates))
		for i := range dates {
			v, ok := t.Cell(code, i)
			if !ok {
				v = charts.GetNullValue()
			}
			col[i] = v
		}
		values = append(values, col)
	}
	yMin, yMax := yRange(values)

	painter, err := charts.LineRender(values,
		charts.TitleTextOptionFunc("Normalized NAV (base = 100)"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: xLabels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// ForecastChartPNG renders the tail of the observed history followed by the
// forecast with its uncertainty band. histDays limits the history shown; 0
// shows it all.
func ForecastChartPNG(history *fundsight.NavSeries, res *fundsight.ForecastResult, histDays int) ([]byte, error) {
	if history.Len() == 0 {
		return nil, errors.New("empty history, nothing to chart")
	}

	var histDates []fundsight.Date
	var histValues []float64
	for on, v := range history.Points() {
		histDates = append(histDates, on)
		histValues = append(histValues, v)
	}
	if histDays > 0 && len(histDates) > histDays {
		histDates = histDates[len(histDates)-histDays:]
		histValues = histValues[len(histValues)-histDays:]
	}

	null := charts.GetNullValue()
	n := len(histDates) + len(res.Dates)
	xLabels := make([]string, 0, n)
	observed := make([]float64, 0, n)
	point := make([]float64, 0, n)
	lower := make([]float64, 0, n)
	upper := make([]float64, 0, n)

	for i, d := range histDates {
		xLabels = append(xLabels, d.Format("Jan 02 '06"))
		observed = append(observed, histValues[i])
		point, lower, upper = append(point, null), append(lower, null), append(upper, null)
	}
	for i, d := range res.Dates {
		xLabels = append(xLabels, d.Format("Jan 02 '06"))
		observed = append(observed, null)
		point = append(point, res.Point[i])
		lower = append(lower, res.Lower[i])
		upper = append(upper, res.Upper[i])
	}

	values := [][]float64{observed, point, lower, upper}
	yMin, yMax := yRange(values)

	painter, err := charts.LineRender(values,
		charts.TitleTextOptionFunc("NAV forecast"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: xLabels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"observed", "forecast", "lower", "upper"}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
