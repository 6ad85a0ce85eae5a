// Package renderer turns pipeline results into markdown reports and PNG
// charts. It is a pure display layer: it never computes, it only formats what
// the core produced, and absent values stay absent ("-"), never zero.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/fundsight/fundsight"
	md "github.com/nao1215/markdown"
)

// Summary is one row of the comparison header: latest NAV and daily change.
type Summary struct {
	Code      string
	Name      string
	Latest    fundsight.Money
	LatestOn  fundsight.Date
	DayChange *fundsight.Percent // nil when the fund has fewer than 2 points
}

// SummaryMarkdown renders the latest NAV and 1-day change table.
func SummaryMarkdown(sums []Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Latest NAV")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Code", "Fund", "Date", "Latest NAV", "1-day"},
		Rows:   [][]string{},
	}
	for _, s := range sums {
		change := "-"
		if s.DayChange != nil {
			change = s.DayChange.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			s.Code, s.Name, s.LatestOn.String(), s.Latest.String(), change,
		})
	}
	doc.Table(table)
	return doc.String()
}

// ComparisonMarkdown renders the tail of a normalized comparison table, most
// recent dates last. rows limits the output; 0 renders everything.
func ComparisonMarkdown(t *fundsight.AlignedTable, rows int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Normalized NAV comparison (base = 100)")

	header := []string{"Date"}
	align := []md.TableAlignment{md.AlignLeft}
	for _, code := range t.Codes() {
		header = append(header, code)
		align = append(align, md.AlignRight)
	}
	table := md.TableSet{Alignment: align, Header: header, Rows: [][]string{}}

	dates := t.Dates()
	start := 0
	if rows > 0 && len(dates) > rows {
		start = len(dates) - rows
	}
	for i := start; i < len(dates); i++ {
		row := []string{dates[i].String()}
		for _, code := range t.Codes() {
			if v, ok := t.Cell(code, i); ok {
				row = append(row, fmt.Sprintf("%.2f", v))
			} else {
				row = append(row, "-")
			}
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}

// FundReturns carries the computed windows of one fund. Windows missing from
// Returns render as "-".
type FundReturns struct {
	Code    string
	Name    string
	Returns []fundsight.PeriodReturn
}

// ReturnsMarkdown renders the trailing-return grid, one row per fund and one
// column per supported lookback.
func ReturnsMarkdown(funds []FundReturns) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Trailing returns")

	header := []string{"Code", "Fund"}
	align := []md.TableAlignment{md.AlignLeft, md.AlignLeft}
	for _, l := range fundsight.Lookbacks {
		header = append(header, string(l))
		align = append(align, md.AlignRight)
	}
	table := md.TableSet{Alignment: align, Header: header, Rows: [][]string{}}

	for _, f := range funds {
		byLabel := make(map[string]fundsight.Percent, len(f.Returns))
		for _, r := range f.Returns {
			byLabel[r.Label] = r.Return
		}
		row := []string{f.Code, f.Name}
		for _, l := range fundsight.Lookbacks {
			if r, ok := byLabel[string(l)]; ok {
				row = append(row, r.SignedString())
			} else {
				row = append(row, "-")
			}
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}

// CorrelationMarkdown renders the pairwise correlation matrix of a strict
// alignment. overlap is the number of shared dates, reported as a caveat when
// below the meaningful threshold.
func CorrelationMarkdown(m *fundsight.CorrelationMatrix, overlap int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Correlation of daily returns")

	header := []string{""}
	align := []md.TableAlignment{md.AlignLeft}
	for _, code := range m.Codes {
		header = append(header, code)
		align = append(align, md.AlignRight)
	}
	table := md.TableSet{Alignment: align, Header: header, Rows: [][]string{}}
	for i, code := range m.Codes {
		row := []string{code}
		for j := range m.Codes {
			row = append(row, fmt.Sprintf("%.3f", m.Coef[i][j]))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	if overlap < fundsight.MinMeaningfulOverlap {
		doc.LF()
		doc.PlainText(fmt.Sprintf("Only %d shared dates (fewer than %d): read these figures with caution.",
			overlap, fundsight.MinMeaningfulOverlap))
	}
	return doc.String()
}

// ForecastMarkdown renders the last 'tail' rows of a forecast. 0 renders all.
func ForecastMarkdown(name string, res *fundsight.ForecastResult, tail int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Forecast for %s", name))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Forecast", "Lower", "Upper"},
		Rows:   [][]string{},
	}
	start := 0
	if tail > 0 && len(res.Dates) > tail {
		start = len(res.Dates) - tail
	}
	for i := start; i < len(res.Dates); i++ {
		table.Rows = append(table.Rows, []string{
			res.Dates[i].String(),
			fmt.Sprintf("%.4f", res.Point[i]),
			fmt.Sprintf("%.4f", res.Lower[i]),
			fmt.Sprintf("%.4f", res.Upper[i]),
		})
	}
	doc.Table(table)
	return doc.String()
}
