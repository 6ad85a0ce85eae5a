package fundsight

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// AlignMode selects the shared calendar policy of Align.
type AlignMode int

const (
	// Inclusive merges onto the union of all dates. Cells may be absent where
	// a fund has no NAV on a date. This preserves the most information for
	// display and is the best available reconstruction of a shared market-day
	// calendar when funds report on non-uniform dates.
	Inclusive AlignMode = iota
	// Strict merges onto the intersection of all dates, so every cell is
	// present. Required for analytics where co-occurrence matters, such as
	// correlation.
	Strict
)

func (m AlignMode) String() string {
	switch m {
	case Inclusive:
		return "INCLUSIVE"
	case Strict:
		return "STRICT"
	default:
		return fmt.Sprintf("AlignMode(%d)", int(m))
	}
}

// MinOverlap is the minimum number of shared dates for a Strict alignment.
// Below it no pairwise statistic is defined.
const MinOverlap = 2

// MinMeaningfulOverlap is the recommended minimum number of shared dates for a
// correlation to be worth reading. Callers should warn below it.
const MinMeaningfulOverlap = 10

// AlignedTable is a date-by-fund matrix built from several NavSeries. It is
// owned by the caller for the duration of one comparison and never cached.
type AlignedTable struct {
	mode  AlignMode
	dates []Date   // shared calendar, ascending
	codes []string // column keys, sorted by scheme code
	names map[string]string
	cols  map[string][]float64
	here  map[string][]bool // cell presence, co-indexed with dates
}

// Align merges the series onto a shared calendar.
//
// The result is deterministic regardless of argument order: dates are sorted
// ascending and columns are keyed and ordered by scheme code. In Strict mode
// an intersection smaller than MinOverlap fails with ErrInsufficientOverlap.
func Align(mode AlignMode, series ...*NavSeries) (*AlignedTable, error) {
	byCode := make(map[string]*NavSeries, len(series))
	codes := make([]string, 0, len(series))
	for _, s := range series {
		if _, dup := byCode[s.Code]; !dup {
			codes = append(codes, s.Code)
		}
		byCode[s.Code] = s // last wins, as everywhere else
	}
	slices.Sort(codes)

	// Count each distinct date once per series that has it.
	seen := make(map[Date]int)
	for _, code := range codes {
		for on := range byCode[code].Points() {
			seen[on]++
		}
	}
	dates := make([]Date, 0, len(seen))
	for on, n := range seen {
		if mode == Strict && n != len(codes) {
			continue
		}
		dates = append(dates, on)
	}
	slices.SortFunc(dates, Date.Compare)

	if mode == Strict && len(codes) >= 2 && len(dates) < MinOverlap {
		return nil, fmt.Errorf("strict alignment of %d funds shares only %d dates, need %d: %w",
			len(codes), len(dates), MinOverlap, ErrInsufficientOverlap)
	}

	t := &AlignedTable{
		mode:  mode,
		dates: dates,
		codes: codes,
		names: make(map[string]string, len(codes)),
		cols:  make(map[string][]float64, len(codes)),
		here:  make(map[string][]bool, len(codes)),
	}
	for _, code := range codes {
		s := byCode[code]
		t.names[code] = s.Name
		col := make([]float64, len(dates))
		here := make([]bool, len(dates))
		for i, on := range dates {
			col[i], here[i] = s.Get(on)
		}
		t.cols[code], t.here[code] = col, here
	}
	return t, nil
}

// Mode returns the alignment policy the table was built with.
func (t *AlignedTable) Mode() AlignMode { return t.mode }

// Dates returns the shared calendar, ascending.
func (t *AlignedTable) Dates() []Date { return t.dates }

// Codes returns the column keys, sorted by scheme code.
func (t *AlignedTable) Codes() []string { return t.codes }

// Name returns the display name of a column.
func (t *AlignedTable) Name(code string) string { return t.names[code] }

// Cell returns the value of a column at calendar index i, and whether it is
// present. Absent cells only occur in Inclusive mode.
func (t *AlignedTable) Cell(code string, i int) (float64, bool) {
	col, ok := t.cols[code]
	if !ok || i < 0 || i >= len(col) {
		return 0, false
	}
	return col[i], t.here[code][i]
}

// Column returns the raw column values co-indexed with Dates. In Inclusive
// mode absent cells hold zero; check Cell for presence.
func (t *AlignedTable) Column(code string) []float64 { return t.cols[code] }

// returns converts a strict column into its daily return series, one entry per
// consecutive calendar pair.
func (t *AlignedTable) returns(code string) []float64 {
	col := t.cols[code]
	if len(col) < 2 {
		return nil
	}
	out := make([]float64, len(col)-1)
	for i := 1; i < len(col); i++ {
		out[i-1] = (col[i] - col[i-1]) / col[i-1]
	}
	return out
}

// Correlation computes the Pearson correlation between two columns of a Strict
// table.
//
// It is computed on daily returns, not on raw values: raw NAV levels of two
// growing funds are almost always near-1 correlated, so returns are the
// consistent choice for every pair of one table. The pair fails with
// ErrInsufficientOverlap when fewer than MinOverlap returns are shared.
func (t *AlignedTable) Correlation(a, b string) (float64, error) {
	if t.mode != Strict {
		return 0, fmt.Errorf("correlation requires a %v table, got %v", Strict, t.mode)
	}
	if _, ok := t.cols[a]; !ok {
		return 0, fmt.Errorf("unknown fund %q", a)
	}
	if _, ok := t.cols[b]; !ok {
		return 0, fmt.Errorf("unknown fund %q", b)
	}
	ra, rb := t.returns(a), t.returns(b)
	if len(ra) < MinOverlap {
		return 0, fmt.Errorf("funds %s and %s share only %d return points, need %d: %w",
			a, b, len(ra), MinOverlap, ErrInsufficientOverlap)
	}
	c := stat.Correlation(ra, rb, nil)
	if math.IsNaN(c) {
		// Zero variance on either side (a constant NAV over the window) leaves
		// the coefficient undefined.
		return 0, fmt.Errorf("funds %s and %s have no return variance over %d shared dates: %w",
			a, b, len(t.dates), ErrDegenerateSeries)
	}
	return c, nil
}

// CorrelationMatrix holds pairwise correlations, indexed like Codes.
type CorrelationMatrix struct {
	Codes []string
	Coef  [][]float64
}

// Correlations computes the full pairwise correlation matrix of a Strict table.
func (t *AlignedTable) Correlations() (*CorrelationMatrix, error) {
	m := &CorrelationMatrix{Codes: t.codes, Coef: make([][]float64, len(t.codes))}
	for i := range t.codes {
		m.Coef[i] = make([]float64, len(t.codes))
		m.Coef[i][i] = 1
	}
	for i, a := range t.codes {
		for j := i + 1; j < len(t.codes); j++ {
			c, err := t.Correlation(a, t.codes[j])
			if err != nil {
				return nil, err
			}
			m.Coef[i][j], m.Coef[j][i] = c, c
		}
	}
	return m, nil
}
