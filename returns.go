package fundsight

import "fmt"

// Lookback names a trailing window ending "now".
type Lookback string

const (
	Lookback1D  Lookback = "1D"
	Lookback1M  Lookback = "1M"
	Lookback3M  Lookback = "3M"
	Lookback6M  Lookback = "6M"
	LookbackYTD Lookback = "YTD"
	Lookback1Y  Lookback = "1Y"
)

// Lookbacks lists the supported windows in display order.
var Lookbacks = []Lookback{Lookback1D, Lookback1M, Lookback3M, Lookback6M, LookbackYTD, Lookback1Y}

// start maps the lookback to its calendar start date relative to asOf.
func (l Lookback) start(asOf Date) (Date, error) {
	switch l {
	case Lookback1M:
		return asOf.Add(-30), nil
	case Lookback3M:
		return asOf.Add(-91), nil
	case Lookback6M:
		return asOf.Add(-182), nil
	case LookbackYTD:
		return NewDate(asOf.Year(), 1, 1), nil
	case Lookback1Y:
		return asOf.Add(-365), nil
	default:
		return Date{}, fmt.Errorf("unknown lookback %q", string(l))
	}
}

// PeriodReturn is one computed return for tabular display.
type PeriodReturn struct {
	Code   string
	Label  string
	Return Percent
}

// PeriodReturnBetween computes the percentage return of a series between two
// dates.
//
// The start value is the last available NAV on or before 'from', never an
// interpolation and never the series' first point; the end value is the last
// NAV on or before 'to'. Either endpoint unresolvable fails with
// ErrMissingEndpoint.
func PeriodReturnBetween(s *NavSeries, from, to Date) (Percent, error) {
	start, ok := s.ValueAsOf(from)
	if !ok {
		return 0, fmt.Errorf("%s has no NAV on or before %s: %w", s.Code, from, ErrMissingEndpoint)
	}
	end, ok := s.ValueAsOf(to)
	if !ok {
		return 0, fmt.Errorf("%s has no NAV on or before %s: %w", s.Code, to, ErrMissingEndpoint)
	}
	return Percent((end - start) / start * 100), nil
}

// TrailingReturn computes the return over a named window ending today.
func TrailingReturn(s *NavSeries, l Lookback) (Percent, error) {
	return TrailingReturnAsOf(s, l, Today())
}

// TrailingReturnAsOf computes the return over a named window ending asOf.
//
// The 1D window uses the two most recent points at or before asOf rather than
// a calendar offset, matching how daily change is quoted; fewer than two
// points fails with ErrMissingEndpoint.
func TrailingReturnAsOf(s *NavSeries, l Lookback, asOf Date) (Percent, error) {
	if l == Lookback1D {
		i := s.indexAsOf(asOf)
		if i < 1 {
			return 0, fmt.Errorf("%s has fewer than 2 NAVs at %s: %w", s.Code, asOf, ErrMissingEndpoint)
		}
		start, end := s.values[i-1], s.values[i]
		return Percent((end - start) / start * 100), nil
	}
	from, err := l.start(asOf)
	if err != nil {
		return 0, err
	}
	return PeriodReturnBetween(s, from, asOf)
}

// TrailingReturns computes every supported window for one fund. Windows that
// fail (typically ErrMissingEndpoint on young funds) are absent from the
// result, never zero-filled; sibling windows are unaffected.
func TrailingReturns(s *NavSeries, asOf Date) []PeriodReturn {
	out := make([]PeriodReturn, 0, len(Lookbacks))
	for _, l := range Lookbacks {
		r, err := TrailingReturnAsOf(s, l, asOf)
		if err != nil {
			continue
		}
		out = append(out, PeriodReturn{Code: s.Code, Label: string(l), Return: r})
	}
	return out
}
