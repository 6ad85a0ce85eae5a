package fundsight

import (
	"fmt"
	"math"
)

// RawNav is one unvalidated entry as published by a data provider. Providers
// routinely publish placeholder rows ("N.A.", empty strings); the parser marks
// those with Valid=false and leaves the drop decision to Normalize.
type RawNav struct {
	Date  Date
	Value float64
	Valid bool
}

// Normalize converts raw provider entries into a clean NavSeries.
//
// Entries with missing, non-numeric, zero or negative values are dropped, not
// zero-filled. Remaining entries are sorted by date ascending; duplicate dates
// keep the last occurrence, because the provider's listed order is
// authoritative. Normalize is pure and idempotent: feeding its output back in
// yields an identical series.
func Normalize(code, name string, raw []RawNav) *NavSeries {
	s := NewNavSeries(code, name)
	for _, r := range raw {
		if !r.Valid || r.Value <= 0 || math.IsInf(r.Value, 0) || math.IsNaN(r.Value) {
			continue
		}
		s.Append(r.Date, r.Value)
	}
	return s
}

// NormalizedSeries is a NavSeries rescaled so that its first value is exactly
// 100. The rescaling base is fixed at creation.
type NormalizedSeries struct {
	NavSeries
	base float64 // first retained value of the source series
}

// Base returns the original value that maps to 100.
func (n *NormalizedSeries) Base() float64 { return n.base }

// RescaleTo100 rescales a series to the common comparison base of 100.
//
// It fails with ErrEmptySeries on a series with zero points and, defensively,
// with ErrZeroBaseValue if the first retained value is zero: Normalize makes
// that unreachable, but rescaling is a separable operation and must check.
func RescaleTo100(s *NavSeries) (*NormalizedSeries, error) {
	_, base, ok := s.First()
	if !ok {
		return nil, fmt.Errorf("rescale %q: %w", s.Code, ErrEmptySeries)
	}
	if base == 0 {
		return nil, fmt.Errorf("rescale %q: %w", s.Code, ErrZeroBaseValue)
	}
	out := &NormalizedSeries{NavSeries: NavSeries{Code: s.Code, Name: s.Name}, base: base}
	for on, v := range s.Points() {
		out.days, out.values = append(out.days, on), append(out.values, v/base*100)
	}
	return out, nil
}
