package fundsight

import (
	"iter"
	"slices"
	"sort"
)

// NavPoint is a single published NAV: a date and a strictly positive value.
type NavPoint struct {
	Date  Date
	Value float64
}

// NavSeries stores the chronological NAV history of one fund.
// It ensures that dates are unique and the series is always sorted.
type NavSeries struct {
	Code string // scheme code, the fund identifier
	Name string // display name

	days   []Date
	values []float64
}

// NewNavSeries returns an empty series for the given fund.
func NewNavSeries(code, name string) *NavSeries {
	return &NavSeries{Code: code, Name: name}
}

// Len returns the number of points in the series.
func (s *NavSeries) Len() int { return len(s.days) }

// Latest returns the latest date and value in the series.
// If the series is empty, it returns zero values and false.
func (s *NavSeries) Latest() (day Date, value float64, ok bool) {
	last := len(s.days) - 1
	if last < 0 {
		return Date{}, 0, false
	}
	return s.days[last], s.values[last], true
}

// First returns the earliest date and value in the series.
func (s *NavSeries) First() (day Date, value float64, ok bool) {
	if len(s.days) == 0 {
		return Date{}, 0, false
	}
	return s.days[0], s.values[0], true
}

// chronological is a private implementation to make this series chronologically sorted.
type chronological struct{ *NavSeries }

func (s chronological) Len() int           { return len(s.days) }
func (s chronological) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }

func (s chronological) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// sort sorts the series in chronological order.
func (s *NavSeries) sort() { sort.Sort(chronological{s}) }

// Append adds a point to the series.
//
// An existing value at that date is overwritten: the provider lists entries in
// authoritative order, so the last occurrence wins.
func (s *NavSeries) Append(on Date, value float64) *NavSeries {
	if i := slices.Index(s.days, on); i >= 0 {
		s.values[i] = value
		return s
	}
	s.days, s.values = append(s.days, on), append(s.values, value)
	s.sort()
	return s
}

// Points returns an iterator over all date/value pairs in chronological order.
func (s *NavSeries) Points() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Dates returns a copy of the series' dates in chronological order.
func (s *NavSeries) Dates() []Date { return slices.Clone(s.days) }

// Get returns the value at 'day' and true, or zero and false.
func (s *NavSeries) Get(day Date) (float64, bool) {
	i := slices.Index(s.days, day)
	if i >= 0 {
		return s.values[i], true
	}
	return 0, false
}

// ValueAsOf returns the value on a given day, or the most recent value before
// it. Funds publish no NAV on non-business days, so exact-date lookups would
// spuriously fail; this is the endpoint policy of every return computation.
// It returns false if no point exists on or before the given day.
func (s *NavSeries) ValueAsOf(day Date) (float64, bool) {
	// The days slice is sorted, so we can use binary search.
	i, found := slices.BinarySearchFunc(s.days, day, Date.Compare)
	if found {
		return s.values[i], true
	}

	// Not found. `i` is the index where `day` would be inserted.
	// The value we want is at `i-1`, the last entry before the target date.
	if i == 0 {
		return 0, false // No date on or before the given day.
	}
	return s.values[i-1], true
}

// indexAsOf returns the index of the latest point on or before day, or -1.
func (s *NavSeries) indexAsOf(day Date) int {
	i, found := slices.BinarySearchFunc(s.days, day, Date.Compare)
	if found {
		return i
	}
	return i - 1
}

// Between returns a new series restricted to the points within r, inclusive.
// The receiver is not modified.
func (s *NavSeries) Between(r Range) *NavSeries {
	out := NewNavSeries(s.Code, s.Name)
	for on, v := range s.Points() {
		if r.Contains(on) {
			out.days, out.values = append(out.days, on), append(out.values, v)
		}
	}
	return out
}
