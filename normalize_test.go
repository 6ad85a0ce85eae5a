package fundsight

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestNormalizeDropsAndSorts(t *testing.T) {
	raw := []RawNav{
		{Date: NewDate(2025, 1, 5), Value: 105, Valid: true},
		{Date: NewDate(2025, 1, 1), Value: 100, Valid: true},
		{Date: NewDate(2025, 1, 2), Value: -3, Valid: true},  // negative: dropped
		{Date: NewDate(2025, 1, 3), Valid: false},            // missing: dropped
		{Date: NewDate(2025, 1, 4), Value: 0, Valid: true},   // zero: dropped
		{Date: NewDate(2025, 1, 6), Value: math.NaN(), Valid: true},
		{Date: NewDate(2025, 1, 7), Value: 107, Valid: true},
	}
	s := Normalize("100027", "Test Fund", raw)

	wantDays := []Date{NewDate(2025, 1, 1), NewDate(2025, 1, 5), NewDate(2025, 1, 7)}
	wantValues := []float64{100, 105, 107}
	if !reflect.DeepEqual(s.days, wantDays) {
		t.Errorf("days = %v want %v", s.days, wantDays)
	}
	if !reflect.DeepEqual(s.values, wantValues) {
		t.Errorf("values = %v want %v", s.values, wantValues)
	}
}

func TestNormalizeKeepsPositiveSubset(t *testing.T) {
	// One negative among four positives yields exactly the positive four.
	raw := []RawNav{
		{Date: NewDate(2025, 1, 4), Value: 4, Valid: true},
		{Date: NewDate(2025, 1, 2), Value: 2, Valid: true},
		{Date: NewDate(2025, 1, 3), Value: -1, Valid: true},
		{Date: NewDate(2025, 1, 1), Value: 1, Valid: true},
		{Date: NewDate(2025, 1, 5), Value: 5, Valid: true},
	}
	s := Normalize("100027", "Test Fund", raw)
	if s.Len() != 4 {
		t.Fatalf("Len() = %d want 4", s.Len())
	}
	if !reflect.DeepEqual(s.values, []float64{1, 2, 4, 5}) {
		t.Errorf("values = %v want the sorted positive subset", s.values)
	}
}

func TestNormalizeLastOccurrenceWins(t *testing.T) {
	on := NewDate(2025, 1, 1)
	raw := []RawNav{
		{Date: on, Value: 10, Valid: true},
		{Date: on, Value: 11, Valid: true},
	}
	s := Normalize("100027", "Test Fund", raw)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d want 1", s.Len())
	}
	if v, _ := s.Get(on); v != 11 {
		t.Errorf("Get() = %v want 11, the last listed occurrence", v)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := []RawNav{
		{Date: NewDate(2025, 1, 3), Value: 103, Valid: true},
		{Date: NewDate(2025, 1, 1), Value: 101, Valid: true},
		{Date: NewDate(2025, 1, 2), Value: -1, Valid: true},
	}
	once := Normalize("100027", "Test Fund", raw)

	// Feed the clean output back in.
	again := make([]RawNav, 0, once.Len())
	for on, v := range once.Points() {
		again = append(again, RawNav{Date: on, Value: v, Valid: true})
	}
	twice := Normalize("100027", "Test Fund", again)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize is not idempotent: %v != %v", once, twice)
	}
}

func TestRescaleTo100(t *testing.T) {
	s := NewNavSeries("100027", "Test Fund")
	s.Append(NewDate(2025, 1, 1), 42.5)
	s.Append(NewDate(2025, 1, 2), 85)

	n, err := RescaleTo100(s)
	if err != nil {
		t.Fatal(err)
	}
	if _, first, _ := n.First(); first != 100.0 {
		t.Errorf("first rescaled value = %v want exactly 100.0", first)
	}
	if v, _ := n.Get(NewDate(2025, 1, 2)); v != 200.0 {
		t.Errorf("second rescaled value = %v want 200.0", v)
	}
	if n.Base() != 42.5 {
		t.Errorf("Base() = %v want 42.5", n.Base())
	}
}

func TestRescaleEmptySeries(t *testing.T) {
	_, err := RescaleTo100(NewNavSeries("100027", "Test Fund"))
	if !errors.Is(err, ErrEmptySeries) {
		t.Errorf("err = %v want ErrEmptySeries", err)
	}
}

func TestRescaleZeroBase(t *testing.T) {
	// Unreachable through Normalize, but rescale is a separable operation and
	// must check on its own.
	s := NewNavSeries("100027", "Test Fund")
	s.days = append(s.days, NewDate(2025, 1, 1))
	s.values = append(s.values, 0)

	_, err := RescaleTo100(s)
	if !errors.Is(err, ErrZeroBaseValue) {
		t.Errorf("err = %v want ErrZeroBaseValue", err)
	}
}
