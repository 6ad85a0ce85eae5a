package fundsight

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{in: "2025-07-01", want: NewDate(2025, 7, 1)},
		{in: "2025-7-1", want: NewDate(2025, 7, 1)},
		{in: "01-07-2025", err: true},
		{in: "not a date", err: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.err {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v want %v", tt.in, got, tt.want)
		}
	}
}

func TestDateAdd(t *testing.T) {
	d := NewDate(2024, 2, 28)
	if got := d.Add(1); got != NewDate(2024, 2, 29) {
		t.Errorf("Add(1) = %v want 2024-02-29", got)
	}
	if got := d.Add(2); got != NewDate(2024, 3, 1) {
		t.Errorf("Add(2) = %v want 2024-03-01", got)
	}
	if got := d.AddMonth(12); got != NewDate(2025, 2, 28) {
		t.Errorf("AddMonth(12) = %v want 2025-02-28", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.January, 2)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var got Date
	if err := got.UnmarshalJSON(b); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("round trip = %v want %v", got, d)
	}
}
