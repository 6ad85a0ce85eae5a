package fundsight

import (
	"errors"
	"testing"
	"time"
)

func TestPrepareInsufficientHistory(t *testing.T) {
	s := seriesOf("100027", NavPoint{NewDate(2025, 1, 1), 100})
	_, _, err := Prepare(s)
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("err = %v want ErrInsufficientHistory", err)
	}
}

func TestPrepareWarnsOnShortHistory(t *testing.T) {
	s := seriesOf("100027",
		NavPoint{NewDate(2025, 1, 1), 100},
		NavPoint{NewDate(2025, 1, 2), 101},
	)
	in, warning, err := Prepare(s)
	if err != nil {
		t.Fatal(err)
	}
	if warning == "" {
		t.Error("expected a short-history warning, got none")
	}
	if len(in.Times) != 2 || len(in.Values) != 2 {
		t.Errorf("input lengths = %d,%d want 2,2", len(in.Times), len(in.Values))
	}
	if !in.Times[0].Before(in.Times[1]) {
		t.Error("input times not ascending")
	}
}

func TestPrepareNoWarningOnLongHistory(t *testing.T) {
	s := NewNavSeries("100027", "Test Fund")
	for i := range PracticalForecastHistory {
		s.Append(NewDate(2025, 1, 1).Add(i), 100+float64(i))
	}
	_, warning, err := Prepare(s)
	if err != nil {
		t.Fatal(err)
	}
	if warning != "" {
		t.Errorf("unexpected warning %q", warning)
	}
}

func TestHorizon(t *testing.T) {
	dates, times := Horizon(NewDate(2025, 1, 31), 3)
	want := []Date{NewDate(2025, 2, 1), NewDate(2025, 2, 2), NewDate(2025, 2, 3)}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %v want %v", i, dates[i], want[i])
		}
		if !times[i].Equal(want[i].Time()) {
			t.Errorf("times[%d] = %v want %v", i, times[i], want[i].Time())
		}
	}
}

func validOutput(n int) RawModelOutput {
	out := RawModelOutput{}
	for i := range n {
		out.Dates = append(out.Dates, NewDate(2025, 2, 1).Add(i))
		out.Point = append(out.Point, 100+float64(i))
		out.Lower = append(out.Lower, 95+float64(i))
		out.Upper = append(out.Upper, 105+float64(i))
	}
	return out
}

func TestInterpret(t *testing.T) {
	res, err := Interpret("100027", validOutput(5), 5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Code != "100027" || len(res.Dates) != 5 {
		t.Errorf("result = %+v want 5 co-indexed points for 100027", res)
	}
}

func TestInterpretLengthMismatch(t *testing.T) {
	raw := validOutput(5)
	raw.Lower = raw.Lower[:4]
	_, err := Interpret("100027", raw, 5)
	if !errors.Is(err, ErrMalformedModelOutput) {
		t.Errorf("err = %v want ErrMalformedModelOutput", err)
	}
}

func TestInterpretHorizonMismatch(t *testing.T) {
	_, err := Interpret("100027", validOutput(4), 5)
	if !errors.Is(err, ErrMalformedModelOutput) {
		t.Errorf("err = %v want ErrMalformedModelOutput", err)
	}
}

func TestInterpretInvertedBounds(t *testing.T) {
	// A single inverted pair taints the whole output, even with every other
	// index valid.
	raw := validOutput(5)
	raw.Lower[2], raw.Upper[2] = raw.Upper[2], raw.Lower[2]
	_, err := Interpret("100027", raw, 5)
	if !errors.Is(err, ErrMalformedModelOutput) {
		t.Errorf("err = %v want ErrMalformedModelOutput", err)
	}
}

// flatForecaster predicts the last observed value forever, a trivial but
// well-formed model.
type flatForecaster struct{}

func (flatForecaster) Forecast(in ModelInput, at []time.Time) (RawModelOutput, error) {
	last := in.Values[len(in.Values)-1]
	out := RawModelOutput{}
	for _, t := range at {
		out.Dates = append(out.Dates, NewDate(t.Date()))
		out.Point = append(out.Point, last)
		out.Lower = append(out.Lower, last*0.95)
		out.Upper = append(out.Upper, last*1.05)
	}
	return out, nil
}

func TestForecastPipeline(t *testing.T) {
	s := seriesOf("100027",
		NavPoint{NewDate(2025, 1, 1), 100},
		NavPoint{NewDate(2025, 1, 2), 102},
		NavPoint{NewDate(2025, 1, 3), 104},
	)
	in, _, err := Prepare(s)
	if err != nil {
		t.Fatal(err)
	}
	last, _, _ := s.Latest()
	_, at := Horizon(last, 7)

	var model Forecaster = flatForecaster{}
	raw, err := model.Forecast(in, at)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Interpret(s.Code, raw, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Dates) != 7 {
		t.Fatalf("forecast length = %d want 7", len(res.Dates))
	}
	if res.Dates[0] != NewDate(2025, 1, 4) {
		t.Errorf("first forecast date = %v want the day after the last NAV", res.Dates[0])
	}
	for i := range res.Dates {
		if res.Lower[i] > res.Point[i] || res.Point[i] > res.Upper[i] {
			t.Errorf("band out of order at %d: %v %v %v", i, res.Lower[i], res.Point[i], res.Upper[i])
		}
	}
}
