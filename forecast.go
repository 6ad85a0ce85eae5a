package fundsight

import (
	"fmt"
	"time"
)

// MinForecastHistory is the absolute floor of points a model input needs.
const MinForecastHistory = 2

// PracticalForecastHistory is the floor below which the model is expected to
// degrade silently rather than error. Prepare surfaces it as a warning, not a
// failure.
const PracticalForecastHistory = 30

// ForecastRequest is one forecast trigger for a single fund.
type ForecastRequest struct {
	Code        string
	History     *NavSeries
	HorizonDays int

	// Seasonality flags forwarded to the model.
	DailySeasonality  bool
	WeeklySeasonality bool
}

// ModelInput is the input contract of the forecasting model: co-indexed
// instants and observations.
type ModelInput struct {
	Times  []time.Time
	Values []float64
}

// RawModelOutput is the unvalidated output of the forecasting model.
type RawModelOutput struct {
	Dates []Date
	Point []float64
	Lower []float64
	Upper []float64
}

// ForecastResult is a validated forecast: all four sequences are co-indexed
// and of equal length, with Lower <= Upper everywhere. It is a transient
// value, discarded after display or export.
type ForecastResult struct {
	Code  string
	Dates []Date
	Point []float64
	Lower []float64
	Upper []float64
}

// Forecaster is the opaque forecasting model. Implementations fit on the
// prepared history and predict at the requested instants. Failures are
// surfaced unchanged: forecasting is best-effort, no retry, no fallback.
type Forecaster interface {
	Forecast(in ModelInput, at []time.Time) (RawModelOutput, error)
}

// Prepare shapes a cleaned series into the model input contract.
//
// It fails with ErrInsufficientHistory below MinForecastHistory points. Below
// PracticalForecastHistory it succeeds but returns a caller-facing warning,
// since the model may degrade silently rather than error.
func Prepare(s *NavSeries) (in ModelInput, warning string, err error) {
	if s.Len() < MinForecastHistory {
		return ModelInput{}, "", fmt.Errorf("forecast %q needs %d points, has %d: %w",
			s.Code, MinForecastHistory, s.Len(), ErrInsufficientHistory)
	}
	in.Times = make([]time.Time, 0, s.Len())
	in.Values = make([]float64, 0, s.Len())
	for on, v := range s.Points() {
		in.Times = append(in.Times, on.Time())
		in.Values = append(in.Values, v)
	}
	if s.Len() < PracticalForecastHistory {
		warning = fmt.Sprintf("only %d NAVs of history, forecast quality degrades below %d",
			s.Len(), PracticalForecastHistory)
	}
	return in, warning, nil
}

// Horizon returns the horizonDays future dates following the last observation,
// one per calendar day, as both dates and model instants.
func Horizon(last Date, horizonDays int) ([]Date, []time.Time) {
	dates := make([]Date, horizonDays)
	times := make([]time.Time, horizonDays)
	for i := range horizonDays {
		dates[i] = last.Add(i + 1)
		times[i] = dates[i].Time()
	}
	return dates, times
}

// Interpret validates the model output into a canonical forecast record.
//
// It fails with ErrMalformedModelOutput when the sequences differ in length,
// when their length does not match the requested horizon, or when any bound
// pair inverts (lower > upper).
func Interpret(code string, raw RawModelOutput, horizonDays int) (*ForecastResult, error) {
	n := len(raw.Dates)
	if len(raw.Point) != n || len(raw.Lower) != n || len(raw.Upper) != n {
		return nil, fmt.Errorf("model output lengths dates=%d point=%d lower=%d upper=%d: %w",
			n, len(raw.Point), len(raw.Lower), len(raw.Upper), ErrMalformedModelOutput)
	}
	if horizonDays > 0 && n != horizonDays {
		return nil, fmt.Errorf("model output has %d points for a %d day horizon: %w",
			n, horizonDays, ErrMalformedModelOutput)
	}
	for i := range n {
		if raw.Lower[i] > raw.Upper[i] {
			return nil, fmt.Errorf("bounds invert at %s (%g > %g): %w",
				raw.Dates[i], raw.Lower[i], raw.Upper[i], ErrMalformedModelOutput)
		}
	}
	return &ForecastResult{
		Code:  code,
		Dates: raw.Dates,
		Point: raw.Point,
		Lower: raw.Lower,
		Upper: raw.Upper,
	}, nil
}
