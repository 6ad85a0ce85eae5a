// Package prophet runs NAV forecasts with the go-forecaster library, a
// Prophet-style decomposition model with uncertainty bands.
package prophet

import (
	"fmt"
	"time"

	forecaster "github.com/aouyang1/go-forecaster"
	"github.com/aouyang1/go-forecaster/forecast"
	"github.com/fundsight/fundsight"
)

// Fourier orders used when a seasonality is requested. Mutual fund NAVs are
// daily closes, so weekly structure is the one that usually matters.
const (
	dailyOrders  = 12
	weeklyOrders = 6
)

// Runner implements fundsight.Forecaster. The zero value runs the model with
// its defaults and no explicit seasonality.
type Runner struct {
	Daily  bool // model intra-week daily seasonality
	Weekly bool // model weekly seasonality
}

var _ fundsight.Forecaster = (*Runner)(nil)

// New returns a Runner honoring the request's seasonality flags.
func New(req fundsight.ForecastRequest) *Runner {
	return &Runner{Daily: req.DailySeasonality, Weekly: req.WeeklySeasonality}
}

func (r *Runner) options() *forecaster.Options {
	if !r.Daily && !r.Weekly {
		return nil // library defaults
	}
	opts := &forecast.Options{}
	if r.Daily {
		opts.DailyOrders = dailyOrders
	}
	if r.Weekly {
		opts.WeeklyOrders = weeklyOrders
	}
	return &forecaster.Options{
		SeriesOptions: &forecaster.SeriesOptions{ForecastOptions: opts},
	}
}

// Forecast fits the model on the prepared history and predicts at the
// requested instants. Model failures are returned unchanged; the caller owns
// the best-effort policy.
func (r *Runner) Forecast(in fundsight.ModelInput, at []time.Time) (fundsight.RawModelOutput, error) {
	f, err := forecaster.New(r.options())
	if err != nil {
		return fundsight.RawModelOutput{}, fmt.Errorf("create forecaster: %w", err)
	}
	if err := f.Fit(in.Times, in.Values); err != nil {
		return fundsight.RawModelOutput{}, fmt.Errorf("fit %d observations: %w", len(in.Values), err)
	}
	res, err := f.Predict(at)
	if err != nil {
		return fundsight.RawModelOutput{}, fmt.Errorf("predict %d points: %w", len(at), err)
	}

	out := fundsight.RawModelOutput{
		Point: res.Forecast,
		Lower: res.Lower,
		Upper: res.Upper,
	}
	out.Dates = make([]fundsight.Date, len(res.T))
	for i, t := range res.T {
		out.Dates[i] = fundsight.NewDate(t.Date())
	}
	return out, nil
}
