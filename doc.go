// Package fundsight prepares mutual-fund NAV histories for comparison and
// forecasting.
//
// The pipeline is: raw provider entries are cleaned into a NavSeries
// (Normalize), rescaled to a common base of 100 (RescaleTo100), merged onto a
// shared calendar when several funds are compared (Align), and consumed by the
// return calculator (PeriodReturn, TrailingReturn) or shaped for a forecasting
// model (Prepare, Interpret).
//
// Every structure is built fresh per request and discarded afterwards; a
// NavSeries is never mutated once normalized, so callers may normalize
// independent funds concurrently if they wish.
package fundsight
