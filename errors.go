package fundsight

import "errors"

// Failure kinds of the NAV pipeline. Each failure is scoped to one fund or one
// computation: a caller comparing several funds keeps processing the siblings
// and decides per fund whether to warn, omit or block. None is ever coerced to
// a zero, NaN or default value.
var (
	// ErrEmptySeries reports a rescale or forecast over a series with no points.
	ErrEmptySeries = errors.New("empty series")

	// ErrZeroBaseValue reports a rescale whose base value is zero. Normalize
	// drops non-positive values so this is normally unreachable, but rescale is
	// a separable operation and checks on its own.
	ErrZeroBaseValue = errors.New("zero base value")

	// ErrMissingEndpoint reports a return computation where one endpoint has no
	// NAV on or before the requested date.
	ErrMissingEndpoint = errors.New("missing endpoint")

	// ErrInsufficientOverlap reports a strict alignment or correlation over
	// series that share too few dates.
	ErrInsufficientOverlap = errors.New("insufficient overlap")

	// ErrDegenerateSeries reports a correlation whose coefficient is undefined
	// because one series has no variance over the shared window.
	ErrDegenerateSeries = errors.New("degenerate series")

	// ErrInsufficientHistory reports a forecast request over a series shorter
	// than the model's absolute floor.
	ErrInsufficientHistory = errors.New("insufficient history")

	// ErrMalformedModelOutput reports a model output whose arrays differ in
	// length or whose uncertainty bounds invert.
	ErrMalformedModelOutput = errors.New("malformed model output")
)
