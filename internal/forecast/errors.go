package forecast

import "errors"

// Sentinel errors returned by TripleExponential. All are precondition or
// computation failures; a failed call returns no partial output.
var (
	// ErrInvalidCoefficient indicates alpha, beta or gamma is outside [0, 1].
	ErrInvalidCoefficient = errors.New("smoothing coefficient outside [0, 1]")

	// ErrInvalidPeriod indicates a non-positive seasonal period.
	ErrInvalidPeriod = errors.New("seasonal period must be positive")

	// ErrInvalidHorizon indicates a negative forecast horizon.
	ErrInvalidHorizon = errors.New("forecast horizon must be non-negative")

	// ErrInsufficientSeries indicates the series is too short to seed the
	// trend: index seasonalPeriod must exist, so len(series) > seasonalPeriod.
	ErrInsufficientSeries = errors.New("series length must exceed seasonal period")

	// ErrDegenerateSeasonalMean indicates the mean of the raw seasonal
	// components is zero, so normalization is undefined.
	ErrDegenerateSeasonalMean = errors.New("seasonal mean is zero")

	// ErrNonFiniteResult indicates a recurrence step divided by zero or
	// produced a zero or non-finite level, fitted or forecast value.
	ErrNonFiniteResult = errors.New("non-finite result in recurrence")
)
