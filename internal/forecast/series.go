package forecast

// Observation is a single input sample. Label is an opaque payload (usually
// a time label) echoed in the output and never read by the algorithm.
type Observation struct {
	Label string
	Value float64
}

// Point is one entry of the output sequence. The first n points carry the
// original observation (Observed non-nil); the trailing horizon points are
// forecasts with Observed nil and an empty Label, which the caller may
// replace with a synthetic label.
type Point struct {
	Label    string
	Observed *float64
	Fitted   float64
}

// IsForecast reports whether the point lies beyond the observed series.
func (p Point) IsForecast() bool {
	return p.Observed == nil
}

// Params holds the smoothing coefficients and shape parameters for a single
// TripleExponential call.
type Params struct {
	Alpha          float64 // level smoothing weight, [0, 1]
	Beta           float64 // trend smoothing weight, [0, 1]
	Gamma          float64 // seasonal smoothing weight, [0, 1]
	SeasonalPeriod int     // observations per seasonal cycle
	Horizon        int     // future steps to project, >= 0
}
