// Package forecast implements Holt-Winters triple exponential smoothing with
// multiplicative seasonality. The algorithm is a pure function: it owns its
// level/trend/seasonal state for the duration of one call and keeps nothing
// across calls. Unlike the usual permissive implementations it validates its
// inputs and refuses to emit NaN or Infinity; bad inputs or a degenerate
// recurrence step fail the whole call.
package forecast

import (
	"fmt"
	"math"
)

// TripleExponential fits a Holt-Winters model to series and projects it
// p.Horizon steps past the end. The result has exactly
// len(series)+p.Horizon points: the in-sample reconstruction first, then the
// forecasts. On error the partial output is discarded.
func TripleExponential(series []Observation, p Params) ([]Point, error) {
	if err := validate(series, p); err != nil {
		return nil, err
	}

	n := len(series)
	m := p.SeasonalPeriod

	seasonals, err := initialSeasonals(series, m)
	if err != nil {
		return nil, err
	}

	// Trend/level seed. Index m exists: validate guarantees n > m.
	level := series[0].Value
	trend := (series[m].Value - series[0].Value) / float64(m)

	out := make([]Point, 0, n+p.Horizon)

	for i := 0; i < n; i++ {
		value := series[i].Value
		s := seasonals[i%m]
		if s == 0 {
			return nil, fmt.Errorf("%w: zero seasonal factor at index %d", ErrNonFiniteResult, i)
		}

		// Order matters: the new level uses the old trend and the
		// pre-update seasonal slot, the new trend uses the new level,
		// and the seasonal slot is rewritten against the new level.
		lastLevel := level
		level = p.Alpha*(value/s) + (1-p.Alpha)*(lastLevel+trend)
		if level == 0 || !isFinite(level) {
			return nil, fmt.Errorf("%w: level %v at index %d", ErrNonFiniteResult, level, i)
		}
		trend = p.Beta*(level-lastLevel) + (1-p.Beta)*trend
		seasonals[i%m] = p.Gamma*(value/level) + (1-p.Gamma)*s

		fitted := (level + trend) * seasonals[i%m]
		if !isFinite(fitted) {
			return nil, fmt.Errorf("%w: fitted value at index %d", ErrNonFiniteResult, i)
		}

		observed := value
		out = append(out, Point{
			Label:    series[i].Label,
			Observed: &observed,
			Fitted:   fitted,
		})
	}

	for h := 1; h <= p.Horizon; h++ {
		f := (level + trend*float64(h)) * seasonals[(n+h-1)%m]
		if !isFinite(f) {
			return nil, fmt.Errorf("%w: forecast value at step %d", ErrNonFiniteResult, h)
		}
		out = append(out, Point{Fitted: f})
	}

	return out, nil
}

// validate checks the call preconditions. The series-length check subsumes
// the "period longer than series" case, so ErrInvalidPeriod is reserved for
// non-positive periods.
func validate(series []Observation, p Params) error {
	for _, c := range [...]struct {
		name  string
		value float64
	}{
		{"alpha", p.Alpha},
		{"beta", p.Beta},
		{"gamma", p.Gamma},
	} {
		if c.value < 0 || c.value > 1 || math.IsNaN(c.value) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidCoefficient, c.name, c.value)
		}
	}

	if p.SeasonalPeriod <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPeriod, p.SeasonalPeriod)
	}
	if p.Horizon < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidHorizon, p.Horizon)
	}
	if len(series) <= p.SeasonalPeriod {
		return fmt.Errorf("%w: length %d, period %d", ErrInsufficientSeries, len(series), p.SeasonalPeriod)
	}

	return nil
}

// initialSeasonals averages every m-th observation per phase and normalizes
// the m averages so their mean is exactly 1.
func initialSeasonals(series []Observation, m int) ([]float64, error) {
	seasonals := make([]float64, m)

	sum := 0.0
	for phase := 0; phase < m; phase++ {
		total := 0.0
		count := 0
		for i := phase; i < len(series); i += m {
			total += series[i].Value
			count++
		}
		seasonals[phase] = total / float64(count)
		sum += seasonals[phase]
	}

	mean := sum / float64(m)
	if mean == 0 {
		return nil, fmt.Errorf("%w: cannot normalize seasonal components", ErrDegenerateSeasonalMean)
	}

	for phase := range seasonals {
		seasonals[phase] /= mean
	}

	return seasonals, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
