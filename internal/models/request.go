package models

import "fmt"

// SeriesObservation is one input sample of a forecast request. Value is
// decoded as interface{} so numeric strings and integers survive clients
// that do not emit clean JSON floats; the service layer converts it.
type SeriesObservation struct {
	Label string      `json:"label"`
	Value interface{} `json:"value"`
}

// ForecastRequest represents the forecast request body.
// Alpha, Beta, Gamma and Horizon are pointers because zero is a meaningful
// value for each; nil means "use the configured default".
type ForecastRequest struct {
	Series         []SeriesObservation `json:"series"`
	Alpha          *float64            `json:"alpha"`
	Beta           *float64            `json:"beta"`
	Gamma          *float64            `json:"gamma"`
	SeasonalPeriod int                 `json:"seasonal_period"` // 0 means configured default
	Horizon        *int                `json:"horizon"`
	Interval       string              `json:"interval"` // label interval for forecast points (1m, 1h, 1d, ...)
}

// Validate checks the request shape. Numerical preconditions (coefficient
// ranges, series length vs period) are enforced by the forecasting core.
func (r *ForecastRequest) Validate() error {
	if len(r.Series) == 0 {
		return fmt.Errorf("series is required and must not be empty")
	}
	for i, obs := range r.Series {
		if obs.Value == nil {
			return fmt.Errorf("series[%d]: value is required", i)
		}
	}
	return nil
}
