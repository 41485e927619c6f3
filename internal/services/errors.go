// Package services provides the business logic layer between handlers and
// the forecasting core. Services resolve request defaults, consult the
// response cache and translate core errors into transport-friendly codes.
package services

// ServiceError represents a service layer error
type ServiceError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewServiceError creates a new ServiceError
func NewServiceError(code, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

// Error codes returned by the forecast service. The first group maps the
// forecasting core's sentinel errors one-to-one; the second group covers
// request-shape problems detected before the core runs.
const (
	CodeInvalidCoefficient     = "INVALID_COEFFICIENT"
	CodeInvalidPeriod          = "INVALID_PERIOD"
	CodeInvalidHorizon         = "INVALID_HORIZON"
	CodeInsufficientSeries     = "INSUFFICIENT_SERIES"
	CodeDegenerateSeasonalMean = "DEGENERATE_SEASONAL_MEAN"
	CodeNonFiniteResult        = "NONFINITE_RESULT"

	CodeInvalidSeries   = "INVALID_SERIES"
	CodeInvalidInterval = "INVALID_INTERVAL"
	CodeSeriesTooLong   = "SERIES_TOO_LONG"
	CodeForecastFailed  = "FORECAST_FAILED"
)
