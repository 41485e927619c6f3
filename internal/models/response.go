package models

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// SeriesPointView is a single entry of the output sequence: either an
// observed point with its in-sample reconstruction, or a forecast point
// with no observed value.
type SeriesPointView struct {
	Label    string   `json:"label,omitempty"`
	Observed *float64 `json:"observed,omitempty"`
	Fitted   float64  `json:"fitted"`
	Forecast bool     `json:"forecast,omitempty"`
}

// ModelInfo contains metadata about the fitted model
type ModelInfo struct {
	Algorithm  string                 `json:"algorithm"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	MAPE       float64                `json:"mape,omitempty"` // Mean Absolute Percentage Error
	MAE        float64                `json:"mae,omitempty"`  // Mean Absolute Error
	RMSE       float64                `json:"rmse,omitempty"` // Root Mean Squared Error
	DataPoints int                    `json:"data_points"`
}

// ForecastResponse represents the complete forecast response
type ForecastResponse struct {
	Points    []SeriesPointView `json:"points"`
	ModelInfo ModelInfo         `json:"model_info"`
	Cached    bool              `json:"cached"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}
