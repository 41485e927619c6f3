package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tricasthq/tricast/internal/cache"
	"github.com/tricasthq/tricast/internal/compression"
	"github.com/tricasthq/tricast/internal/config"
	"github.com/tricasthq/tricast/internal/forecast"
	"github.com/tricasthq/tricast/internal/logging"
	"github.com/tricasthq/tricast/internal/models"
	"github.com/tricasthq/tricast/internal/utils"
)

// ForecastService handles forecasting business logic
type ForecastService struct {
	logger     *logging.Logger
	cache      cache.Cache
	compressor compression.Compressor
	defaults   config.ForecastConfig
	cacheTTL   time.Duration
}

// NewForecastService creates a new ForecastService
func NewForecastService(logger *logging.Logger, responseCache cache.Cache, cfg *config.Config) *ForecastService {
	return &ForecastService{
		logger:     logger,
		cache:      responseCache,
		compressor: compression.NewSnappyCompressor(),
		defaults:   cfg.Forecast,
		cacheTTL:   cfg.Cache.TTL,
	}
}

// resolvedRequest is the canonical form of a forecast request after defaults
// are applied. Its JSON encoding is hashed to build the cache key, so field
// order and types must stay deterministic.
type resolvedRequest struct {
	Series         []forecast.Observation `json:"series"`
	Alpha          float64                `json:"alpha"`
	Beta           float64                `json:"beta"`
	Gamma          float64                `json:"gamma"`
	SeasonalPeriod int                    `json:"seasonal_period"`
	Horizon        int                    `json:"horizon"`
	Interval       string                 `json:"interval"`
}

// Execute runs a forecast for the given request, consulting the response
// cache first. The algorithm itself is pure; identical requests always
// produce identical responses, which is what makes the cache sound.
func (s *ForecastService) Execute(ctx context.Context, req *models.ForecastRequest) (*models.ForecastResponse, error) {
	startExec := time.Now()

	if err := req.Validate(); err != nil {
		return nil, NewServiceError(CodeInvalidSeries, err.Error())
	}

	resolved, svcErr := s.resolve(req)
	if svcErr != nil {
		return nil, svcErr
	}

	key, err := cacheKey(resolved)
	if err != nil {
		return nil, NewServiceError(CodeForecastFailed, fmt.Sprintf("failed to build cache key: %v", err))
	}

	if cached := s.lookupCached(ctx, key); cached != nil {
		s.logger.Debug("Forecast served from cache",
			"cache_key", key,
			"points", len(cached.Points))
		return cached, nil
	}

	points, err := forecast.TripleExponential(resolved.Series, forecast.Params{
		Alpha:          resolved.Alpha,
		Beta:           resolved.Beta,
		Gamma:          resolved.Gamma,
		SeasonalPeriod: resolved.SeasonalPeriod,
		Horizon:        resolved.Horizon,
	})
	if err != nil {
		return nil, mapCoreError(err)
	}

	response := s.buildResponse(resolved, points)
	s.storeCached(ctx, key, response)

	s.logger.Info("Forecast completed",
		"series_length", len(resolved.Series),
		"seasonal_period", resolved.SeasonalPeriod,
		"horizon", resolved.Horizon,
		"latency_ms", time.Since(startExec).Milliseconds())

	return response, nil
}

// resolve applies configured defaults and converts the inline series.
func (s *ForecastService) resolve(req *models.ForecastRequest) (*resolvedRequest, *ServiceError) {
	if req.Interval != "" && !utils.ValidInterval(req.Interval) {
		return nil, &ServiceError{
			Code:    CodeInvalidInterval,
			Message: fmt.Sprintf("unsupported interval: %s (supported: 1m, 5m, 15m, 30m, 1h, 4h, 1d, 1w)", req.Interval),
		}
	}

	if len(req.Series) > s.defaults.MaxSeriesLength {
		return nil, &ServiceError{
			Code:    CodeSeriesTooLong,
			Message: fmt.Sprintf("series length %d exceeds limit %d", len(req.Series), s.defaults.MaxSeriesLength),
		}
	}

	series := make([]forecast.Observation, len(req.Series))
	for i, obs := range req.Series {
		value, ok := utils.ToFloat64(obs.Value)
		if !ok {
			return nil, &ServiceError{
				Code:    CodeInvalidSeries,
				Message: fmt.Sprintf("series[%d]: value is not numeric", i),
				Details: map[string]interface{}{"index": i, "value": obs.Value},
			}
		}
		series[i] = forecast.Observation{Label: obs.Label, Value: value}
	}

	resolved := &resolvedRequest{
		Series:         series,
		Alpha:          s.defaults.Alpha,
		Beta:           s.defaults.Beta,
		Gamma:          s.defaults.Gamma,
		SeasonalPeriod: s.defaults.SeasonalPeriod,
		Horizon:        s.defaults.Horizon,
		Interval:       s.defaults.Interval,
	}
	if req.Alpha != nil {
		resolved.Alpha = *req.Alpha
	}
	if req.Beta != nil {
		resolved.Beta = *req.Beta
	}
	if req.Gamma != nil {
		resolved.Gamma = *req.Gamma
	}
	if req.SeasonalPeriod > 0 {
		resolved.SeasonalPeriod = req.SeasonalPeriod
	}
	if req.Horizon != nil {
		resolved.Horizon = *req.Horizon
	}
	if req.Interval != "" {
		resolved.Interval = req.Interval
	}

	return resolved, nil
}

// buildResponse converts core output points into the response model,
// assigns synthetic labels to forecast points and attaches fit metrics.
func (s *ForecastService) buildResponse(req *resolvedRequest, points []forecast.Point) *models.ForecastResponse {
	n := len(req.Series)

	// Continue the request's time grid when the labels parse as RFC3339;
	// otherwise fall back to relative step labels.
	var lastTime time.Time
	timeLabels := false
	if n > 0 {
		if t, err := time.Parse(time.RFC3339, req.Series[n-1].Label); err == nil {
			lastTime = t
			timeLabels = true
		}
	}
	interval := utils.ParseInterval(req.Interval)

	views := make([]models.SeriesPointView, len(points))
	actual := make([]float64, 0, n)
	fitted := make([]float64, 0, n)
	for i, point := range points {
		view := models.SeriesPointView{
			Label:    point.Label,
			Observed: point.Observed,
			Fitted:   point.Fitted,
			Forecast: point.IsForecast(),
		}
		if point.IsForecast() {
			h := i - n + 1
			if timeLabels {
				view.Label = lastTime.Add(interval * time.Duration(h)).Format(time.RFC3339)
			} else {
				view.Label = fmt.Sprintf("+%d", h)
			}
		} else {
			actual = append(actual, *point.Observed)
			fitted = append(fitted, point.Fitted)
		}
		views[i] = view
	}

	return &models.ForecastResponse{
		Points: views,
		ModelInfo: models.ModelInfo{
			Algorithm: "holt_winters",
			Parameters: map[string]interface{}{
				"alpha":           req.Alpha,
				"beta":            req.Beta,
				"gamma":           req.Gamma,
				"seasonal_period": req.SeasonalPeriod,
				"horizon":         req.Horizon,
			},
			MAPE:       forecast.MAPE(actual, fitted),
			MAE:        forecast.MAE(actual, fitted),
			RMSE:       forecast.RMSE(actual, fitted),
			DataPoints: n,
		},
	}
}

// lookupCached returns the cached response for key, or nil on miss. Cache
// failures degrade to a miss.
func (s *ForecastService) lookupCached(ctx context.Context, key string) *models.ForecastResponse {
	cacheCtx, cancel := context.WithTimeout(ctx, utils.CacheOpTimeout)
	defer cancel()

	compressed, found, err := s.cache.Get(cacheCtx, key)
	if err != nil {
		s.logger.Warn("Cache lookup failed", "cache_key", key, "error", err)
		return nil
	}
	if !found {
		return nil
	}

	payload, err := s.compressor.Decompress(compressed)
	if err != nil {
		s.logger.Warn("Cached payload corrupt", "cache_key", key, "error", err)
		return nil
	}

	var response models.ForecastResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		s.logger.Warn("Cached payload unmarshal failed", "cache_key", key, "error", err)
		return nil
	}

	response.Cached = true
	return &response
}

// storeCached compresses and stores the response. Failures are logged and
// otherwise ignored; the caller already has the response.
func (s *ForecastService) storeCached(ctx context.Context, key string, response *models.ForecastResponse) {
	payload, err := json.Marshal(response)
	if err != nil {
		s.logger.Warn("Cache payload marshal failed", "cache_key", key, "error", err)
		return
	}

	compressed, err := s.compressor.Compress(payload)
	if err != nil {
		s.logger.Warn("Cache payload compression failed", "cache_key", key, "error", err)
		return
	}

	cacheCtx, cancel := context.WithTimeout(ctx, utils.CacheOpTimeout)
	defer cancel()

	if err := s.cache.Set(cacheCtx, key, compressed, s.cacheTTL); err != nil {
		s.logger.Warn("Cache store failed", "cache_key", key, "error", err)
	}
}

// cacheKey hashes the canonical request encoding.
func cacheKey(req *resolvedRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(payload)
	return hex.EncodeToString(digest[:]), nil
}

// mapCoreError translates the core's sentinel errors into service errors.
func mapCoreError(err error) *ServiceError {
	switch {
	case errors.Is(err, forecast.ErrInvalidCoefficient):
		return NewServiceError(CodeInvalidCoefficient, err.Error())
	case errors.Is(err, forecast.ErrInvalidPeriod):
		return NewServiceError(CodeInvalidPeriod, err.Error())
	case errors.Is(err, forecast.ErrInvalidHorizon):
		return NewServiceError(CodeInvalidHorizon, err.Error())
	case errors.Is(err, forecast.ErrInsufficientSeries):
		return NewServiceError(CodeInsufficientSeries, err.Error())
	case errors.Is(err, forecast.ErrDegenerateSeasonalMean):
		return NewServiceError(CodeDegenerateSeasonalMean, err.Error())
	case errors.Is(err, forecast.ErrNonFiniteResult):
		return NewServiceError(CodeNonFiniteResult, err.Error())
	default:
		return NewServiceError(CodeForecastFailed, err.Error())
	}
}
