package services

import (
	"context"
	"io"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tricasthq/tricast/internal/cache"
	"github.com/tricasthq/tricast/internal/config"
	"github.com/tricasthq/tricast/internal/logging"
	"github.com/tricasthq/tricast/internal/models"
)

func newTestService(t *testing.T, mutate func(*config.Config)) *ForecastService {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Forecast.SeasonalPeriod = 4
	cfg.Forecast.Horizon = 4
	if mutate != nil {
		mutate(cfg)
	}

	responseCache, err := cache.New(cfg.Cache)
	require.NoError(t, err)
	t.Cleanup(func() { responseCache.Close() })

	logger := logging.NewWithWriter(io.Discard, zerolog.Disabled)
	return NewForecastService(logger, responseCache, cfg)
}

func seasonalRequest(n, period int) *models.ForecastRequest {
	series := make([]models.SeriesObservation, n)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range series {
		series[i] = models.SeriesObservation{
			Label: start.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			Value: 100.0 + 2.0*float64(i) + 10.0*math.Sin(2.0*math.Pi*float64(i)/float64(period)),
		}
	}
	return &models.ForecastRequest{Series: series, SeasonalPeriod: period, Interval: "1h"}
}

func TestForecastService_Execute(t *testing.T) {
	svc := newTestService(t, nil)
	req := seasonalRequest(24, 4)

	resp, err := svc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, resp.Points, 24+4)
	assert.False(t, resp.Cached)
	assert.Equal(t, "holt_winters", resp.ModelInfo.Algorithm)
	assert.Equal(t, 24, resp.ModelInfo.DataPoints)
	assert.Greater(t, resp.ModelInfo.MAE, 0.0)

	for i, point := range resp.Points {
		if i < 24 {
			require.NotNil(t, point.Observed, "point %d should carry its observation", i)
			assert.False(t, point.Forecast)
		} else {
			assert.Nil(t, point.Observed)
			assert.True(t, point.Forecast)
		}
	}
}

func TestForecastService_Execute_CacheHit(t *testing.T) {
	svc := newTestService(t, nil)
	req := seasonalRequest(24, 4)

	first, err := svc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := svc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Points, second.Points)
	assert.Equal(t, first.ModelInfo.MAE, second.ModelInfo.MAE)
	assert.Equal(t, first.ModelInfo.DataPoints, second.ModelInfo.DataPoints)
}

func TestForecastService_Execute_CacheDisabled(t *testing.T) {
	svc := newTestService(t, func(cfg *config.Config) {
		cfg.Cache.Type = "none"
	})
	req := seasonalRequest(24, 4)

	_, err := svc.Execute(context.Background(), req)
	require.NoError(t, err)

	second, err := svc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, second.Cached)
}

func TestForecastService_Execute_DefaultsApplied(t *testing.T) {
	svc := newTestService(t, func(cfg *config.Config) {
		cfg.Forecast.Horizon = 6
	})
	req := seasonalRequest(24, 4)
	req.SeasonalPeriod = 0 // fall back to configured period 4

	resp, err := svc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Points, 24+6)
	assert.Equal(t, 4, resp.ModelInfo.Parameters["seasonal_period"])
	assert.Equal(t, 6, resp.ModelInfo.Parameters["horizon"])
	assert.Equal(t, 0.5, resp.ModelInfo.Parameters["alpha"])
}

func TestForecastService_Execute_ForecastLabels(t *testing.T) {
	svc := newTestService(t, nil)
	req := seasonalRequest(24, 4)

	resp, err := svc.Execute(context.Background(), req)
	require.NoError(t, err)

	last, err := time.Parse(time.RFC3339, req.Series[23].Label)
	require.NoError(t, err)
	for h := 1; h <= 4; h++ {
		want := last.Add(time.Duration(h) * time.Hour).Format(time.RFC3339)
		assert.Equal(t, want, resp.Points[23+h].Label)
	}
}

func TestForecastService_Execute_RelativeLabelsFallback(t *testing.T) {
	svc := newTestService(t, nil)
	req := seasonalRequest(24, 4)
	for i := range req.Series {
		req.Series[i].Label = ""
	}

	resp, err := svc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "+1", resp.Points[24].Label)
	assert.Equal(t, "+4", resp.Points[27].Label)
}

func TestForecastService_Execute_NumericConversion(t *testing.T) {
	svc := newTestService(t, nil)
	req := seasonalRequest(24, 4)
	req.Series[0].Value = "102.5" // numeric string
	req.Series[1].Value = 104     // integer

	_, err := svc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestForecastService_Execute_Errors(t *testing.T) {
	badAlpha := 1.5
	negHorizon := -1

	tests := []struct {
		name     string
		mutate   func(*config.Config)
		request  *models.ForecastRequest
		wantCode string
	}{
		{
			name:     "empty series",
			request:  &models.ForecastRequest{},
			wantCode: CodeInvalidSeries,
		},
		{
			name: "non-numeric value",
			request: func() *models.ForecastRequest {
				r := seasonalRequest(24, 4)
				r.Series[3].Value = "not-a-number"
				return r
			}(),
			wantCode: CodeInvalidSeries,
		},
		{
			name: "unsupported interval",
			request: func() *models.ForecastRequest {
				r := seasonalRequest(24, 4)
				r.Interval = "2h"
				return r
			}(),
			wantCode: CodeInvalidInterval,
		},
		{
			name:     "series too long",
			mutate:   func(cfg *config.Config) { cfg.Forecast.MaxSeriesLength = 10 },
			request:  seasonalRequest(24, 4),
			wantCode: CodeSeriesTooLong,
		},
		{
			name: "alpha out of range",
			request: func() *models.ForecastRequest {
				r := seasonalRequest(24, 4)
				r.Alpha = &badAlpha
				return r
			}(),
			wantCode: CodeInvalidCoefficient,
		},
		{
			name: "negative horizon",
			request: func() *models.ForecastRequest {
				r := seasonalRequest(24, 4)
				r.Horizon = &negHorizon
				return r
			}(),
			wantCode: CodeInvalidHorizon,
		},
		{
			name: "series shorter than period",
			request: func() *models.ForecastRequest {
				r := seasonalRequest(3, 4)
				return r
			}(),
			wantCode: CodeInsufficientSeries,
		},
		{
			name: "all-zero series",
			request: func() *models.ForecastRequest {
				r := seasonalRequest(24, 4)
				for i := range r.Series {
					r.Series[i].Value = 0.0
				}
				return r
			}(),
			wantCode: CodeDegenerateSeasonalMean,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.mutate)
			_, err := svc.Execute(context.Background(), tt.request)
			require.Error(t, err)

			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.wantCode, svcErr.Code)
		})
	}
}
