package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tricasthq/tricast/internal/cache"
	"github.com/tricasthq/tricast/internal/config"
	"github.com/tricasthq/tricast/internal/logging"
	"github.com/tricasthq/tricast/internal/models"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Forecast.SeasonalPeriod = 4
	cfg.Forecast.Horizon = 4

	responseCache, err := cache.New(cfg.Cache)
	require.NoError(t, err)
	t.Cleanup(func() { responseCache.Close() })

	logger := logging.NewWithWriter(io.Discard, zerolog.Disabled)
	h := New(logger, responseCache, cfg)

	app := fiber.New()
	app.Get("/health", h.Health)
	app.Post("/v1/forecast", h.ForecastPost)
	app.Use(h.NotFound)
	return app
}

func postForecast(t *testing.T, app *fiber.App, body interface{}) (*models.ForecastResponse, *models.ErrorResponse, int) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/v1/forecast", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if resp.StatusCode == fiber.StatusOK {
		var out models.ForecastResponse
		require.NoError(t, json.Unmarshal(raw, &out))
		return &out, nil, resp.StatusCode
	}

	var errOut models.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errOut))
	return nil, &errOut, resp.StatusCode
}

func seasonalBody(n, period int) *models.ForecastRequest {
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

func TestForecastPost(t *testing.T) {
	app := newTestApp(t)

	resp, errResp, status := postForecast(t, app, seasonalBody(24, 4))
	require.Nil(t, errResp)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, resp.Points, 24+4)
	assert.Equal(t, "holt_winters", resp.ModelInfo.Algorithm)
	assert.False(t, resp.Cached)

	// Same request again is a cache hit.
	resp2, _, status2 := postForecast(t, app, seasonalBody(24, 4))
	assert.Equal(t, fiber.StatusOK, status2)
	assert.True(t, resp2.Cached)
}

func TestForecastPost_InvalidJSON(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/v1/forecast", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestForecastPost_ErrorStatuses(t *testing.T) {
	badAlpha := -0.1
	negHorizon := -3

	tests := []struct {
		name       string
		body       *models.ForecastRequest
		wantStatus int
		wantCode   string
	}{
		{
			name:       "empty series",
			body:       &models.ForecastRequest{},
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "INVALID_SERIES",
		},
		{
			name: "coefficient out of range",
			body: func() *models.ForecastRequest {
				b := seasonalBody(24, 4)
				b.Alpha = &badAlpha
				return b
			}(),
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "INVALID_COEFFICIENT",
		},
		{
			name: "negative horizon",
			body: func() *models.ForecastRequest {
				b := seasonalBody(24, 4)
				b.Horizon = &negHorizon
				return b
			}(),
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "INVALID_HORIZON",
		},
		{
			name: "unsupported interval",
			body: func() *models.ForecastRequest {
				b := seasonalBody(24, 4)
				b.Interval = "fortnightly"
				return b
			}(),
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "INVALID_INTERVAL",
		},
		{
			name:       "series shorter than period",
			body:       seasonalBody(4, 4),
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "INSUFFICIENT_SERIES",
		},
		{
			name: "all-zero series",
			body: func() *models.ForecastRequest {
				b := seasonalBody(24, 4)
				for i := range b.Series {
					b.Series[i].Value = 0.0
				}
				return b
			}(),
			wantStatus: fiber.StatusUnprocessableEntity,
			wantCode:   "DEGENERATE_SEASONAL_MEAN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			_, errResp, status := postForecast(t, app, tt.body)
			require.NotNil(t, errResp)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, errResp.Error.Code)
		})
	}
}

func TestForecastPost_ForecastPointTimes(t *testing.T) {
	app := newTestApp(t)
	body := seasonalBody(24, 4)

	resp, _, status := postForecast(t, app, body)
	require.Equal(t, fiber.StatusOK, status)

	last, err := time.Parse(time.RFC3339, body.Series[23].Label)
	require.NoError(t, err)
	for h := 1; h <= 4; h++ {
		point := resp.Points[23+h]
		assert.True(t, point.Forecast)
		assert.Equal(t, last.Add(time.Duration(h)*time.Hour).Format(time.RFC3339), point.Label,
			fmt.Sprintf("forecast step %d", h))
	}
}
