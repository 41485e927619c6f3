// seriesgen generates synthetic seasonal time series for exercising the
// forecast API: a linear trend plus a sinusoidal seasonal component and
// optional noise, emitted as CSV or as a ready-to-post JSON request body.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"
)

type observation struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type requestBody struct {
	Series         []observation `json:"series"`
	SeasonalPeriod int           `json:"seasonal_period"`
	Horizon        int           `json:"horizon"`
	Interval       string        `json:"interval"`
}

func main() {
	var (
		n         = flag.Int("n", 48, "Number of observations")
		period    = flag.Int("period", 12, "Seasonal period")
		horizon   = flag.Int("horizon", 12, "Forecast horizon to embed in JSON output")
		base      = flag.Float64("base", 100, "Base level")
		slope     = flag.Float64("slope", 2, "Trend slope per step")
		amplitude = flag.Float64("amplitude", 10, "Seasonal amplitude")
		noise     = flag.Float64("noise", 0, "Uniform noise amplitude")
		seed      = flag.Int64("seed", 1, "Random seed for noise")
		interval  = flag.String("interval", "1h", "Step interval (1m, 5m, 15m, 30m, 1h, 4h, 1d, 1w)")
		start     = flag.String("start", "2026-01-01T00:00:00Z", "Start timestamp (RFC3339)")
		format    = flag.String("format", "json", "Output format: csv or json")
		output    = flag.String("output", "", "Output file (default: stdout)")
	)
	flag.Parse()

	startTime, err := time.Parse(time.RFC3339, *start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid start time: %v\n", err)
		os.Exit(1)
	}
	step, err := time.ParseDuration(normalizeInterval(*interval))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid interval: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	series := make([]observation, *n)
	for i := range series {
		value := *base + *slope*float64(i) +
			*amplitude*math.Sin(2*math.Pi*float64(i)/float64(*period))
		if *noise > 0 {
			value += (rng.Float64()*2 - 1) * *noise
		}
		series[i] = observation{
			Label: startTime.Add(time.Duration(i) * step).Format(time.RFC3339),
			Value: value,
		}
	}

	out := io.Writer(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	switch *format {
	case "csv":
		err = writeCSV(out, series)
	case "json":
		err = writeJSON(out, series, *period, *horizon, *interval)
	default:
		fmt.Fprintf(os.Stderr, "Unsupported format: %s (supported: csv, json)\n", *format)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func writeCSV(w io.Writer, series []observation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"label", "value"}); err != nil {
		return err
	}
	for _, obs := range series {
		if err := cw.Write([]string{obs.Label, strconv.FormatFloat(obs.Value, 'f', -1, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, series []observation, period, horizon int, interval string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(requestBody{
		Series:         series,
		SeasonalPeriod: period,
		Horizon:        horizon,
		Interval:       interval,
	})
}

// normalizeInterval maps the API's interval notation onto what
// time.ParseDuration accepts.
func normalizeInterval(interval string) string {
	switch interval {
	case "1d":
		return "24h"
	case "1w":
		return "168h"
	default:
		return interval
	}
}
