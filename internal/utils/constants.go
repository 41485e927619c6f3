package utils

import "time"

// HTTP handler timeouts
const (
	// DefaultRequestTimeout is the default timeout for HTTP requests
	DefaultRequestTimeout = 30 * time.Second

	// CacheOpTimeout is the timeout for cache lookups and stores
	CacheOpTimeout = 2 * time.Second
)

var intervalDurations = map[string]time.Duration{
	"1m":  time.Minute,
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"30m": 30 * time.Minute,
	"1h":  time.Hour,
	"4h":  4 * time.Hour,
	"1d":  24 * time.Hour,
	"1w":  7 * 24 * time.Hour,
}

// ValidInterval reports whether interval is a supported interval string.
// Callers should reject unsupported intervals before ParseInterval is used
// for label arithmetic.
func ValidInterval(interval string) bool {
	_, ok := intervalDurations[interval]
	return ok
}

// ParseInterval converts an interval string to a duration. Unknown strings
// fall back to one hour.
func ParseInterval(interval string) time.Duration {
	if d, ok := intervalDurations[interval]; ok {
		return d
	}
	return time.Hour
}
