// Package envconfig reads engine settings from environment variables.
//
//   - NDARRAY_WORKERS: number of worker goroutines (default: number of CPUs)
//   - NDARRAY_SERIAL: run every loop on the calling goroutine
//   - NDARRAY_MIN_CHUNK: minimum elements per goroutine (default: 64)
//   - NDARRAY_MAX_ELEMENTS: largest allowed array, 0 for no limit
//   - NDARRAY_DEBUG: debug logging
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/internal/parallel"
)

// Var returns an environment variable stripped of whitespace and quotes.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// BoolWithDefault returns a reader for a boolean variable. A set but
// unparsable value counts as true.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool returns a reader for a boolean variable defaulting to false.
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// Uint returns a reader for an unsigned integer variable. Invalid values are
// logged and replaced by defaultValue.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

var (
	// Serial disables parallel loops.
	Serial = Bool("NDARRAY_SERIAL")
	// MinChunk is the minimum number of elements handed to one goroutine.
	MinChunk = Uint("NDARRAY_MIN_CHUNK", 64)
	// MaxElements caps the size of a single array; 0 means unlimited.
	MaxElements = Uint("NDARRAY_MAX_ELEMENTS", 0)
)

// Workers returns the configured worker count, defaulting to the CPU count.
func Workers() int {
	def := parallel.DefaultConfig().NumWorkers
	n := Uint("NDARRAY_WORKERS", uint(def))()
	if n == 0 {
		slog.Warn("NDARRAY_WORKERS must be positive, using default", "default", def)
		return def
	}
	return int(n)
}

// LogLevel returns the log level selected by NDARRAY_DEBUG.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("NDARRAY_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Parallel builds the loop configuration from the environment.
func Parallel() parallel.Config {
	workers := Workers()
	return parallel.Config{
		Enabled:      !Serial() && workers > 1,
		NumWorkers:   workers,
		MinChunkSize: max(int(MinChunk()), 1),
	}
}

// EnvVar describes one setting.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every setting with its current value and description.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"NDARRAY_DEBUG":        {"NDARRAY_DEBUG", LogLevel(), "Show additional debug information (e.g. NDARRAY_DEBUG=1)"},
		"NDARRAY_WORKERS":      {"NDARRAY_WORKERS", Workers(), "Number of worker goroutines for parallel loops"},
		"NDARRAY_SERIAL":       {"NDARRAY_SERIAL", Serial(), "Run all loops on the calling goroutine"},
		"NDARRAY_MIN_CHUNK":    {"NDARRAY_MIN_CHUNK", MinChunk(), "Minimum elements per goroutine (default: 64)"},
		"NDARRAY_MAX_ELEMENTS": {"NDARRAY_MAX_ELEMENTS", MaxElements(), "Largest allowed array in elements, 0 for no limit"},
	}
}

// Values returns every setting formatted as a string.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
