// Package formatting provides human-readable formatting and parsing of
// byte sizes for configuration values and log output.
package formatting

import (
	"fmt"
	"strconv"
	"strings"
)

var units = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes converts a byte count to a human-readable string using
// base-1024 units. Negative precision values are clamped to zero.
func FormatBytes(n int64, precision int) string {
	if precision < 0 {
		precision = 0
	}

	size := float64(n)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	return strconv.FormatFloat(size, 'f', precision, 64) + " " + units[unit]
}

// ParseBytes parses a human-readable byte size string (e.g. "50MB") into a
// byte count. Unit matching is case-insensitive and an optional space
// between number and unit is allowed; a bare number is treated as bytes.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size string")
	}

	split := len(s)
	for split > 0 && !isDigit(s[split-1]) {
		split--
	}

	number := strings.TrimSpace(s[:split])
	unit := strings.ToUpper(strings.TrimSpace(s[split:]))

	value, err := strconv.ParseFloat(number, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	if unit == "" {
		return int64(value), nil
	}

	for i, u := range units {
		if u == unit {
			for range i {
				value *= 1024
			}
			return int64(value), nil
		}
	}

	return 0, fmt.Errorf("unknown byte size unit: %q", unit)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
