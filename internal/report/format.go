// Package report renders metrics reports for terminals.
package report

import (
	"fmt"
	"math"
	"strings"
)

const notAvailable = "N/A"

// FormatDuration renders seconds as "1d 2h 3m 4s". Days are shown only when
// non-zero, nil is "N/A".
func FormatDuration(seconds *int64) string {
	if seconds == nil {
		return notAvailable
	}
	return formatSeconds(*seconds)
}

// FormatAverage is FormatDuration for aggregated values; fractions are dropped.
func FormatAverage(seconds *float64) string {
	if seconds == nil || math.IsNaN(*seconds) {
		return notAvailable
	}
	return formatSeconds(int64(math.Floor(*seconds)))
}

func formatSeconds(total int64) string {
	if total < 0 {
		total = 0
	}
	d := total / 86400
	h := total % 86400 / 3600
	m := total % 3600 / 60
	s := total % 60

	parts := make([]string, 0, 4)
	if d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	parts = append(parts, fmt.Sprintf("%dh", h), fmt.Sprintf("%dm", m), fmt.Sprintf("%ds", s))
	return strings.Join(parts, " ")
}
