package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const timestampLayout = "2006-01-02 15:04:05"

// formatFloat renders v in shortest round-trip form, switching to exponent notation
// outside [1e-4, 1e16) and always keeping a fractional part ("1612.0").
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e16 || abs < 1e-4 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatDecimal renders an exact value in plain notation with at least one fractional digit.
func formatDecimal(v decimal.Decimal) string {
	s := v.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatTimedelta renders d as "{days} days {HH:MM:SS}[.ffffff]". Days are floored, so
// negative durations print as "-1 days +23:48:19". The long form is used even when every
// value of a column is a whole number of days, where pandas would print "N days".
func formatTimedelta(d time.Duration) string {
	const day = 24 * time.Hour

	days := d / day
	rem := d % day
	if rem < 0 {
		days--
		rem += day
	}
	hours := rem / time.Hour
	rem -= hours * time.Hour
	minutes := rem / time.Minute
	rem -= minutes * time.Minute
	secs := rem / time.Second
	rem -= secs * time.Second

	sep := " "
	if days < 0 {
		sep = " +"
	}
	out := fmt.Sprintf("%d days%s%02d:%02d:%02d", int64(days), sep, int64(hours), int64(minutes), int64(secs))
	if rem > 0 {
		out += fmt.Sprintf(".%06d", int64(rem/time.Microsecond))
	}
	return out
}

func formatTimestamp(ts time.Time) string {
	return ts.UTC().Format(timestampLayout)
}
