package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BlockValue is the summed output value, in BTC, of every transaction referencing a block.
// The sum is exact: no rounding to whole satoshis.
type BlockValue struct {
	Hash  string
	Value decimal.Decimal
}

// ValueTable holds one BlockValue per distinct block hash. Its order is not significant.
type ValueTable []BlockValue

// BlockTimeDiff is the elapsed time between a block and its predecessor in table order.
// TimeDiff is nil for the first row of a table.
type BlockTimeDiff struct {
	Hash     string
	TimeDiff *time.Duration
}

// TimeDiffSec returns the time difference in seconds and false if it is undefined.
func (d BlockTimeDiff) TimeDiffSec() (float64, bool) {
	if d.TimeDiff == nil {
		return 0, false
	}
	return d.TimeDiff.Seconds(), true
}

// BucketKey groups blocks by calendar date and hour of day (UTC).
type BucketKey struct {
	Year  int
	Month time.Month
	Day   int
	Hour  int
}

// NewBucketKey derives the bucket of a timestamp in UTC.
func NewBucketKey(ts time.Time) BucketKey {
	ts = ts.UTC()
	y, m, d := ts.Date()
	return BucketKey{Year: y, Month: m, Day: d, Hour: ts.Hour()}
}

// Less orders keys by (date, hour).
func (k BucketKey) Less(other BucketKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	if k.Month != other.Month {
		return k.Month < other.Month
	}
	if k.Day != other.Day {
		return k.Day < other.Day
	}
	return k.Hour < other.Hour
}

// String serialises the key as "{date}_{hour}H", e.g. "2021-03-04_9H".
func (k BucketKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d_%dH", k.Year, int(k.Month), k.Day, k.Hour)
}

// HourSize is the mean block size of a bucket.
type HourSize struct {
	DateHour string
	AvgSize  float64
}

// HourTx is the summed transaction count of a bucket.
type HourTx struct {
	DateHour string
	SumTx    uint64
}
