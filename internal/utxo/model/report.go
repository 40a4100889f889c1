package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BlockReportRow is one row of the per-block report.
type BlockReportRow struct {
	Hash      string
	Size      uint32
	TXCount   uint32
	Timestamp time.Time
	Value     decimal.Decimal
	TimeDiff  *time.Duration
}

// TimeDiffSec returns the time difference in seconds and false if it is undefined.
func (r BlockReportRow) TimeDiffSec() (float64, bool) {
	return BlockTimeDiff{Hash: r.Hash, TimeDiff: r.TimeDiff}.TimeDiffSec()
}

// TimeReportRow is one row of the per-hour report.
type TimeReportRow struct {
	DateHour string
	AvgSize  float64
	SumTx    uint64
}
