// Package report serialises analysis reports to semicolon-delimited files.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
)

const (
	// BlockReportFile is the file name of the per-block report.
	BlockReportFile = "blocks_info.csv"
	// TimeReportFile is the file name of the per-hour report.
	TimeReportFile = "blocks_t_info.csv"

	delimiter = ';'
)

var (
	blockReportHeader = []string{"hash", "size", "num_tx", "time", "value", "timediff", "timediff_sec"}
	timeReportHeader  = []string{"date_hour", "avg_size", "sum_tx"}
)

// EncodeBlockReport writes the per-block report with a header row and no index column.
func EncodeBlockReport(w io.Writer, rows []model.BlockReportRow) error {
	return encode(w, blockReportHeader, len(rows), func(i int) []string {
		row := rows[i]
		timeDiff, timeDiffSec := "", ""
		if row.TimeDiff != nil {
			timeDiff = formatTimedelta(*row.TimeDiff)
			timeDiffSec = formatFloat(row.TimeDiff.Seconds())
		}
		return []string{
			row.Hash,
			strconv.FormatUint(uint64(row.Size), 10),
			strconv.FormatUint(uint64(row.TXCount), 10),
			formatTimestamp(row.Timestamp),
			formatDecimal(row.Value),
			timeDiff,
			timeDiffSec,
		}
	})
}

// EncodeTimeReport writes the per-hour report with a header row and no index column.
func EncodeTimeReport(w io.Writer, rows []model.TimeReportRow) error {
	return encode(w, timeReportHeader, len(rows), func(i int) []string {
		row := rows[i]
		return []string{
			row.DateHour,
			formatFloat(row.AvgSize),
			strconv.FormatUint(row.SumTx, 10),
		}
	})
}

func encode(w io.Writer, header []string, n int, record func(i int) []string) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := cw.Write(record(i)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
