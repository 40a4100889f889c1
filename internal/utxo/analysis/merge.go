package analysis

import (
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
)

// MergeBlockReport inner-joins blocks with their values and then with their time
// differences on block hash. Rows follow block table order; a block missing from either
// feature table is dropped, so a block without transactions never appears.
func MergeBlockReport(blocks model.BlockTable, values model.ValueTable, diffs []model.BlockTimeDiff) []model.BlockReportRow {
	valueByHash := make(map[string]model.BlockValue, len(values))
	for _, v := range values {
		valueByHash[v.Hash] = v
	}
	diffsByHash := make(map[string][]model.BlockTimeDiff, len(diffs))
	for _, d := range diffs {
		diffsByHash[d.Hash] = append(diffsByHash[d.Hash], d)
	}

	rows := make([]model.BlockReportRow, 0, len(blocks))
	for _, block := range blocks {
		value, ok := valueByHash[block.Hash]
		if !ok {
			continue
		}
		for _, diff := range diffsByHash[block.Hash] {
			rows = append(rows, model.BlockReportRow{
				Hash:      block.Hash,
				Size:      block.Size,
				TXCount:   block.TXCount,
				Timestamp: block.Timestamp,
				Value:     value.Value,
				TimeDiff:  diff.TimeDiff,
			})
		}
	}
	return rows
}

// MergeTimeReport inner-joins the per-hour size and transaction tables on date_hour,
// keeping the order of the size table.
func MergeTimeReport(sizes []model.HourSize, txs []model.HourTx) []model.TimeReportRow {
	txByHour := make(map[string]uint64, len(txs))
	for _, tx := range txs {
		txByHour[tx.DateHour] = tx.SumTx
	}

	rows := make([]model.TimeReportRow, 0, len(sizes))
	for _, size := range sizes {
		sumTx, ok := txByHour[size.DateHour]
		if !ok {
			continue
		}
		rows = append(rows, model.TimeReportRow{
			DateHour: size.DateHour,
			AvgSize:  size.AvgSize,
			SumTx:    sumTx,
		})
	}
	return rows
}
