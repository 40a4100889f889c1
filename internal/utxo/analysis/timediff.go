// Package analysis derives feature tables from parsed blocks and merges them into reports.
package analysis

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
)

// TimeDiffs returns, for every block, the time elapsed since the previous row of the table:
// row i holds time[i-1] - time[i]. The table is not re-sorted, so a reverse-chronological
// feed yields positive differences. The first row has no predecessor and a nil TimeDiff.
func TimeDiffs(blocks model.BlockTable) ([]model.BlockTimeDiff, error) {
	if len(blocks) == 0 {
		return nil, &EmptyInputError{Table: "block"}
	}

	diffs := make([]model.BlockTimeDiff, len(blocks))
	diffs[0] = model.BlockTimeDiff{Hash: blocks[0].Hash}
	for i := 1; i < len(blocks); i++ {
		d := blocks[i-1].Timestamp.Sub(blocks[i].Timestamp)
		diffs[i] = model.BlockTimeDiff{Hash: blocks[i].Hash, TimeDiff: durationPtr(d)}
	}
	return diffs, nil
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
