package analysis

import (
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
)

type bucket struct {
	key     model.BucketKey
	size    uint64
	txCount uint64
	blocks  int
}

// HourBuckets groups blocks by UTC (date, hour) and returns the mean block size and the
// summed transaction count per bucket. Both tables are ordered by (date, hour) and share
// the same keys; the key is serialised only after sorting because "10H" sorts before
// "9H" as a string.
func HourBuckets(blocks model.BlockTable) ([]model.HourSize, []model.HourTx) {
	buckets := groupByHour(blocks)

	sizes := make([]model.HourSize, len(buckets))
	txs := make([]model.HourTx, len(buckets))
	for i, b := range buckets {
		dateHour := b.key.String()
		sizes[i] = model.HourSize{DateHour: dateHour, AvgSize: float64(b.size) / float64(b.blocks)}
		txs[i] = model.HourTx{DateHour: dateHour, SumTx: b.txCount}
	}
	return sizes, txs
}

func groupByHour(blocks model.BlockTable) []bucket {
	index := make(map[model.BucketKey]int)
	buckets := make([]bucket, 0)
	for _, block := range blocks {
		key := model.NewBucketKey(block.Timestamp)
		pos, ok := index[key]
		if !ok {
			pos = len(buckets)
			index[key] = pos
			buckets = append(buckets, bucket{key: key})
		}
		buckets[pos].size += uint64(block.Size)
		buckets[pos].txCount += uint64(block.TXCount)
		buckets[pos].blocks++
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].key.Less(buckets[j].key)
	})
	return buckets
}
