package analysis

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
)

var bucketStart = time.Date(2021, time.January, 31, 20, 0, 0, 0, time.UTC)

// dayOfBlocks builds 144 blocks spread over 27 consecutive hour buckets that cross a
// date boundary, newest first like a node dump walked from the tip.
func dayOfBlocks() model.BlockTable {
	blocks := make(model.BlockTable, 0, 144)
	n := 0
	for b := 0; b < 27; b++ {
		perBucket := 5
		if b < 9 {
			perBucket = 6
		}
		for j := 0; j < perBucket; j++ {
			blocks = append(blocks, model.Block{
				Hash:      fmt.Sprintf("%064x", n),
				Size:      uint32(1_000_000 + n),
				TXCount:   uint32(2000 + n),
				Timestamp: bucketStart.Add(time.Duration(b)*time.Hour + time.Duration(j)*10*time.Minute),
			})
			n++
		}
	}
	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}
	return blocks
}

func block(hash string, size, txs uint32, ts time.Time) model.Block {
	return model.Block{Hash: hash, Size: size, TXCount: txs, Timestamp: ts}
}

func seconds(s int64) *time.Duration {
	d := time.Duration(s) * time.Second
	return &d
}
