// Package bitcoin parses Bitcoin node JSON dumps into analysis tables.
package bitcoin

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/pkg/safe"
	"github.com/shopspring/decimal"
)

// buildBlock maps a decoded record into a model.Block.
func buildBlock(src blockRecord) (model.Block, error) {
	size, err := safe.Uint32(*src.Size)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %s size overflow: %w", *src.Hash, err)
	}
	txCount, err := safe.Uint32(len(*src.Tx))
	if err != nil {
		return model.Block{}, fmt.Errorf("block %s tx count overflow: %w", *src.Hash, err)
	}

	return model.Block{
		Hash:      *src.Hash,
		Size:      size,
		TXCount:   txCount,
		Timestamp: time.Unix(*src.Time, 0).UTC(),
	}, nil
}

// outputsValue sums the vout values of a decoded transaction as given, sign and precision included.
func outputsValue(src txRecord) decimal.Decimal {
	total := decimal.Zero
	for _, vout := range *src.Vout {
		total = total.Add(*vout.Value)
	}
	return total
}
