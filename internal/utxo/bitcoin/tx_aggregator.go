package bitcoin

import (
	"io"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
	"github.com/shopspring/decimal"
)

// AggregateValues sums the output values of every transaction line per block hash.
// Blocks without transactions get no entry. Rows are in first-seen order.
func AggregateValues(r io.Reader) (model.ValueTable, error) {
	order := make([]string, 0)
	sums := make(map[string]decimal.Decimal)

	err := scanLines(r, func(data []byte) error {
		rec, err := decodeTxRecord(data)
		if err != nil {
			return err
		}
		hash := *rec.BlockHash
		if _, ok := sums[hash]; !ok {
			order = append(order, hash)
		}
		sums[hash] = sums[hash].Add(outputsValue(rec))
		return nil
	})
	if err != nil {
		return nil, err
	}

	table := make(model.ValueTable, len(order))
	for i, hash := range order {
		table[i] = model.BlockValue{Hash: hash, Value: sums[hash]}
	}
	return table, nil
}
