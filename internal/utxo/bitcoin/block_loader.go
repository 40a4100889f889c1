package bitcoin

import (
	"io"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
)

// LoadBlocks parses one block record per line into a BlockTable in input order.
//
// Duplicate hashes are resolved last-write-wins: the later record's values replace the
// earlier ones, but the row keeps the position where the hash was first seen.
func LoadBlocks(r io.Reader) (model.BlockTable, error) {
	table := make(model.BlockTable, 0)
	index := make(map[string]int)

	err := scanLines(r, func(data []byte) error {
		rec, err := decodeBlockRecord(data)
		if err != nil {
			return err
		}
		block, err := buildBlock(rec)
		if err != nil {
			return err
		}
		if pos, ok := index[block.Hash]; ok {
			table[pos] = block
			return nil
		}
		index[block.Hash] = len(table)
		table = append(table, block)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}
