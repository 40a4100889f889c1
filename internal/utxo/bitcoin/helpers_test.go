package bitcoin

import (
	"fmt"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcjson"
)

func blockLine(t *testing.T, hash string, size int32, txCount int, unix int64) string {
	t.Helper()

	txids := make([]string, txCount)
	for i := range txids {
		txids[i] = fmt.Sprintf("%s-tx%d", hash, i)
	}
	data, err := json.Marshal(btcjson.GetBlockVerboseResult{
		Hash:       hash,
		Size:       size,
		Height:     800_000,
		Version:    0x20000000,
		MerkleRoot: "root",
		Tx:         txids,
		Time:       unix,
		Bits:       "17053894",
	})
	if err != nil {
		t.Fatalf("marshal block: %v", err)
	}
	return string(data)
}

func txLine(t *testing.T, blockHash string, values ...float64) string {
	t.Helper()

	vouts := make([]btcjson.Vout, len(values))
	for i, v := range values {
		vouts[i] = btcjson.Vout{Value: v, N: uint32(i)}
	}
	data, err := json.Marshal(btcjson.TxRawResult{
		Txid:      fmt.Sprintf("%s-%d", blockHash, len(values)),
		Version:   2,
		Vout:      vouts,
		BlockHash: blockHash,
	})
	if err != nil {
		t.Fatalf("marshal tx: %v", err)
	}
	return string(data)
}

func lines(l ...string) *strings.Reader {
	return strings.NewReader(linesString(l...))
}

func linesString(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}
