package bitcoin

import (
	"bufio"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

// maxLineSize bounds a single JSON record; verbose blocks with thousands of txs run to megabytes.
const maxLineSize = 256 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// blockRecord is the subset of a getblock result the analyzer reads.
// Pointer fields distinguish a missing field from a zero value.
type blockRecord struct {
	Hash *string                `json:"hash"`
	Size *int64                 `json:"size"`
	Tx   *[]jsoniter.RawMessage `json:"tx"`
	Time *int64                 `json:"time"`
}

// txRecord is the subset of a getrawtransaction result the analyzer reads.
type txRecord struct {
	BlockHash *string       `json:"blockhash"`
	Vout      *[]voutRecord `json:"vout"`
}

// voutRecord decodes value straight from the JSON number text so no float rounding applies.
type voutRecord struct {
	Value *decimal.Decimal `json:"value"`
}

func decodeBlockRecord(data []byte) (blockRecord, error) {
	if !json.Valid(data) {
		return blockRecord{}, fmt.Errorf("decode block: %w", ErrMalformedJSON)
	}
	var rec blockRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return blockRecord{}, fmt.Errorf("decode block: %w", err)
	}
	switch {
	case rec.Hash == nil:
		return blockRecord{}, missingField("hash")
	case rec.Size == nil:
		return blockRecord{}, missingField("size")
	case rec.Tx == nil:
		return blockRecord{}, missingField("tx")
	case rec.Time == nil:
		return blockRecord{}, missingField("time")
	}
	return rec, nil
}

func decodeTxRecord(data []byte) (txRecord, error) {
	if !json.Valid(data) {
		return txRecord{}, fmt.Errorf("decode transaction: %w", ErrMalformedJSON)
	}
	var rec txRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return txRecord{}, fmt.Errorf("decode transaction: %w", err)
	}
	if rec.BlockHash == nil {
		return txRecord{}, missingField("blockhash")
	}
	if rec.Vout == nil {
		return txRecord{}, missingField("vout")
	}
	for idx, vout := range *rec.Vout {
		if vout.Value == nil {
			return txRecord{}, fmt.Errorf("vout %d: %w", idx, missingField("value"))
		}
	}
	return rec, nil
}

// scanLines calls fn for every line of r with its 1-based line number.
// An error from fn is wrapped in a ParseError and stops the scan.
func scanLines(r io.Reader, fn func(data []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		if err := fn(scanner.Bytes()); err != nil {
			return &ParseError{Line: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", line+1, err)
	}
	return nil
}
