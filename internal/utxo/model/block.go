// Package model defines domain models for block feature analysis.
package model

import "time"

// Block is a single parsed block record.
type Block struct {
	Hash      string
	Size      uint32
	TXCount   uint32
	Timestamp time.Time
}

// BlockTable is the ordered set of blocks as read from the input feed.
// Order is significant: time differences are computed between neighbours.
type BlockTable []Block

// Hashes returns the block hashes in table order.
func (t BlockTable) Hashes() []string {
	hashes := make([]string, len(t))
	for i, b := range t {
		hashes[i] = b.Hash
	}
	return hashes
}
