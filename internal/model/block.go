package model

// Block is one imported block header. A row is immutable once stored, but a
// reorg repair may overwrite it with a corrected version at the same
// (chain, number) key.
type Block struct {
	Chain       Chain
	BlockNumber uint64
	// Timestamp is unix seconds as reported by the chain. Not guaranteed
	// monotonic across reorgs.
	Timestamp  uint64
	NumTxs     uint64
	Hash       string
	ParentHash string
}

// PrevBlockNumber returns the predecessor height, or false at genesis.
func (b Block) PrevBlockNumber() (uint64, bool) {
	if b.BlockNumber == 0 {
		return 0, false
	}
	return b.BlockNumber - 1, true
}
