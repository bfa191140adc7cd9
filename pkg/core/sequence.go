package core

import "sync/atomic"

// Sequence hands out unique, strictly increasing note ids. The zero value is
// ready to use; the first id is 1. Safe for concurrent use.
type Sequence struct {
	n atomic.Int64
}

// NewSequence returns a fresh Sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next id in the sequence.
func (s *Sequence) Next() int {
	return int(s.n.Add(1))
}

// defaultSequence backs every Notebook not given its own Sequence, so ids
// never collide across notebooks within one process.
var defaultSequence = NewSequence()
