package order

import "sync/atomic"

// Sequence Issues order ids
// Next is a single atomic increment, so ids are unique and ordered by creation even
// when orders are created from several goroutines. One Sequence is shared by all
// orders regardless of their item type.
type Sequence struct {
	last atomic.Int64
}

// NewSequence Create a sequence whose next id is last+1
func NewSequence(last int64) *Sequence {
	s := &Sequence{}
	s.last.Store(last)
	return s
}

// Next Reserve and return the next id
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// Last The most recently issued id (the starting value if none was issued yet)
func (s *Sequence) Last() int64 {
	return s.last.Load()
}
