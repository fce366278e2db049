package paging

import "context"

// Sequence is a lazy pull-based item sequence. Iterator implements it, and
// Map and Filter wrap any Sequence without touching the underlying fetch
// state machine.
type Sequence interface {
	Next(ctx context.Context) bool
	Item() any
	Err() error
}

type mapSequence struct {
	src  Sequence
	fn   func(any) any
	item any
}

func (s *mapSequence) Next(ctx context.Context) bool {
	if !s.src.Next(ctx) {
		return false
	}
	s.item = s.fn(s.src.Item())
	return true
}

func (s *mapSequence) Item() any  { return s.item }
func (s *mapSequence) Err() error { return s.src.Err() }

// Map returns a sequence that applies fn to every item.
func Map(seq Sequence, fn func(any) any) Sequence {
	return &mapSequence{src: seq, fn: fn}
}

type filterSequence struct {
	src  Sequence
	keep func(any) bool
}

func (s *filterSequence) Next(ctx context.Context) bool {
	for s.src.Next(ctx) {
		if s.keep(s.src.Item()) {
			return true
		}
	}
	return false
}

func (s *filterSequence) Item() any  { return s.src.Item() }
func (s *filterSequence) Err() error { return s.src.Err() }

// Filter returns a sequence that yields only items for which keep returns
// true.
func Filter(seq Sequence, keep func(any) bool) Sequence {
	return &filterSequence{src: seq, keep: keep}
}

// Collect drains a sequence into a slice. It returns the items gathered so
// far alongside any iteration error.
func Collect(ctx context.Context, seq Sequence) ([]any, error) {
	items := make([]any, 0)
	for seq.Next(ctx) {
		items = append(items, seq.Item())
	}
	return items, seq.Err()
}
