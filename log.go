package txlog

import (
	"errors"
	"fmt"
)

// ErrOffsetOutOfOrder is returned by AppendChecked when an offset does not
// follow the last appended one.
var ErrOffsetOutOfOrder = errors.New("txlog: offset out of order")

// Log is an append-only sequence of entries indexed by offset. Entries live
// in an arena and are threaded onto up to MaxLevel lanes, giving expected
// O(log n) lookups by exact offset.
//
// A Log is not safe for concurrent use; wrap it in Locked or serialize calls
// externally.
type Log[V any] struct {
	arena arena[V]

	// heads[i] is the first node on lane i, tails[i] the last one.
	heads []int32
	tails []int32

	// maxLevel is the index of the highest lane allocated so far.
	maxLevel int
	length   uint64

	cfg     Config
	coin    Coin
	metrics metrics
}

// New returns an empty Log.
func New[V any](opts ...Option) *Log[V] {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	coin := cfg.coin
	if coin == nil {
		coin = NewRNG()
	}
	return &Log[V]{
		arena: newArena[V](cfg.capacity),
		heads: []int32{nilIndex},
		tails: []int32{nilIndex},
		cfg:   cfg,
		coin:  coin,
	}
}

// Len returns the number of appended entries.
func (l *Log[V]) Len() uint64 {
	return l.length
}

// MaxLevel returns the index of the highest lane any entry has reached. It
// never decreases and grows by at most one per Append; see Append.
func (l *Log[V]) MaxLevel() int {
	return l.maxLevel
}

// Empty reports whether nothing has been appended yet.
func (l *Log[V]) Empty() bool {
	return l.heads[0] == nilIndex
}

// LastOffset returns the offset of the most recently appended entry.
func (l *Log[V]) LastOffset() (uint64, bool) {
	last := l.tails[0]
	if last == nilIndex {
		return 0, false
	}
	return l.arena.at(last).offset, true
}

// AppendChecked is Append with the ordering precondition enforced: the
// offset must be strictly greater than LastOffset. On error the log is left
// untouched.
func (l *Log[V]) AppendChecked(offset uint64, value V) error {
	if last, ok := l.LastOffset(); ok && offset <= last {
		return fmt.Errorf("%w: %d does not follow %d", ErrOffsetOutOfOrder, offset, last)
	}
	l.Append(offset, value)
	return nil
}

// Levels returns, for every lane from 0 to MaxLevel, the offsets linked on it
// in lane order.
func (l *Log[V]) Levels() [][]uint64 {
	lanes := make([][]uint64, l.maxLevel+1)
	for level := range lanes {
		lane := make([]uint64, 0)
		for idx := l.heads[level]; idx != nilIndex; idx = l.arena.next(idx, level) {
			lane = append(lane, l.arena.at(idx).offset)
		}
		lanes[level] = lane
	}
	return lanes
}

// Stats returns a snapshot of the log's counters.
func (l *Log[V]) Stats() Stats {
	return l.metrics.snapshot(l.maxLevel)
}
