package txlog

// Iterator is a forward-only cursor over a log in offset order.
type Iterator[V any] struct {
	l   *Log[V]
	cur int32
	// last is the most recent entry visited, kept after the iterator runs
	// off the end so that Next can pick up later appends.
	last int32
}

// Iterator returns a new iterator positioned before the first entry.
func (l *Log[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{l: l, cur: nilIndex, last: nilIndex}
}

// Valid reports whether the iterator currently points at an entry.
func (it *Iterator[V]) Valid() bool {
	return it != nil && it.cur != nilIndex
}

// Next advances to the next entry and reports whether one exists. The first
// call moves to the first entry. An exhausted iterator resumes after the last
// entry it visited once more entries are appended.
func (it *Iterator[V]) Next() bool {
	if it == nil || it.l == nil {
		return false
	}
	switch {
	case it.cur != nilIndex:
		it.last = it.cur
		it.cur = it.l.arena.next(it.cur, 0)
	case it.last != nilIndex:
		it.cur = it.l.arena.next(it.last, 0)
	default:
		it.cur = it.l.heads[0]
	}
	return it.cur != nilIndex
}

// Offset returns the offset at the iterator's position.
// It should only be called when Valid reports true.
func (it *Iterator[V]) Offset() uint64 {
	if !it.Valid() {
		return 0
	}
	return it.l.arena.at(it.cur).offset
}

// Value returns the value at the iterator's position.
// It should only be called when Valid reports true.
func (it *Iterator[V]) Value() V {
	var zero V
	if !it.Valid() {
		return zero
	}
	return it.l.arena.at(it.cur).value
}

// Level returns how many lanes the current entry spans.
func (it *Iterator[V]) Level() int {
	if !it.Valid() {
		return 0
	}
	return it.l.arena.at(it.cur).level()
}
