package txlog

// Append adds an entry at offset. It accepts any offset and value.
//
// Offsets must be supplied in strictly increasing order; Append does not
// check this and Find gives unspecified results for a log built out of
// order. Use AppendChecked to have the order enforced.
//
// The first entry spans lanes 0 through MaxLevel. Later entries draw a level
// by flipping the coin up to the current ceiling; a draw that reaches the
// ceiling gets one more flip and, if it comes up true, raises the ceiling by
// one lane (never past the WithMaxLevel cap). This keeps lookups logarithmic
// as the log grows.
//
// Append panics if the log already holds 2^31-1 entries.
func (l *Log[V]) Append(offset uint64, value V) {
	l.arena.reserve()

	var level int
	if l.Empty() {
		// The first entry spans every lane up to the current ceiling.
		level = 1 + l.maxLevel
	} else {
		level = 1 + l.randomLevel()
	}

	idx := l.arena.alloc(offset, value, level)
	for i := 0; i < level; i++ {
		if prev := l.tails[i]; prev != nilIndex {
			l.arena.at(prev).forward[i] = idx
		} else {
			l.heads[i] = idx
		}
		l.tails[i] = idx
	}

	l.length++
	l.metrics.recordAppend(level)
}

// randomLevel flips the coin until it comes up false or the ceiling is
// reached. A draw that saturates the ceiling gets one more flip to raise it,
// bounded by the configured maximum.
func (l *Log[V]) randomLevel() int {
	n := 0
	for n < l.maxLevel && l.coin.Flip() {
		n++
	}
	if n == l.maxLevel && l.maxLevel+1 < l.cfg.maxLevel && l.coin.Flip() {
		l.grow()
		n = l.maxLevel
	}
	return n
}

// grow adds one lane on top of the current ceiling.
func (l *Log[V]) grow() {
	l.maxLevel++
	l.heads = append(l.heads, nilIndex)
	l.tails = append(l.tails, nilIndex)
}
