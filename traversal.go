package txlog

// Find returns a copy of the value stored at offset. The boolean is false if
// no entry has that offset.
func (l *Log[V]) Find(offset uint64) (V, bool) {
	idx, hops := l.search(offset)
	l.metrics.recordFind(hops, idx != nilIndex)
	if idx == nilIndex {
		var zero V
		return zero, false
	}
	return l.arena.at(idx).value, true
}

// Contains reports whether an entry exists at offset.
func (l *Log[V]) Contains(offset uint64) bool {
	_, ok := l.Find(offset)
	return ok
}

// search walks from the top lane down. The walk starts before the first node
// rather than at it, so lanes the first node does not reach are still used.
func (l *Log[V]) search(target uint64) (found int32, hops int) {
	if l.Empty() {
		return nilIndex, 0
	}

	cur := nilIndex
	for level := l.maxLevel; level >= 0; level-- {
		for {
			next := l.successor(cur, level)
			if next == nilIndex || l.arena.at(next).offset > target {
				break
			}
			cur = next
			hops++
		}

		if searchStepHook != nil {
			searchStepHook(level, cur)
		}

		if cur != nilIndex && l.arena.at(cur).offset == target {
			return cur, hops
		}
	}
	return nilIndex, hops
}

func (l *Log[V]) successor(cur int32, level int) int32 {
	if cur == nilIndex {
		return l.heads[level]
	}
	return l.arena.next(cur, level)
}
