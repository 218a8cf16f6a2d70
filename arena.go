package txlog

import (
	"fmt"
	"math"
)

// arenaLimit is the number of nodes an arena can address with int32 links.
var arenaLimit = math.MaxInt32

// arena owns every node of a log. Nodes are never freed or moved once
// allocated, so an index stays valid for the lifetime of the log.
type arena[V any] struct {
	nodes []node[V]
}

func newArena[V any](capacity int) arena[V] {
	if capacity < 0 {
		capacity = 0
	}
	return arena[V]{nodes: make([]node[V], 0, capacity)}
}

// alloc appends a node with level unlinked forward slots and returns its index.
func (a *arena[V]) alloc(offset uint64, value V, level int) int32 {
	a.nodes = append(a.nodes, node[V]{
		offset:  offset,
		value:   value,
		forward: newLinks(level),
	})
	return int32(len(a.nodes) - 1)
}

// reserve panics if another node would not be addressable.
func (a *arena[V]) reserve() {
	if len(a.nodes) >= arenaLimit {
		panic(fmt.Sprintf("txlog: log is full at %d entries", arenaLimit))
	}
}

func (a *arena[V]) at(idx int32) *node[V] {
	return &a.nodes[idx]
}

// next returns the successor of idx at level, or nilIndex when idx is the
// last node of that lane or does not participate in it.
func (a *arena[V]) next(idx int32, level int) int32 {
	n := &a.nodes[idx]
	if level >= len(n.forward) {
		return nilIndex
	}
	return n.forward[level]
}

func (a *arena[V]) len() int {
	return len(a.nodes)
}
