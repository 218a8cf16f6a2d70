package txlog

const (
	// MaxLevel is the hard cap on the number of levels a log may grow to.
	MaxLevel = 32

	// P is the probability of a node being promoted to the next level.
	P = 1.0 / 2.0

	nilIndex int32 = -1
)

// node is one logged entry. Links are arena indices; nilIndex marks the end
// of a lane.
type node[V any] struct {
	offset  uint64
	value   V
	forward []int32
}

func (n *node[V]) level() int {
	return len(n.forward)
}

func newLinks(level int) []int32 {
	links := make([]int32, level)
	for i := range links {
		links[i] = nilIndex
	}
	return links
}
