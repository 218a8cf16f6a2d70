package txlog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedCoin replays a fixed sequence of flips and returns false once it
// runs out.
type scriptedCoin struct {
	flips []bool
	next  int
}

func (c *scriptedCoin) Flip() bool {
	if c.next >= len(c.flips) {
		return false
	}
	f := c.flips[c.next]
	c.next++
	return f
}

func always(v bool) Coin {
	return CoinFunc(func() bool { return v })
}

// requireWellFormed checks the lane and tail invariants of l.
func requireWellFormed[V any](t *testing.T, l *Log[V]) {
	t.Helper()

	lanes := l.Levels()
	require.Len(t, lanes, l.MaxLevel()+1)
	require.Len(t, l.heads, l.MaxLevel()+1)
	require.Len(t, l.tails, l.MaxLevel()+1)
	require.Len(t, lanes[0], int(l.Len()))

	for level, lane := range lanes {
		for i := 1; i < len(lane); i++ {
			require.Less(t, lane[i-1], lane[i], "lane %d out of order at %d", level, i)
		}
		if level > 0 {
			require.Subset(t, lanes[level-1], lane, "lane %d is not a subsequence of lane %d", level, level-1)
		}

		if len(lane) == 0 {
			require.Equal(t, nilIndex, l.tails[level])
			continue
		}
		require.Equal(t, lane[len(lane)-1], l.arena.at(l.tails[level]).offset, "tail of lane %d", level)
	}

	for i := 0; i < l.arena.len(); i++ {
		require.LessOrEqual(t, l.arena.at(int32(i)).level(), l.MaxLevel()+1)
	}
}
