package txlog

import "sync/atomic"

// Stats is a point-in-time view of a log's counters.
type Stats struct {
	Appends uint64
	Lookups uint64
	Hits    uint64
	// Hops counts forward links followed by all lookups.
	Hops uint64
	// LevelCounts[i] is the number of entries spanning exactly i+1 lanes.
	LevelCounts []uint64
}

// HopsPerLookup returns the mean number of links followed per lookup.
func (s Stats) HopsPerLookup() float64 {
	if s.Lookups == 0 {
		return 0
	}
	return float64(s.Hops) / float64(s.Lookups)
}

// metrics counters are atomic so that lookups running under a shared lock
// can record them.
type metrics struct {
	appends atomic.Uint64
	lookups atomic.Uint64
	hits    atomic.Uint64
	hops    atomic.Uint64
	levels  [MaxLevel]atomic.Uint64
}

func (m *metrics) recordAppend(level int) {
	m.appends.Add(1)
	m.levels[level-1].Add(1)
}

func (m *metrics) recordFind(hops int, hit bool) {
	m.lookups.Add(1)
	m.hops.Add(uint64(hops))
	if hit {
		m.hits.Add(1)
	}
}

func (m *metrics) snapshot(maxLevel int) Stats {
	s := Stats{
		Appends:     m.appends.Load(),
		Lookups:     m.lookups.Load(),
		Hits:        m.hits.Load(),
		Hops:        m.hops.Load(),
		LevelCounts: make([]uint64, maxLevel+1),
	}
	for i := range s.LevelCounts {
		s.LevelCounts[i] = m.levels[i].Load()
	}
	return s
}
