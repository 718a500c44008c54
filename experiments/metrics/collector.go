package metrics

import (
	"time"
)

// SearchMetric describes one move search.
type SearchMetric struct {
	Depth     int
	Adversary string
	Pruning   bool
	Duration  time.Duration
	Explored  int // children applied and searched
	Pruned    int // alpha-beta cutoffs
	CacheHits int
	CacheSize int
	Score     int
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	X      int
	Y      int
	SearchMetric
}

type GameMetric struct {
	Players    int
	BoardSize  int
	Winner     int // Player ID, 0 when the turn cap was hit
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector accumulates search statistics. Searches are single-threaded, so
// collectors are not synchronized.
type Collector interface {
	Start(depth int, adversary string, pruning bool)
	AddExplored()
	AddPruned()
	AddCacheHit()
	Complete(score, cacheSize int) SearchMetric
}

type collector struct {
	depth     int
	adversary string
	pruning   bool
	startTime time.Time
	explored  int
	pruned    int
	cacheHits int
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth int, adversary string, pruning bool) {
	*m = collector{
		depth:     depth,
		adversary: adversary,
		pruning:   pruning,
		startTime: time.Now(),
	}
}

func (m *collector) AddExplored() {
	m.explored++
}

func (m *collector) AddPruned() {
	m.pruned++
}

func (m *collector) AddCacheHit() {
	m.cacheHits++
}

func (m *collector) Complete(score, cacheSize int) SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Adversary: m.adversary,
		Pruning:   m.pruning,
		Duration:  time.Since(m.startTime),
		Explored:  m.explored,
		Pruned:    m.pruned,
		CacheHits: m.cacheHits,
		CacheSize: cacheSize,
		Score:     score,
	}
}
