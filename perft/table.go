package perft

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/domino14/draughts/zobrist"
)

const entrySize = 16

// Tables smaller than this are not worth the bookkeeping.
const minSizePowerOf2 = 16

const depthMask = (1 << 8) - 1

// 16 bytes (entrySize)
type tableEntry struct {
	hash uint64
	// node count in the top 56 bits, remaining depth in the low byte. A
	// depth of zero marks an empty slot; depth-0 counts are never stored.
	nodesAndDepth uint64
}

func (t tableEntry) depth() int {
	return int(t.nodesAndDepth & depthMask)
}

func (t tableEntry) nodes() uint64 {
	return t.nodesAndDepth >> 8
}

type TableLock interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type FakeLock struct{}

func (f FakeLock) Lock()    {}
func (f FakeLock) Unlock()  {}
func (f FakeLock) RLock()   {}
func (f FakeLock) RUnlock() {}

// TranspositionTable caches subtree counts by position hash and remaining
// depth. It is a single always-replace slot per index.
type TranspositionTable struct {
	TableLock
	table        []tableEntry
	sizePowerOf2 int
	sizeMask     uint64

	lookups    atomic.Uint64
	hits       atomic.Uint64
	created    atomic.Uint64
	collisions atomic.Uint64

	zobrist *zobrist.Zobrist
}

func NewTranspositionTable(fractionOfMemory float64) *TranspositionTable {
	t := &TranspositionTable{TableLock: FakeLock{}}
	t.Reset(fractionOfMemory)
	return t
}

func (t *TranspositionTable) SetSingleThreadedMode() {
	t.TableLock = FakeLock{}
}

func (t *TranspositionTable) SetMultiThreadedMode() {
	t.TableLock = &sync.RWMutex{}
}

// Reset sizes the table to the largest power of two that fits in the given
// fraction of system memory, and clears it.
func (t *TranspositionTable) Reset(fractionOfMemory float64) {
	if t.TableLock == nil {
		t.TableLock = FakeLock{}
	}
	t.Lock()
	defer t.Unlock()
	totalMem := memory.TotalMemory()
	desiredNElems := fractionOfMemory * (float64(totalMem) / float64(entrySize))
	t.sizePowerOf2 = minSizePowerOf2
	if desiredNElems > 1 {
		t.sizePowerOf2 = max(int(math.Log2(desiredNElems)), minSizePowerOf2)
	}

	numElems := 1 << t.sizePowerOf2
	t.sizeMask = uint64(numElems - 1)
	reset := false
	if len(t.table) == numElems {
		reset = true
		clear(t.table)
	} else {
		t.table = make([]tableEntry, numElems)
	}
	if t.zobrist == nil {
		t.zobrist = &zobrist.Zobrist{}
		t.zobrist.Initialize()
	}

	log.Debug().Int("num-elems", numElems).
		Float64("desired-num-elems", desiredNElems).
		Int("estimated-total-memory-bytes", numElems*entrySize).
		Uint64("total-system-memory-bytes", totalMem).
		Bool("reset", reset).
		Msg("transposition-table-size")

	t.lookups.Store(0)
	t.hits.Store(0)
	t.created.Store(0)
	t.collisions.Store(0)
}

func (t *TranspositionTable) Zobrist() *zobrist.Zobrist {
	return t.zobrist
}

func (t *TranspositionTable) Size() int {
	return len(t.table)
}

func (t *TranspositionTable) lookup(hash uint64, depth int) (uint64, bool) {
	t.RLock()
	defer t.RUnlock()
	t.lookups.Add(1)
	e := t.table[hash&t.sizeMask]
	if e.hash != hash || e.depth() != depth {
		if e.depth() != 0 && e.hash != hash {
			t.collisions.Add(1)
		}
		return 0, false
	}
	t.hits.Add(1)
	return e.nodes(), true
}

func (t *TranspositionTable) store(hash uint64, depth int, nodes uint64) {
	t.Lock()
	defer t.Unlock()
	t.table[hash&t.sizeMask] = tableEntry{
		hash:          hash,
		nodesAndDepth: nodes<<8 | uint64(depth),
	}
	t.created.Add(1)
}

// TableStats is a snapshot of the table counters.
type TableStats struct {
	Lookups    uint64 `json:"lookups" yaml:"lookups"`
	Hits       uint64 `json:"hits" yaml:"hits"`
	Created    uint64 `json:"created" yaml:"created"`
	Collisions uint64 `json:"collisions" yaml:"collisions"`
}

func (t *TranspositionTable) Stats() TableStats {
	return TableStats{
		Lookups:    t.lookups.Load(),
		Hits:       t.hits.Load(),
		Created:    t.created.Load(),
		Collisions: t.collisions.Load(),
	}
}
