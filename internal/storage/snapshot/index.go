package snapshot

import (
	"sort"
	"sync"
)

// Index answers "what snapshots exist for processor P, in recency order"
// without touching disk. Per-processor entries are kept ascending by
// sequence number; timestamp never participates in the ordering.
//
// The Store owns the index exclusively. Access is guarded by a lock here
// because saves complete on worker goroutines while the hosting journal
// may be querying.
type Index struct {
	mu          sync.RWMutex
	byProcessor map[uint64][]Metadata
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{byProcessor: make(map[uint64][]Metadata)}
}

// RebuildIndex constructs an index from a directory listing. Names that do
// not match the snapshot filename grammar are discarded.
func RebuildIndex(names []string) *Index {
	idx := NewIndex()
	for _, name := range names {
		if m, ok := ParseFilename(name); ok {
			idx.Record(m)
		}
	}
	return idx
}

// Record inserts m into its processor's entries, keeping sequence order.
// Recording the identical triple twice is a no-op. An equal-sequence triple
// with a different timestamp is inserted after the existing run, so the
// most recently recorded one wins a descending walk.
func (x *Index) Record(m Metadata) {
	x.mu.Lock()
	defer x.mu.Unlock()

	set := x.byProcessor[m.ProcessorID]
	i := sort.Search(len(set), func(i int) bool {
		return set[i].SequenceNr > m.SequenceNr
	})

	for j := i - 1; j >= 0 && set[j].SequenceNr == m.SequenceNr; j-- {
		if set[j] == m {
			return
		}
	}

	set = append(set, Metadata{})
	copy(set[i+1:], set[i:])
	set[i] = m
	x.byProcessor[m.ProcessorID] = set
}

// MostRecentMatching returns the processor's metadata satisfying pred,
// newest first. A nil pred matches everything. The result is empty when
// the processor is unknown or nothing matches.
func (x *Index) MostRecentMatching(processorID uint64, pred func(Metadata) bool) []Metadata {
	x.mu.RLock()
	defer x.mu.RUnlock()

	set := x.byProcessor[processorID]
	out := make([]Metadata, 0, len(set))
	for i := len(set) - 1; i >= 0; i-- {
		if pred == nil || pred(set[i]) {
			out = append(out, set[i])
		}
	}
	return out
}

// All returns every known metadata, ordered by processor id then sequence
// number ascending.
func (x *Index) All() []Metadata {
	x.mu.RLock()
	defer x.mu.RUnlock()

	pids := make([]uint64, 0, len(x.byProcessor))
	for pid := range x.byProcessor {
		pids = append(pids, pid)
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

	var out []Metadata
	for _, pid := range pids {
		out = append(out, x.byProcessor[pid]...)
	}
	return out
}

// Len returns the total number of indexed snapshots.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()

	n := 0
	for _, set := range x.byProcessor {
		n += len(set)
	}
	return n
}
