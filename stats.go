package hazardlist

import "sync/atomic"

// statCounters are the atomic counters backing Stats. They are updated
// far less often than one per contended CAS attempt (an insert/remove
// retry is a whole re-traversal, and reclaim passes are amortized), so
// unlike a per-CPU sharded metrics table they live on a single cache
// line; sharding here would trade contention that doesn't exist for
// complexity that would.
type statCounters struct {
	insertRetries atomic.Int64
	removeRetries atomic.Int64
	reclaimPasses atomic.Int64
	nodesFreed    atomic.Int64
}

// Stats is a point-in-time snapshot of internal counters, useful for
// tests asserting contention actually happened and for the CLI
// driver's summary line. It carries no correctness meaning.
type Stats struct {
	InsertRetries int64
	RemoveRetries int64
	ReclaimPasses int64
	NodesFreed    int64
}

func (c *statCounters) snapshot() Stats {
	return Stats{
		InsertRetries: c.insertRetries.Load(),
		RemoveRetries: c.removeRetries.Load(),
		ReclaimPasses: c.reclaimPasses.Load(),
		NodesFreed:    c.nodesFreed.Load(),
	}
}
