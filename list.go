// Package hazardlist implements a concurrent sorted multiset of int
// keys as a singly-linked list with per-node locking, optimistic
// validated traversal, and hazard-pointer-style deferred reclamation.
package hazardlist

import (
	"sync"
	"sync/atomic"
)

// List is a concurrent sorted multiset of int keys. The zero value is
// not usable; construct with New.
type List struct {
	head *node

	length    atomic.Int64
	opCounter atomic.Int64

	retireMu   sync.Mutex
	retireList []*node

	hazards hazardTable
	stats   statCounters

	allocate allocator
}

// New creates an empty List.
func New() *List {
	return &List{
		head:     newSentinel(),
		allocate: defaultAllocator,
	}
}

// Close releases the chain. It must not be called while any worker is
// still calling Insert, Remove, Contains, or ScanAndReclaim on this
// list. Doing so is undefined behavior; Close does not detect it.
func (l *List) Close() {
	l.head = nil
	l.retireList = nil
}

// Length returns the approximate, eventually-consistent size of the
// list: successful inserts minus successful removes observed by
// operations that have completed.
func (l *List) Length() int {
	return int(l.length.Load())
}

// Stats returns a snapshot of internal diagnostic counters.
func (l *List) Stats() Stats {
	return l.stats.snapshot()
}

// Dump returns the keys of every reachable, non-removed node in
// traversal order. It does not lock anything and is intended for use
// between operations, or from tests that hold external synchronization.
func (l *List) Dump() []int {
	var keys []int
	for n := l.head.next.Load(); n != nil; n = n.next.Load() {
		if !n.removed.Load() {
			keys = append(keys, n.key)
		}
	}
	return keys
}

// CheckSorted reports whether every pair of adjacent reachable nodes
// satisfies prev.key <= curr.key.
func (l *List) CheckSorted() bool {
	prev := l.head
	for curr := l.head.next.Load(); curr != nil; curr = curr.next.Load() {
		if curr.key < prev.key {
			return false
		}
		prev = curr
	}
	return true
}

// DumpRetireList returns the keys of every node currently awaiting
// reclamation.
func (l *List) DumpRetireList() []int {
	l.retireMu.Lock()
	defer l.retireMu.Unlock()
	keys := make([]int, len(l.retireList))
	for i, n := range l.retireList {
		keys[i] = n.key
	}
	return keys
}
