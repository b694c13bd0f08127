package hazardlist

import "github.com/pkg/errors"

// validate checks that pred has not been unlinked, that curr (if any)
// has not been logically removed, and that pred is still immediately
// followed by curr. curr == nil validly matches pred.next == nil: the
// tail case, where only pred's lock is held.
func validate(pred, curr *node) bool {
	if pred.removed.Load() {
		return false
	}
	if curr != nil && curr.removed.Load() {
		return false
	}
	return pred.next.Load() == curr
}

// find performs the unlocked traversal shared by Insert and Remove:
// walk forward while curr is non-nil and ordered strictly before key,
// publishing the currently-held pred and curr into hazard slots 0 and
// 1 at every step, before dereferencing either.
func (l *List) find(key, workerID int) (pred, curr *node) {
	pred = l.head
	l.hazards.publish(workerID, 0, pred)
	curr = pred.next.Load()
	l.hazards.publish(workerID, 1, curr)
	for curr != nil && curr.key < key {
		pred = curr
		l.hazards.publish(workerID, 0, pred)
		curr = pred.next.Load()
		l.hazards.publish(workerID, 1, curr)
	}
	return pred, curr
}

// Insert adds key to the multiset, clustering it just before the first
// node whose key is >= key. Equal keys are permitted and accumulate.
// It returns a non-nil error only on AllocationFailure, in which case
// the list is left completely unmodified.
func (l *List) Insert(key, workerID int) error {
	checkWorkerID(workerID)

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			l.stats.insertRetries.Add(1)
		}

		pred, curr := l.find(key, workerID)

		lockPair(pred, curr)
		callValidateHook(beforeValidateHook, pred, curr)
		if !validate(pred, curr) {
			unlockPair(pred, curr)
			l.hazards.clear(workerID)
			continue
		}

		n, err := l.allocate(key)
		if err != nil {
			unlockPair(pred, curr)
			l.hazards.clear(workerID)
			return errors.WithStack(ErrAllocationFailed)
		}
		n.next.Store(curr)
		pred.next.Store(n)

		unlockPair(pred, curr)
		l.hazards.clear(workerID)

		l.length.Add(1)
		l.maybeReclaim()
		return nil
	}
}

// Remove deletes the first node matching key, if any, and reports
// whether it found one. Only the first equal-keyed node is removed per
// call.
func (l *List) Remove(key, workerID int) bool {
	checkWorkerID(workerID)

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			l.stats.removeRetries.Add(1)
		}

		pred, curr := l.find(key, workerID)

		lockPair(pred, curr)
		callValidateHook(beforeValidateHook, pred, curr)
		if !validate(pred, curr) {
			unlockPair(pred, curr)
			l.hazards.clear(workerID)
			continue
		}

		if curr == nil || curr.key != key {
			unlockPair(pred, curr)
			l.hazards.clear(workerID)
			return false
		}

		curr.removed.Store(true)
		callNodeHook(afterLogicalDeleteHook, curr)
		pred.next.Store(curr.next.Load())

		l.retireMu.Lock()
		l.retireList = append(l.retireList, curr)
		l.retireMu.Unlock()

		unlockPair(pred, curr)
		l.hazards.clear(workerID)

		l.length.Add(-1)
		l.maybeReclaim()
		return true
	}
}

// Contains reports whether, at the lookup instant, some reachable
// non-removed node holds key. It never locks and never retries: a
// single pass is enough, since a racing remover's logical delete is
// visible to the unlocked removed read.
func (l *List) Contains(key, workerID int) bool {
	checkWorkerID(workerID)

	curr := l.head.next.Load()
	l.hazards.publish(workerID, 0, curr)
	callNodeHook(afterContainsPublishHook, curr)
	for curr != nil && curr.key < key {
		curr = curr.next.Load()
		l.hazards.publish(workerID, 0, curr)
		callNodeHook(afterContainsPublishHook, curr)
	}

	found := curr != nil && !curr.removed.Load() && curr.key == key
	l.hazards.clear(workerID)
	return found
}
