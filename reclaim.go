package hazardlist

// ScanAndReclaim walks the retire list and frees every node no hazard
// slot currently references, keeping the rest for the next pass. It is
// idempotent and may be called externally at any time. With no
// operations in flight it empties the retire list entirely.
func (l *List) ScanAndReclaim() {
	l.retireMu.Lock()
	defer l.retireMu.Unlock()

	var survivors []*node
	freed := int64(0)
	for _, n := range l.retireList {
		if l.hazards.isHazarded(n) {
			survivors = append(survivors, n)
			continue
		}
		freed++
	}
	l.retireList = survivors
	l.stats.reclaimPasses.Add(1)
	l.stats.nodesFreed.Add(freed)
}

// maybeReclaim implements the amortized trigger: after every successful
// insert/remove, bump opCounter, and if the post-increment value is at
// least the (independently, non-atomically read) length, run a pass
// and give the counter back its length's worth of headroom. This is a
// deliberate race-tolerant heuristic, not a guarantee. length and
// opCounter are read and written independently with no compound
// operation tying them together.
func (l *List) maybeReclaim() {
	count := l.opCounter.Add(1)
	length := l.length.Load()
	if count >= length {
		l.ScanAndReclaim()
		l.opCounter.Add(-length)
	}
}
