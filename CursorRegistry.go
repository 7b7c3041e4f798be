// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package nvorbis

import (
	"sync"
	"sync/atomic"
)

// Number of slow-path resolutions between two reorder passes of the registry
const reorderInterval = 50

// cursorEntry is one owner's private view of the shared stream.
// position is only ever touched from inside its owner's calls, so it needs no
// extra synchronization. hitCount is read by the reorder pass while the owner
// may be bumping it, so it is accessed atomically.
type cursorEntry struct {
	owner    OwnerID
	position int64
	hitCount uint64
}

// cursorRegistry maps owner identity to cursor entries.
//
// Lookup is a plain linear scan; entry order has no correctness meaning.
// A periodic reorder pass keeps frequently resolved owners near the front so
// their scans stay short, and a single last-used slot skips the scan entirely
// for back-to-back calls from the same goroutine.
type cursorRegistry struct {
	lock        sync.RWMutex
	entries     []*cursorEntry
	lastUsed    atomic.Pointer[cursorEntry] // best-effort cache, validated by owner comparison before use
	resolutions uint64                      // slow-path resolution counter, drives the reorder cadence
	stats       *StreamStats
}

// Returns the cursor entry for the given owner, creating one on first use
func (this *cursorRegistry) resolve(owner OwnerID) *cursorEntry {
	// Fast path: the same goroutine calling again
	if entry := this.lastUsed.Load(); entry != nil && entry.owner == owner {
		this.stats.IncrementCacheHit()
		return entry
	}

	if atomic.AddUint64(&this.resolutions, 1)%reorderInterval == 0 {
		this.maintainOrder()
	}
	this.stats.IncrementFullResolution()

	this.lock.RLock()
	for _, entry := range this.entries {
		if entry.owner == owner {
			atomic.AddUint64(&entry.hitCount, 1)
			this.lock.RUnlock()
			this.lastUsed.Store(entry)
			return entry
		}
	}
	this.lock.RUnlock()

	// First call from this owner. Concurrent misses are always for distinct
	// owners (a goroutine runs its own calls sequentially), so appending
	// without a re-check cannot create duplicates.
	entry := &cursorEntry{owner: owner, hitCount: 1}
	this.lock.Lock()
	this.entries = append(this.entries, entry)
	this.lock.Unlock()
	this.lastUsed.Store(entry)
	return entry
}

// Moves popular entries towards the front of the scan order.
// Detection runs under the shared lock; the exclusive lock is taken only when
// some pair of neighbours is actually out of order. The detection result may
// go stale between releasing one lock and taking the other, which is
// harmless: the pass is idempotent and order never affects correctness.
func (this *cursorRegistry) maintainOrder() {
	this.lock.RLock()
	sorted := true
	for i := 1; i < len(this.entries); i++ {
		if atomic.LoadUint64(&this.entries[i].hitCount) > atomic.LoadUint64(&this.entries[i-1].hitCount) {
			sorted = false
			break
		}
	}
	this.lock.RUnlock()
	if sorted {
		return
	}

	this.lock.Lock()
	for i := 1; i < len(this.entries); i++ {
		entry := this.entries[i]
		hits := atomic.LoadUint64(&entry.hitCount)
		j := i
		for j > 0 && atomic.LoadUint64(&this.entries[j-1].hitCount) < hits {
			this.entries[j] = this.entries[j-1]
			j--
		}
		this.entries[j] = entry
	}
	this.lock.Unlock()
	this.stats.IncrementReorder()
}

// Discards all cursor entries (adapter teardown)
func (this *cursorRegistry) clear() {
	this.lock.Lock()
	this.entries = nil
	this.lock.Unlock()
	this.lastUsed.Store(nil)
}
