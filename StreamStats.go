// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package nvorbis

import (
	"sync/atomic"
)

// Counters describing how a ThreadSafeStream is behaving at runtime.
// All updates are atomic; incrementing through a nil *StreamStats is a no-op.
type StreamStats struct {
	FullResolutions uint64 // cursor lookups that went through the registry scan
	CacheHits       uint64 // cursor lookups satisfied by the last-used slot
	Reorders        uint64 // registry reorder passes that took the exclusive lock
	PhysicalSeeks   uint64 // repositions of the backend stream
	Reads           uint64
	Writes          uint64
}

func (this *StreamStats) IncrementFullResolution() {
	if this != nil {
		atomic.AddUint64(&this.FullResolutions, 1)
	}
}

func (this *StreamStats) IncrementCacheHit() {
	if this != nil {
		atomic.AddUint64(&this.CacheHits, 1)
	}
}

func (this *StreamStats) IncrementReorder() {
	if this != nil {
		atomic.AddUint64(&this.Reorders, 1)
	}
}

func (this *StreamStats) IncrementPhysicalSeek() {
	if this != nil {
		atomic.AddUint64(&this.PhysicalSeeks, 1)
	}
}

func (this *StreamStats) IncrementRead() {
	if this != nil {
		atomic.AddUint64(&this.Reads, 1)
	}
}

func (this *StreamStats) IncrementWrite() {
	if this != nil {
		atomic.AddUint64(&this.Writes, 1)
	}
}

// Returns an atomically-loaded copy of the counters
func (this *StreamStats) Snapshot() StreamStats {
	return StreamStats{
		FullResolutions: atomic.LoadUint64(&this.FullResolutions),
		CacheHits:       atomic.LoadUint64(&this.CacheHits),
		Reorders:        atomic.LoadUint64(&this.Reorders),
		PhysicalSeeks:   atomic.LoadUint64(&this.PhysicalSeeks),
		Reads:           atomic.LoadUint64(&this.Reads),
		Writes:          atomic.LoadUint64(&this.Writes),
	}
}
