// Package stats decorates a skip list with operation counting and timing
// so workloads can be profiled without touching the core structure.
package stats

import (
	"time"

	"github.com/j-raghavan/skiplist"
)

// Stats is a point-in-time snapshot of recorded activity.
type Stats struct {
	Inserts  int64
	Deletes  int64
	Gets     int64
	Contains int64

	InsertTime time.Duration
	DeleteTime time.Duration
	GetTime    time.Duration

	// LevelDistribution is the list's height histogram at snapshot
	// time; slot i counts nodes of height i+1.
	LevelDistribution []int
}

// AvgInsert returns the mean wall time per recorded insert.
func (s Stats) AvgInsert() time.Duration { return avg(s.InsertTime, s.Inserts) }

// AvgDelete returns the mean wall time per recorded delete.
func (s Stats) AvgDelete() time.Duration { return avg(s.DeleteTime, s.Deletes) }

// AvgGet returns the mean wall time per recorded get.
func (s Stats) AvgGet() time.Duration { return avg(s.GetTime, s.Gets) }

func avg(total time.Duration, n int64) time.Duration {
	if n == 0 {
		return 0
	}
	return total / time.Duration(n)
}

// Recorder wraps a skip list, delegating every operation while
// accumulating counters and cumulative timings. It shares the list's
// single-owner contract: callers must not use it concurrently.
type Recorder[K comparable, V any] struct {
	list *skiplist.SkipList[K, V]

	inserts  int64
	deletes  int64
	gets     int64
	contains int64

	insertTime time.Duration
	deleteTime time.Duration
	getTime    time.Duration
}

// Wrap returns a Recorder observing the given list.
func Wrap[K comparable, V any](list *skiplist.SkipList[K, V]) *Recorder[K, V] {
	return &Recorder[K, V]{list: list}
}

// Insert delegates to the list and records the call.
func (r *Recorder[K, V]) Insert(key K, value V) bool {
	start := time.Now()
	inserted := r.list.Insert(key, value)
	r.insertTime += time.Since(start)
	r.inserts++
	return inserted
}

// Delete delegates to the list and records the call.
func (r *Recorder[K, V]) Delete(key K) bool {
	start := time.Now()
	deleted := r.list.Delete(key)
	r.deleteTime += time.Since(start)
	r.deletes++
	return deleted
}

// Get delegates to the list and records the call.
func (r *Recorder[K, V]) Get(key K) (V, bool) {
	start := time.Now()
	v, ok := r.list.Get(key)
	r.getTime += time.Since(start)
	r.gets++
	return v, ok
}

// Contains delegates to the list and records the call.
func (r *Recorder[K, V]) Contains(key K) bool {
	r.contains++
	return r.list.Contains(key)
}

// Len reports the underlying list's length.
func (r *Recorder[K, V]) Len() int { return r.list.Len() }

// All returns an iterator over the underlying list.
func (r *Recorder[K, V]) All() *skiplist.Iterator[K, V] { return r.list.All() }

// Range returns a bounded iterator over the underlying list.
func (r *Recorder[K, V]) Range(low, high K) *skiplist.Iterator[K, V] {
	return r.list.Range(low, high)
}

// List exposes the wrapped list for callers that need the full API.
func (r *Recorder[K, V]) List() *skiplist.SkipList[K, V] { return r.list }

// Snapshot returns the recorded activity together with the list's
// current level distribution.
func (r *Recorder[K, V]) Snapshot() Stats {
	return Stats{
		Inserts:           r.inserts,
		Deletes:           r.deletes,
		Gets:              r.gets,
		Contains:          r.contains,
		InsertTime:        r.insertTime,
		DeleteTime:        r.deleteTime,
		GetTime:           r.getTime,
		LevelDistribution: r.list.LevelHistogram(),
	}
}

// Reset zeroes the counters. The wrapped list is untouched.
func (r *Recorder[K, V]) Reset() {
	r.inserts, r.deletes, r.gets, r.contains = 0, 0, 0, 0
	r.insertTime, r.deleteTime, r.getTime = 0, 0, 0
}
