// Package pqueue provides a priority queue built on the skip list. Unlike
// a binary heap it supports O(log n) expected removal and re-prioritization
// of arbitrary values, not just the front element.
package pqueue

import (
	"cmp"
	"errors"

	"github.com/j-raghavan/skiplist"
)

// ErrEmpty is returned by Pop and Peek when the queue holds no items.
var ErrEmpty = errors.New("pqueue: queue is empty")

// Queue orders values by priority, lowest first. Each value appears at
// most once; each priority holds at most one value.
type Queue[K cmp.Ordered, V comparable] struct {
	list *skiplist.SkipList[K, V]
	// byValue indexes the stored values so Remove and UpdatePriority
	// can find the priority to unsplice without scanning.
	byValue map[V]K
}

// New constructs an empty queue. Options are forwarded to the backing
// skip list.
func New[K cmp.Ordered, V comparable](opts ...skiplist.Option) (*Queue[K, V], error) {
	list, err := skiplist.New[K, V](opts...)
	if err != nil {
		return nil, err
	}
	return &Queue[K, V]{
		list:    list,
		byValue: make(map[V]K),
	}, nil
}

// Put enqueues value at the given priority. A value already present is
// re-prioritized. Put reports false when a different value already
// occupies the priority, in which case the queue is unchanged.
func (q *Queue[K, V]) Put(priority K, value V) bool {
	if old, ok := q.byValue[value]; ok {
		if old == priority {
			return true
		}
		// Occupied target priority: refuse before tearing down the
		// existing entry.
		if _, taken := q.list.Get(priority); taken {
			return false
		}
		q.list.Delete(old)
		delete(q.byValue, value)
	}

	if !q.list.Insert(priority, value) {
		return false
	}
	q.byValue[value] = priority
	return true
}

// Pop removes and returns the lowest-priority item.
func (q *Queue[K, V]) Pop() (K, V, error) {
	priority, value, err := q.Peek()
	if err != nil {
		return priority, value, err
	}
	q.list.Delete(priority)
	delete(q.byValue, value)
	return priority, value, nil
}

// Peek returns the lowest-priority item without removing it.
func (q *Queue[K, V]) Peek() (K, V, error) {
	it := q.list.All()
	if !it.Next() {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, ErrEmpty
	}
	return it.Key(), it.Value(), nil
}

// Remove deletes a specific value and reports whether it was present.
func (q *Queue[K, V]) Remove(value V) bool {
	priority, ok := q.byValue[value]
	if !ok {
		return false
	}
	q.list.Delete(priority)
	delete(q.byValue, value)
	return true
}

// UpdatePriority moves an existing value to a new priority. It reports
// false when the value is unknown or the new priority is occupied by a
// different value.
func (q *Queue[K, V]) UpdatePriority(value V, priority K) bool {
	if _, ok := q.byValue[value]; !ok {
		return false
	}
	return q.Put(priority, value)
}

// PriorityOf returns the priority a value is queued at.
func (q *Queue[K, V]) PriorityOf(value V) (K, bool) {
	priority, ok := q.byValue[value]
	return priority, ok
}

// Contains reports whether the value is queued.
func (q *Queue[K, V]) Contains(value V) bool {
	_, ok := q.byValue[value]
	return ok
}

// Len returns the number of queued items.
func (q *Queue[K, V]) Len() int {
	return q.list.Len()
}

// Each invokes fn for every item in ascending priority order, stopping
// early if fn returns false.
func (q *Queue[K, V]) Each(fn func(priority K, value V) bool) {
	q.list.Ascend(fn)
}
