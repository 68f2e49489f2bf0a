package skiplist

// Iterator provides a lazy, forward-only view over the list. Each call
// to All, Range, or SeekGE yields a fresh traversal; an exhausted
// iterator stays exhausted. Mutating the list invalidates any live
// iterator.
type Iterator[K comparable, V any] struct {
	s       *SkipList[K, V]
	current *node[K, V]
	high    K
	bounded bool
	valid   bool
}

// All returns an iterator over every key in ascending order, positioned
// before the first element.
func (s *SkipList[K, V]) All() *Iterator[K, V] {
	return &Iterator[K, V]{s: s, current: s.head}
}

// Range returns an iterator over the keys k with low <= k < high, in
// ascending order, positioned before the first element of the range.
func (s *SkipList[K, V]) Range(low, high K) *Iterator[K, V] {
	it := &Iterator[K, V]{s: s, high: high, bounded: true}
	x := s.head
	for i := s.level - 1; i >= 0; i-- {
		for x.forward[i] != nil && s.less(x.forward[i].key, low) {
			x = x.forward[i]
		}
	}
	it.current = x
	return it
}

// SeekGE positions the iterator at the first key >= key and reports
// whether such a key exists. Any range bound from a previous Range call
// is cleared.
func (it *Iterator[K, V]) SeekGE(key K) bool {
	it.bounded = false
	n := it.s.findGE(key)
	if n == nil {
		it.current = nil
		it.valid = false
		return false
	}
	it.current = n
	it.valid = true
	return true
}

// Next advances to the next element and reports whether one exists. The
// first call moves onto the first element of the traversal.
func (it *Iterator[K, V]) Next() bool {
	if it.current == nil {
		it.valid = false
		return false
	}
	it.current = it.current.forward[0]
	if it.current == nil {
		it.valid = false
		return false
	}
	if it.bounded && !it.s.less(it.current.key, it.high) {
		it.current = nil
		it.valid = false
		return false
	}
	it.valid = true
	return true
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[K, V]) Valid() bool {
	return it.valid
}

// Key returns the key at the current position. It must only be called
// while Valid reports true.
func (it *Iterator[K, V]) Key() K {
	return it.current.key
}

// Value returns the value at the current position. It must only be
// called while Valid reports true.
func (it *Iterator[K, V]) Value() V {
	return it.current.value
}
