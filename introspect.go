package skiplist

// LevelHistogram walks the level-0 chain once and returns a histogram of
// node heights: slot i counts the nodes whose height is i+1. The slice
// has MaxHeight entries and its counts sum to Len.
func (s *SkipList[K, V]) LevelHistogram() []int {
	hist := make([]int, s.maxHeight)
	for n := s.head.forward[0]; n != nil; n = n.forward[0] {
		hist[n.height()-1]++
	}
	return hist
}

// Ascend invokes fn for each key/value pair in ascending key order,
// stopping early if fn returns false. Only keys and values cross the
// boundary; node handles never escape the list.
func (s *SkipList[K, V]) Ascend(fn func(key K, value V) bool) {
	for n := s.head.forward[0]; n != nil; n = n.forward[0] {
		if !fn(n.key, n.value) {
			return
		}
	}
}

// Keys returns all stored keys in ascending order. Convenience over All
// for callers that want a snapshot rather than a lazy traversal.
func (s *SkipList[K, V]) Keys() []K {
	keys := make([]K, 0, s.length)
	s.Ascend(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
