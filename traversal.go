package skiplist

// findPath returns, for each level, the last node whose key orders
// strictly before key (the head when none does). The walk starts at the
// highest occupied level and drops a level whenever the next node at the
// current level is nil or >= key. Slots above the occupied levels are
// filled with the head so Insert can splice a node taller than the
// current level without a second pass.
//
// Every other operation is a thin wrapper around this walk plus
// level-local pointer edits.
func (s *SkipList[K, V]) findPath(key K) []*node[K, V] {
	path := make([]*node[K, V], s.maxHeight)

	x := s.head
	for i := s.level - 1; i >= 0; i-- {
		for x.forward[i] != nil && s.less(x.forward[i].key, key) {
			x = x.forward[i]
		}
		path[i] = x
	}

	for i := s.level; i < s.maxHeight; i++ {
		path[i] = s.head
	}

	return path
}

// findGE returns the first node whose key is >= key, or nil when no such
// node exists. Read-only restriction of findPath used by lookups and
// range scans.
func (s *SkipList[K, V]) findGE(key K) *node[K, V] {
	x := s.head
	for i := s.level - 1; i >= 0; i-- {
		for x.forward[i] != nil && s.less(x.forward[i].key, key) {
			x = x.forward[i]
		}
	}
	return x.forward[0]
}
