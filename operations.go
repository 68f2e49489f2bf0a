package skiplist

// Get returns the value stored for key. The boolean is false when the
// key is absent; absence is a normal result, not an error.
func (s *SkipList[K, V]) Get(key K) (V, bool) {
	if n := s.findGE(key); n != nil && n.key == key {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is stored.
func (s *SkipList[K, V]) Contains(key K) bool {
	n := s.findGE(key)
	return n != nil && n.key == key
}

// Insert stores key with value and reports whether a new node was
// created. Inserting a key that is already present is a no-op: the
// stored value is left untouched, no structure changes, and Insert
// returns false.
func (s *SkipList[K, V]) Insert(key K, value V) bool {
	path := s.findPath(key)

	if next := path[0].forward[0]; next != nil && next.key == key {
		return false
	}

	height := s.randomHeight()
	if height > s.level {
		// path already points at the head for every level above the
		// old ceiling; raising the ceiling is all that remains.
		s.level = height
	}

	n := newNode(key, value, height)
	for i := 0; i < height; i++ {
		n.forward[i] = path[i].forward[i]
		path[i].forward[i] = n
	}

	s.length++
	return true
}

// Delete removes key and reports whether it was present.
func (s *SkipList[K, V]) Delete(key K) bool {
	path := s.findPath(key)

	target := path[0].forward[0]
	if target == nil || target.key != key {
		return false
	}

	for i := 0; i < target.height(); i++ {
		if path[i].forward[i] == target {
			path[i].forward[i] = target.forward[i]
		}
	}

	// Drop empty top levels so future walks start where nodes exist.
	for s.level > 1 && s.head.forward[s.level-1] == nil {
		s.level--
	}

	s.length--
	return true
}
