package skiplist

import "fmt"

// Structure verification, kept separate so debug checks don't clutter
// the operation logic. Violations reported here are internal bugs, never
// user-facing error conditions; the test suite calls verify after
// mutation sequences.

// verify checks the structural invariants: the level-0 chain is strictly
// ascending and matches the recorded length, every node at level L is
// reachable at every level below L, no node exceeds the height ceiling,
// and the occupied-level watermark is consistent. It returns the first
// violation found.
func (s *SkipList[K, V]) verify() error {
	if s.level < 1 || s.level > s.maxHeight {
		return fmt.Errorf("level watermark %d outside [1, %d]", s.level, s.maxHeight)
	}

	// last[i] tracks the most recent node seen at level i, seeded with
	// the head. Following only level-0 links and checking each node
	// against last[i].forward[i] proves the containment invariant.
	last := make([]*node[K, V], s.maxHeight)
	for i := range last {
		last[i] = s.head
	}

	count := 0
	var prev *node[K, V]
	for n := s.head.forward[0]; n != nil; n = n.forward[0] {
		if prev != nil && !s.less(prev.key, n.key) {
			return fmt.Errorf("level-0 chain not strictly ascending at %v -> %v", prev.key, n.key)
		}
		h := n.height()
		if h < 1 || h > s.maxHeight {
			return fmt.Errorf("node %v has height %d outside [1, %d]", n.key, h, s.maxHeight)
		}
		if h > s.level {
			return fmt.Errorf("node %v at height %d exceeds level watermark %d", n.key, h, s.level)
		}
		for i := 0; i < h; i++ {
			if last[i].forward[i] != n {
				return fmt.Errorf("node %v missing from level %d chain", n.key, i)
			}
			last[i] = n
		}
		prev = n
		count++
	}

	for i := range last {
		if last[i].forward[i] != nil {
			return fmt.Errorf("dangling forward pointer at level %d past %v", i, last[i].key)
		}
	}

	if count != s.length {
		return fmt.Errorf("length %d does not match %d reachable nodes", s.length, count)
	}
	if s.level > 1 && s.head.forward[s.level-1] == nil {
		return fmt.Errorf("level watermark %d points at an empty level", s.level)
	}
	return nil
}
