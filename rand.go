package skiplist

// randomHeight draws a height in [1, maxHeight] by repeated independent
// coin flips: each success extends the node one more level, so
// P(height >= k) = p^(k-1). The geometric thinning this produces is what
// keeps the expected cost of every operation logarithmic.
func (s *SkipList[K, V]) randomHeight() int {
	h := 1
	for h < s.maxHeight && s.rng.Float64() < s.p {
		h++
	}
	return h
}
