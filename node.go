package skiplist

// node holds a key/value pair and one forward pointer per level the node
// participates in. len(forward) is the node's height and never changes
// after creation; forward[i] is nil at the end of level i.
type node[K comparable, V any] struct {
	key     K
	value   V
	forward []*node[K, V]
}

func newNode[K comparable, V any](key K, value V, height int) *node[K, V] {
	return &node[K, V]{
		key:     key,
		value:   value,
		forward: make([]*node[K, V], height),
	}
}

func (n *node[K, V]) height() int {
	return len(n.forward)
}

// newHead returns the head sentinel. It carries no key, spans every
// possible level, and is never matched against a search target.
func newHead[K comparable, V any](maxHeight int) *node[K, V] {
	return &node[K, V]{forward: make([]*node[K, V], maxHeight)}
}
