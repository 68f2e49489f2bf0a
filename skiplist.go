// Package skiplist implements a generic, single-owner ordered map backed
// by a probabilistic skip list. Search, insertion, deletion, and range
// enumeration run in O(log n) expected time; the worst case is O(n) under
// pathological level assignment and is accepted, not treated as a fault.
//
// The structure is not safe for concurrent use. Callers mixing mutation
// with traversal from multiple goroutines must serialize access
// themselves.
package skiplist

import (
	"cmp"
	"errors"
	"math"
	randv2 "math/rand/v2"
)

const (
	// DefaultMaxHeight bounds node height when no option overrides it.
	DefaultMaxHeight = 16

	// DefaultProbability is the per-level promotion chance when no
	// option overrides it.
	DefaultProbability = 0.5
)

// Construction errors.
var (
	// ErrInvalidMaxHeight is returned when a configured max height is
	// less than 1.
	ErrInvalidMaxHeight = errors.New("skiplist: max height must be at least 1")

	// ErrInvalidProbability is returned when a configured promotion
	// probability falls outside [0, 1].
	ErrInvalidProbability = errors.New("skiplist: probability must be in [0, 1]")

	// ErrNilLess is returned when NewWithLess receives a nil comparator.
	ErrNilLess = errors.New("skiplist: comparator cannot be nil")
)

// Less reports whether a orders strictly before b.
type Less[K comparable] func(a, b K) bool

// SkipList is an ordered map keyed by K. The zero value is not usable;
// construct instances with New or NewWithLess.
type SkipList[K comparable, V any] struct {
	less      Less[K]
	head      *node[K, V]
	maxHeight int
	p         float64
	rng       *randv2.Rand
	// level is the highest level currently occupied by a real node.
	// It starts at 1, grows when a tall node is inserted, and shrinks
	// back as the last occupant of a level is deleted.
	level  int
	length int
}

type config struct {
	maxHeight int
	p         float64
	src       randv2.Source
}

// Option configures a SkipList under construction.
type Option func(*config)

// WithMaxHeight sets the ceiling on node height. Higher ceilings cost
// memory on the head sentinel and deepen the worst-case scan.
func WithMaxHeight(h int) Option {
	return func(c *config) { c.maxHeight = h }
}

// WithProbability sets the per-level promotion chance. The extremes are
// legal: 0 pins every node at height 1, 1 promotes every node to the
// ceiling.
func WithProbability(p float64) Option {
	return func(c *config) { c.p = p }
}

// WithRandSource injects the randomness used for level assignment,
// enabling reproducible behavior in tests and benchmarks.
func WithRandSource(src randv2.Source) Option {
	return func(c *config) { c.src = src }
}

// New creates a skip list for key types that implement cmp.Ordered,
// using cmp.Less as the comparator.
func New[K cmp.Ordered, V any](opts ...Option) (*SkipList[K, V], error) {
	return NewWithLess[K, V](func(a, b K) bool { return a < b }, opts...)
}

// NewWithLess creates a skip list ordered by a custom comparator. The
// comparator must define a strict total order over all keys the caller
// will store.
func NewWithLess[K comparable, V any](less Less[K], opts ...Option) (*SkipList[K, V], error) {
	if less == nil {
		return nil, ErrNilLess
	}

	cfg := config{
		maxHeight: DefaultMaxHeight,
		p:         DefaultProbability,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.maxHeight < 1 {
		return nil, ErrInvalidMaxHeight
	}
	if math.IsNaN(cfg.p) || cfg.p < 0 || cfg.p > 1 {
		return nil, ErrInvalidProbability
	}
	if cfg.src == nil {
		cfg.src = randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
	}

	return &SkipList[K, V]{
		less:      less,
		head:      newHead[K, V](cfg.maxHeight),
		maxHeight: cfg.maxHeight,
		p:         cfg.p,
		rng:       randv2.New(cfg.src),
		level:     1,
	}, nil
}

// Len returns the number of keys currently stored.
func (s *SkipList[K, V]) Len() int {
	return s.length
}

// Level returns the highest level currently occupied by a real node.
func (s *SkipList[K, V]) Level() int {
	return s.level
}

// MaxHeight returns the configured height ceiling.
func (s *SkipList[K, V]) MaxHeight() int {
	return s.maxHeight
}

// Probability returns the configured per-level promotion chance.
func (s *SkipList[K, V]) Probability() float64 {
	return s.p
}

// Clear drops every stored key, resetting the list to its freshly
// constructed state while keeping the configuration and random source.
func (s *SkipList[K, V]) Clear() {
	s.head = newHead[K, V](s.maxHeight)
	s.level = 1
	s.length = 0
}
