// Package analyzer inspects skip list structure: node counts, height
// distribution, link-memory estimates, and content fingerprints. It is a
// pure reader of the core's public surface.
package analyzer

import (
	"fmt"
	randv2 "math/rand/v2"
	"strconv"

	"github.com/spaolacci/murmur3"

	"github.com/j-raghavan/skiplist"
)

const (
	pointerBytes     = strconv.IntSize / 8
	sliceHeaderBytes = 3 * pointerBytes
)

// Report summarizes a skip list's structure at a point in time.
type Report struct {
	NodeCount     int
	AverageHeight float64
	CurrentHeight int
	MaxHeight     int

	// LevelDistribution[i] counts nodes of height i+1.
	LevelDistribution []int

	// LinkBytes estimates the memory spent on forward-pointer slices,
	// head sentinel included. Key and value payloads are excluded since
	// their sizes are not visible through the public surface.
	LinkBytes int
}

// Analyze walks the list once and returns its structural report.
func Analyze[K comparable, V any](list *skiplist.SkipList[K, V]) Report {
	hist := list.LevelHistogram()

	totalHeight := 0
	nodeCount := 0
	for i, c := range hist {
		nodeCount += c
		totalHeight += (i + 1) * c
	}

	avg := 0.0
	if nodeCount > 0 {
		avg = float64(totalHeight) / float64(nodeCount)
	}

	links := sliceHeaderBytes + list.MaxHeight()*pointerBytes
	links += nodeCount*sliceHeaderBytes + totalHeight*pointerBytes

	return Report{
		NodeCount:         nodeCount,
		AverageHeight:     avg,
		CurrentHeight:     list.Level(),
		MaxHeight:         list.MaxHeight(),
		LevelDistribution: hist,
		LinkBytes:         links,
	}
}

// CumulativeLevels converts a height histogram into per-level occupancy:
// slot i counts the nodes present at level i. When the containment
// invariant holds, the counts are non-increasing from level 0 upward.
func CumulativeLevels(hist []int) []int {
	occupancy := make([]int, len(hist))
	running := 0
	for i := len(hist) - 1; i >= 0; i-- {
		running += hist[i]
		occupancy[i] = running
	}
	return occupancy
}

// SampleHeights draws n heights from the same coin-flip policy the
// engine uses, returning a histogram of length maxHeight. Useful for
// comparing a live list's distribution against the theoretical one.
func SampleHeights(maxHeight int, p float64, n int, src randv2.Source) []int {
	rng := randv2.New(src)
	hist := make([]int, maxHeight)
	for i := 0; i < n; i++ {
		h := 1
		for h < maxHeight && rng.Float64() < p {
			h++
		}
		hist[h-1]++
	}
	return hist
}

// Fingerprint returns an order-sensitive murmur3 hash over the list's
// key sequence. Two lists holding the same keys in the same order
// fingerprint identically, so snapshots can be compared cheaply.
func Fingerprint[K comparable, V any](list *skiplist.SkipList[K, V]) uint64 {
	h := murmur3.New64()
	var buf []byte
	list.Ascend(func(k K, _ V) bool {
		buf = fmt.Appendf(buf[:0], "%v\x00", k)
		h.Write(buf)
		return true
	})
	return h.Sum64()
}
