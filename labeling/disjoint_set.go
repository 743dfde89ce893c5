// SPDX-License-Identifier: MIT
// Package: csrgraph/labeling
//
// disjoint_set.go — union-find with path halving and union by rank.

package labeling

import "fmt"

// DisjointSet partitions the integers [0,n).
// Indices outside [0,n) panic with a runtime bounds error.
type DisjointSet struct {
	parent []int
	rank   []uint8
	count  int
}

// NewDisjointSet returns n singleton sets.
// Panics with ErrNegativeSize if n < 0.
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		panic(fmt.Errorf("NewDisjointSet: n=%d: %w", n, ErrNegativeSize))
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative of x's set.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		// Path halving: point x at its grandparent and step there.
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets holding x and y. It reports false when they were
// already one set.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--

	return true
}

// Same reports whether x and y are in one set.
func (d *DisjointSet) Same(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Labels returns a dense labeling of the partition: element i gets the label
// of its set, sets numbered 0..Count()-1 by their smallest element.
func (d *DisjointSet) Labels() []int {
	n := len(d.parent)
	labels := make([]int, n)
	byRoot := make([]int, n)
	for i := range byRoot {
		byRoot[i] = -1
	}
	next := 0
	for i := 0; i < n; i++ {
		r := d.Find(i)
		if byRoot[r] < 0 {
			byRoot[r] = next
			next++
		}
		labels[i] = byRoot[r]
	}

	return labels
}
