package interval

import (
	"github.com/eaugeas/ordtree/container/tree"
)

// lessByMin orders intervals by their minimum only. Within an
// IntSet intervals are disjoint, so no two of them share a minimum
func lessByMin(a, b Int) bool {
	return a.min < b.min
}

// Int represents an interval with integers. An interval
// is represented by two integers a, b such that
// [a, b]. An interval is immutable.
type Int struct {
	min int
	max int
}

// NewInt returns a new interval
func NewInt(min, max int) Int {
	if min > max {
		panic("min cannot be greater than max")
	}

	return Int{min: min, max: max}
}

// Min returns the a of the interval [a, b]
func (i Int) Min() int {
	return i.min
}

// Max returns the b of the interval [a, b]
func (i Int) Max() int {
	return i.max
}

// Len returns the length of the interval
func (i Int) Len() int {
	return i.max - i.min + 1
}

// Contains returns true if the interval represented
// by j is contained by i
func (i Int) Contains(j Int) bool {
	return i.min <= j.min && j.max <= i.max
}

// Disjoints returns true if the intersection between
// i and j is empty
func (i Int) Disjoints(j Int) bool {
	return i.max < j.min || j.max < i.min
}

// Intersection returns the interval of intersection
// between i and j
func (i Int) Intersection(j Int) Int {
	if i.Disjoints(j) {
		panic("intersection between two disjoint intervals")
	}

	return Int{min: max(i.min, j.min), max: min(i.max, j.max)}
}

// CanMerge returns true if the both intervals can be
// merged into one. That is, if i and j are not disjoints
// or they share a boundary. For example, i = [a, b] and
// j = [b + 1, c], in which case the resulting merged
// interval would be k = [a, c]
func (i Int) CanMerge(j Int) bool {
	return !i.Disjoints(j) || i.min == j.max+1 || i.max+1 == j.min
}

// Merge merges two intervals and returns the result
// in a new interval. Only a pair of non disjoints
// intervals can be merged. If j is disjoint with i
// Merge will panic
func (i Int) Merge(j Int) Int {
	if !i.CanMerge(j) {
		panic("cannot merge intervals")
	}

	return Int{min: min(i.min, j.min), max: max(i.max, j.max)}
}

// IntSet represents a set of disjoint intervals
// {[Ii.Min(), Ii.Max()], i = 0 .. Len()}. It is a useful
// data structure to keep track of continuous sets of objects.
//
// A use case for this is to keep track of message offsets
// that are continous. Instead of keeping [1, 2, 3, 5],
// the set can keep [1, 3], [5] and when 4 is added to it,
// the result will be [1, 5], instead of [1, 2, 3, 4, 5].
//
// Like the tree it is built on, an IntSet is not safe for
// concurrent use
type IntSet struct {
	intervals *tree.Tree[Int]
}

// NewIntSet creates a new instance of a interval set
func NewIntSet() *IntSet {
	return &IntSet{intervals: tree.New(lessByMin)}
}

// Len returns the number of disjoint intervals
func (s *IntSet) Len() int {
	return s.intervals.Len()
}

// Intervals returns the disjoint intervals of the set
// sorted by their minimum
func (s *IntSet) Intervals() []Int {
	return s.intervals.InOrder()
}

// Contains returns true if the set contains
// any interval which contains the interval
func (s *IntSet) Contains(i Int) bool {
	lower, ok := s.lower(i)
	return ok && lower.Contains(i)
}

// Insert inserts an interval to the set. Any interval in the
// set which is not disjoint with i, or shares a boundary with it,
// is merged with i
func (s *IntSet) Insert(i Int) {
	if lower, ok := s.lower(i); ok && i.CanMerge(lower) {
		if !s.intervals.Remove(lower) {
			panic("failed to remove lower interval")
		}

		i = i.Merge(lower)
	}

	for {
		higher, ok := s.higher(i)
		if !ok || !i.CanMerge(higher) {
			break
		}

		if !s.intervals.Remove(higher) {
			panic("failed to remove higher interval")
		}

		i = i.Merge(higher)
	}

	if !s.intervals.Insert(i) {
		panic("interval overlaps an interval of the set")
	}
}

func (s *IntSet) higher(i Int) (Int, bool) {
	node := s.intervals.Ceiling(i)
	if node == nil {
		return Int{}, false
	}

	return node.Value(), true
}

func (s *IntSet) lower(i Int) (Int, bool) {
	node := s.intervals.Floor(i)
	if node == nil {
		return Int{}, false
	}

	return node.Value(), true
}
