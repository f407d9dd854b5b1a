package asvc

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/slices"
)

// IndexSet is a validated, deduplicated, ascending view of an index
// list I ⊆ {0..n-1}. ProvePos, VerifyPos, and AggregateProofs all
// build one from their raw []uint64 input before
// doing any field work, so out-of-range or duplicate indices are
// rejected uniformly.
type IndexSet struct {
	sorted []uint64
	seen   *bitset.BitSet
}

// NewIndexSet validates indices against the domain size n and returns
// an IndexSet holding them in ascending order. It rejects duplicates
// and out-of-range entries with ErrInvalidParameter.
func NewIndexSet(indices []uint64, n uint64) (IndexSet, error) {
	seen := bitset.New(uint(n))
	sorted := make([]uint64, len(indices))
	copy(sorted, indices)

	for _, i := range sorted {
		if i >= n {
			return IndexSet{}, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidParameter, i, n)
		}
		if seen.Test(uint(i)) {
			return IndexSet{}, fmt.Errorf("%w: duplicate index %d", ErrInvalidParameter, i)
		}
		seen.Set(uint(i))
	}

	slices.Sort(sorted)
	return IndexSet{sorted: sorted, seen: seen}, nil
}

// Len returns the number of indices in the set.
func (s IndexSet) Len() int { return len(s.sorted) }

// Slice returns the indices in ascending order. The returned slice
// must not be mutated by the caller.
func (s IndexSet) Slice() []uint64 { return s.sorted }

// Contains reports whether i is a member of the set.
func (s IndexSet) Contains(i uint64) bool {
	return s.seen != nil && i < uint64(s.seen.Len()) && s.seen.Test(uint(i))
}
