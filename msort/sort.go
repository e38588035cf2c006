package msort

import (
	"github.com/forestrie/go-listsort/chain"
)

// Sort merge sorts positions [lo, hi] of the chain at head and returns the
// new head. The chain at head is consumed.
//
// The bounds are checked once, against a walk of the chain. Each merge step
// walks the whole chain again, so this is O(n^2) in the chain length even
// though it makes the same comparisons as an array merge sort.
//
// On error the returned Ref is the last complete chain, possibly partly
// sorted. It is still owned by the caller, who must Destroy it.
func Sort(a *chain.Arena, head chain.Ref, lo, hi int, opts ...Option) (chain.Ref, error) {
	o := newOptions(opts)
	if err := checkBounds(lo, hi, chain.Len(a, head)); err != nil {
		return head, err
	}
	return sortRange(a, head, lo, hi, o.Key)
}

// SortAll sorts the whole chain. The empty chain is returned as is.
func SortAll(a *chain.Arena, head chain.Ref, opts ...Option) (chain.Ref, error) {
	return Sort(a, head, 0, chain.Len(a, head)-1, opts...)
}

func sortRange(a *chain.Arena, head chain.Ref, lo, hi int, key func(int) int) (chain.Ref, error) {
	if lo >= hi {
		return head, nil
	}
	mid := MidIndex(lo, hi)

	var err error
	if head, err = sortRange(a, head, lo, mid-1, key); err != nil {
		return head, err
	}
	if head, err = sortRange(a, head, mid, hi, key); err != nil {
		return head, err
	}
	return merge(a, head, lo, hi, key)
}
