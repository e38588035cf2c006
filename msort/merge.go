package msort

import (
	"github.com/forestrie/go-listsort/chain"
)

// MidIndex returns the start of the right run for the range [lo, hi]. When the
// range length is odd the right run is the longer one.
func MidIndex(lo, hi int) int {
	return hi - (hi-lo)/2
}

// Merge merges the sorted runs [lo, mid-1] and [mid, hi] of the chain at head,
// where mid is MidIndex(lo, hi).
//
// The chain at head is consumed. The returned chain holds the stable merge at
// positions [lo, hi] and the original values everywhere else. Ranges of length
// one or zero are returned as is, without allocating.
//
// If the bounds are invalid, or the destination copy can not be allocated,
// head is returned unchanged, still owned by the caller, with the error.
func Merge(a *chain.Arena, head chain.Ref, lo, hi int, opts ...Option) (chain.Ref, error) {
	o := newOptions(opts)
	if err := checkBounds(lo, hi, chain.Len(a, head)); err != nil {
		return head, err
	}
	return merge(a, head, lo, hi, o.Key)
}

// merge assumes the bounds have been checked.
func merge(a *chain.Arena, head chain.Ref, lo, hi int, key func(int) int) (chain.Ref, error) {
	if lo >= hi {
		return head, nil
	}
	mid := MidIndex(lo, hi)

	// A single walk copies the whole chain into the destination buffer and
	// finds the heads of both runs, plus the buffer node at lo.
	var left, right, dst chain.Ref = chain.NoRef, chain.NoRef, chain.NoRef
	aux, tail := chain.NoRef, chain.NoRef
	pos := 0
	for src := head; src != chain.NoRef; src = a.Next(src) {
		ref, err := a.Alloc(a.Value(src))
		if err != nil {
			if derr := chain.Destroy(a, aux); derr != nil {
				return head, derr
			}
			return head, err
		}
		if tail == chain.NoRef {
			aux = ref
		} else {
			a.SetNext(tail, ref)
		}
		tail = ref

		if pos == lo {
			left = src
			dst = ref
		}
		if pos == mid {
			right = src
		}
		pos++
	}

	// i and j count how far each run has been consumed, so the run nodes are
	// never advanced past hi.
	i, j := lo, mid
	for k := 0; k < hi-lo+1; k++ {
		var v int
		switch {
		case i > mid-1:
			v = a.Value(right)
			right = a.Next(right)
			j++
		case j > hi:
			v = a.Value(left)
			left = a.Next(left)
			i++
		case key(a.Value(right)) < key(a.Value(left)):
			v = a.Value(right)
			right = a.Next(right)
			j++
		default:
			v = a.Value(left)
			left = a.Next(left)
			i++
		}
		a.SetValue(dst, v)
		dst = a.Next(dst)
	}

	// The merged copy is complete and owned by the caller from here on, even
	// if releasing the original fails.
	if err := chain.Destroy(a, head); err != nil {
		return aux, err
	}
	return aux, nil
}
