package chain

import "iter"

// All returns an iterator over the values of the chain starting at head.
//
// The iterator is lazy and may be ranged over any number of times, each pass
// starting again from head. The chain must not be released while ranging.
func All(a *Arena, head Ref) iter.Seq[int] {
	return func(yield func(int) bool) {
		for ref := head; ref != NoRef; ref = a.Next(ref) {
			if !yield(a.Value(ref)) {
				return
			}
		}
	}
}

// Values collects the chain into a slice. The empty chain gives an empty,
// non nil, slice.
func Values(a *Arena, head Ref) []int {
	values := []int{}
	for v := range All(a, head) {
		values = append(values, v)
	}
	return values
}

// Len walks the chain and returns its node count.
func Len(a *Arena, head Ref) int {
	n := 0
	for ref := head; ref != NoRef; ref = a.Next(ref) {
		n++
	}
	return n
}

// At walks i nodes from head and returns the node there, or NoRef if the
// chain is shorter than i+1.
func At(a *Arena, head Ref, i int) Ref {
	ref := head
	for ; i > 0 && ref != NoRef; i-- {
		ref = a.Next(ref)
	}
	return ref
}
