package dlist

import (
	"github.com/bits-and-blooms/bitset"
)

// maxBitsetSpan caps the bitset used to track seen values. Wider value ranges
// fall back to a map.
const maxBitsetSpan = 1 << 24

// DeleteDuplicates removes every node whose value already appeared closer to
// the head. The first occurrence of each value is kept, so relative order is
// preserved. Runs in linear time. Returns the number of nodes removed.
func (l *List) DeleteDuplicates() int {
	if l.length < 2 {
		return 0
	}

	seen := l.seenSet()
	removed := 0
	for ref := l.head; ref != NoRef; {
		next := l.nodes[ref].next
		if seen(l.nodes[ref].value) {
			l.unlink(ref)
			removed++
		}
		ref = next
	}
	return removed
}

// seenSet returns a test-and-set function over the values currently in the
// list. Values are offset by the minimum so negative values index the bitset.
func (l *List) seenSet() func(int) bool {
	lo, hi := l.nodes[l.head].value, l.nodes[l.head].value
	for v := range l.All() {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	span := uint64(hi) - uint64(lo)
	if span >= maxBitsetSpan {
		m := make(map[int]struct{}, l.length)
		return func(v int) bool {
			if _, ok := m[v]; ok {
				return true
			}
			m[v] = struct{}{}
			return false
		}
	}

	b := bitset.New(uint(span + 1))
	return func(v int) bool {
		i := uint(uint64(v) - uint64(lo))
		if b.Test(i) {
			return true
		}
		b.Set(i)
		return false
	}
}
