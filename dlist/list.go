package dlist

import (
	"errors"
	"fmt"
	"iter"
)

// Ref is a node record index in a List.
type Ref uint32

// NoRef marks the ends of the list.
const NoRef = ^Ref(0)

var (
	ErrBadRef = errors.New("dlist: ref does not address a live node")
	ErrEmpty  = errors.New("dlist: list is empty")
)

type node struct {
	value int
	prev  Ref
	next  Ref
	live  bool
}

// List is a doubly linked list of ints which tracks its head, tail and length.
// Nodes live in a slice owned by the list and released slots are reused. A
// List is not safe for concurrent use.
type List struct {
	nodes []node
	free  []Ref

	head   Ref
	tail   Ref
	length int

	allocs   uint64
	releases uint64
}

func New() *List {
	return &List{head: NoRef, tail: NoRef}
}

// FromValues builds a list holding values in order, values[0] at the head.
func FromValues(values []int) *List {
	l := New()
	for i := len(values) - 1; i >= 0; i-- {
		l.PushFront(values[i])
	}
	return l
}

func (l *List) alloc(value int) Ref {
	var ref Ref
	if n := len(l.free); n > 0 {
		ref = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		ref = Ref(len(l.nodes))
		l.nodes = append(l.nodes, node{})
	}
	l.nodes[ref] = node{value: value, prev: NoRef, next: NoRef, live: true}
	l.allocs++
	return ref
}

func (l *List) release(ref Ref) {
	l.nodes[ref] = node{prev: NoRef, next: NoRef}
	l.free = append(l.free, ref)
	l.releases++
}

func (l *List) isLive(ref Ref) bool {
	return uint64(ref) < uint64(len(l.nodes)) && l.nodes[ref].live
}

// PushFront adds value before the head and returns its ref.
func (l *List) PushFront(value int) Ref {
	ref := l.alloc(value)
	l.nodes[ref].next = l.head
	if l.head != NoRef {
		l.nodes[l.head].prev = ref
	} else {
		l.tail = ref
	}
	l.head = ref
	l.length++
	return ref
}

// PushBack adds value after the tail and returns its ref.
func (l *List) PushBack(value int) Ref {
	ref := l.alloc(value)
	l.nodes[ref].prev = l.tail
	if l.tail != NoRef {
		l.nodes[l.tail].next = ref
	} else {
		l.head = ref
	}
	l.tail = ref
	l.length++
	return ref
}

// PopFront removes the head and returns its value.
func (l *List) PopFront() (int, error) {
	if l.head == NoRef {
		return 0, ErrEmpty
	}
	v := l.nodes[l.head].value
	l.unlink(l.head)
	return v, nil
}

// Delete unlinks and releases the node at ref.
//
// It returns the node before ref. When ref was the head it returns the new
// head instead, which is NoRef if the list is now empty.
func (l *List) Delete(ref Ref) (Ref, error) {
	if !l.isLive(ref) {
		return NoRef, fmt.Errorf("%w: ref=%d", ErrBadRef, ref)
	}
	prev, next := l.nodes[ref].prev, l.nodes[ref].next
	l.unlink(ref)
	if prev == NoRef {
		return next, nil
	}
	return prev, nil
}

func (l *List) unlink(ref Ref) {
	n := l.nodes[ref]
	if n.prev != NoRef {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != NoRef {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.release(ref)
	l.length--
}

// Clear releases every node.
func (l *List) Clear() {
	for ref := l.head; ref != NoRef; {
		next := l.nodes[ref].next
		l.release(ref)
		ref = next
	}
	l.head, l.tail, l.length = NoRef, NoRef, 0
}

func (l *List) Head() Ref { return l.head }
func (l *List) Tail() Ref { return l.tail }
func (l *List) Len() int  { return l.length }

// Live returns the number of nodes currently allocated.
func (l *List) Live() int { return int(l.allocs - l.releases) }

// Value, Next and Prev require a live ref.
func (l *List) Value(ref Ref) int { return l.nodes[ref].value }
func (l *List) Next(ref Ref) Ref  { return l.nodes[ref].next }
func (l *List) Prev(ref Ref) Ref  { return l.nodes[ref].prev }

// All iterates the values from head to tail.
func (l *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for ref := l.head; ref != NoRef; ref = l.nodes[ref].next {
			if !yield(l.nodes[ref].value) {
				return
			}
		}
	}
}

// Backward iterates the values from tail to head.
func (l *List) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for ref := l.tail; ref != NoRef; ref = l.nodes[ref].prev {
			if !yield(l.nodes[ref].value) {
				return
			}
		}
	}
}

func (l *List) Values() []int {
	values := make([]int, 0, l.length)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}
