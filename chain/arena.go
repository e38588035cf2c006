package chain

import "fmt"

type node struct {
	value int
	next  Ref
	live  bool
}

type ArenaOptions struct {
	// Capacity is the maximum number of live nodes. Zero means unbounded.
	Capacity int
}

// Option is a generic option type. Implementations type assert to their
// options target and ignore the option if that fails.
type Option func(any)

// WithCapacity bounds the number of nodes that may be live at once.
func WithCapacity(n int) Option {
	return func(opts any) {
		if o, ok := opts.(*ArenaOptions); ok {
			o.Capacity = n
		}
	}
}

// Arena is a growable node store. Refs index into it and released slots are
// reused. An Arena is not safe for concurrent use.
type Arena struct {
	opts ArenaOptions

	nodes []node
	free  []Ref

	allocs   uint64
	releases uint64
}

func NewArena(opts ...Option) *Arena {
	a := &Arena{}
	for _, o := range opts {
		o(&a.opts)
	}
	return a
}

// Alloc creates a terminal node holding value.
func (a *Arena) Alloc(value int) (Ref, error) {
	if a.opts.Capacity > 0 && a.Live() >= a.opts.Capacity {
		return NoRef, ErrArenaExhausted
	}

	var ref Ref
	if n := len(a.free); n > 0 {
		ref = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if uint64(len(a.nodes)) >= uint64(NoRef) {
			return NoRef, ErrArenaExhausted
		}
		ref = Ref(len(a.nodes))
		a.nodes = append(a.nodes, node{})
	}
	a.nodes[ref] = node{value: value, next: NoRef, live: true}
	a.allocs++
	return ref, nil
}

// Release returns the node to the arena. Its next link is not followed.
func (a *Arena) Release(ref Ref) error {
	if uint64(ref) >= uint64(len(a.nodes)) {
		return fmt.Errorf("%w: ref=%d, size=%d", ErrBadRef, ref, len(a.nodes))
	}
	if !a.nodes[ref].live {
		return fmt.Errorf("%w: ref=%d", ErrDoubleRelease, ref)
	}
	a.nodes[ref] = node{next: NoRef}
	a.free = append(a.free, ref)
	a.releases++
	return nil
}

// Value returns the value stored at ref. ref must be live.
func (a *Arena) Value(ref Ref) int {
	return a.nodes[ref].value
}

// Next returns the node following ref, or NoRef. ref must be live.
func (a *Arena) Next(ref Ref) Ref {
	return a.nodes[ref].next
}

func (a *Arena) SetValue(ref Ref, value int) {
	a.nodes[ref].value = value
}

func (a *Arena) SetNext(ref Ref, next Ref) {
	a.nodes[ref].next = next
}

// IsLive reports whether ref addresses a node that has not been released.
func (a *Arena) IsLive(ref Ref) bool {
	return uint64(ref) < uint64(len(a.nodes)) && a.nodes[ref].live
}

// Allocs returns the number of successful Alloc calls over the arena lifetime.
func (a *Arena) Allocs() uint64 { return a.allocs }

// Releases returns the number of successful Release calls over the arena lifetime.
func (a *Arena) Releases() uint64 { return a.releases }

// Live returns the number of nodes currently allocated.
func (a *Arena) Live() int {
	return int(a.allocs - a.releases)
}
