package chain

// Build creates a chain holding values in order. values[0] is the head.
//
// Exactly len(values) nodes are allocated. An empty values returns NoRef. On
// failure the nodes allocated so far are released and NoRef is returned.
func Build(a *Arena, values []int) (Ref, error) {
	head := NoRef

	// Prepend from the back so the first value ends up at the head.
	for i := len(values) - 1; i >= 0; i-- {
		ref, err := a.Alloc(values[i])
		if err != nil {
			// head is a well formed chain of everything built so far
			if derr := Destroy(a, head); derr != nil {
				return NoRef, derr
			}
			return NoRef, err
		}
		a.SetNext(ref, head)
		head = ref
	}
	return head, nil
}

// DeepCopy returns a new chain with the same values in the same order and no
// node in common with head.
//
// The copy is built in a single forward pass. On failure the partial copy is
// released and the source is left untouched.
func DeepCopy(a *Arena, head Ref) (Ref, error) {
	if head == NoRef {
		return NoRef, nil
	}

	copyHead := NoRef
	tail := NoRef
	for src := head; src != NoRef; src = a.Next(src) {
		ref, err := a.Alloc(a.Value(src))
		if err != nil {
			if derr := Destroy(a, copyHead); derr != nil {
				return NoRef, derr
			}
			return NoRef, err
		}
		if tail == NoRef {
			copyHead = ref
		} else {
			a.SetNext(tail, ref)
		}
		tail = ref
	}
	return copyHead, nil
}

// Destroy releases every node of the chain starting at head. NoRef is a no-op.
func Destroy(a *Arena, head Ref) error {
	for head != NoRef {
		if !a.IsLive(head) {
			// Release reports ErrBadRef or ErrDoubleRelease
			return a.Release(head)
		}
		next := a.Next(head)
		if err := a.Release(head); err != nil {
			return err
		}
		head = next
	}
	return nil
}
