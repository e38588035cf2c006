package chain

/*

# Singly linked chains in an arena

This package provides the primitive building blocks for working with a singly
linked sequence of integers whose nodes live in an Arena and are addressed by
Ref rather than by pointer.

It follows the same "functional primitives" style as the rest of the module:

- small, composable functions taking the arena explicitly
- index arithmetic (Ref) in place of pointers
- a burden of knowledge on the caller for the low level accessors

## Ownership

A chain is addressed by the Ref of its first node. NoRef is the empty chain.
Every node is owned by exactly one chain: the node before it, or the caller
holding the head. Functions that consume a chain (Destroy, and msort.Merge in
the sibling package) release every node they were given. The caller must
treat the old head as invalid once it has been handed over.

Released slots go on a free list and are reused by later allocations, so a
stale Ref may alias a newer node. Accessors do not detect this, Release does:
releasing a slot that is already free fails with ErrDoubleRelease.

## Accounting

The arena counts allocations and releases. After a full construct, sort and
destroy cycle, Live() must be zero. This replaces a process wide malloc
counter with state scoped to a single arena, so tests can assert it without
any global reset.

## Allocation failure

WithCapacity bounds the number of live nodes. Alloc beyond that returns
ErrArenaExhausted. Build and DeepCopy release whatever they allocated before
returning that error, so a failed call never leaks.

	head -> [5] -> [3] -> [8] -> NoRef
	         r0     r1     r2

*/
