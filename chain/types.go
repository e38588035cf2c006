package chain

import "errors"

// Ref is a node record index in an Arena.
type Ref uint32

// NoRef marks the end of a chain, and is the head of the empty chain.
const NoRef = ^Ref(0)

var (
	ErrArenaExhausted = errors.New("chain: arena capacity exhausted")
	ErrDoubleRelease  = errors.New("chain: node already released")
	ErrBadRef         = errors.New("chain: ref not in arena")
)
