// Package msort implements an index bounded merge sort over a chain.
//
// Ranges are addressed by position from the head, [lo, hi] inclusive, rather
// than by splitting the chain into separate sub chains. The runs merged for
// [lo, hi] are [lo, mid-1] and [mid, hi] with mid = hi - (hi-lo)/2.
//
// Each merge copies the whole chain into a fresh destination buffer in the
// same walk that locates the runs, merges into the buffer, then releases the
// original chain:
//
//	    lo      mid hi
//	[9] [1] [4] [2] [3] [0]      original, consumed
//	[9] [1] [2] [3] [4] [0]      destination, returned
package msort
