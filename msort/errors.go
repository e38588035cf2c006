package msort

import (
	"errors"
	"fmt"
)

var ErrInvalidBounds = errors.New("msort: range bounds invalid for the chain")

// checkBounds accepts 0 <= lo <= hi+1 and hi < length. lo == hi+1 is the
// empty range, so (0, -1) is valid for the empty chain.
func checkBounds(lo, hi, length int) error {
	if lo < 0 || hi < lo-1 || hi >= length {
		return fmt.Errorf("%w: lo=%d, hi=%d, length=%d", ErrInvalidBounds, lo, hi, length)
	}
	return nil
}
