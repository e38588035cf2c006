package chain

import (
	"fmt"
	"io"
)

// PrintColumns is the number of values per line written by Fprint.
const PrintColumns = 5

// Fprint writes the chain values in fixed width columns, PrintColumns to a
// line. A partial last line is terminated. The empty chain writes nothing.
func Fprint(w io.Writer, a *Arena, head Ref) error {
	count := 0
	for v := range All(a, head) {
		if _, err := fmt.Fprintf(w, "%6d ", v); err != nil {
			return err
		}
		count++
		if count == PrintColumns {
			count = 0
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	if count != 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
