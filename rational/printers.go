package rational

import (
	"fmt"
	"io"
)

// PrintColumns is the number of values per line written by Fprint.
const PrintColumns = 6

// Fprint writes values as a comma separated list, PrintColumns to a line,
// enclosed in brackets on their own lines.
func Fprint(w io.Writer, values []Rational) error {
	if _, err := fmt.Fprintln(w, "[ "); err != nil {
		return err
	}
	for i, v := range values {
		sep := ""
		if i < len(values)-1 {
			sep = ", "
		}
		if _, err := fmt.Fprintf(w, "%s%s", v, sep); err != nil {
			return err
		}
		if (i+1)%PrintColumns == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprint(w, "\n]\n")
	return err
}
