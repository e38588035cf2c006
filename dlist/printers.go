package dlist

import (
	"fmt"
	"io"
)

// PrintColumns is the number of values per line written by Fprint.
const PrintColumns = 8

// Fprint writes the values head to tail, PrintColumns to a line, and always
// ends with a newline.
func Fprint(w io.Writer, l *List) error {
	count := 0
	for v := range l.All() {
		if _, err := fmt.Fprintf(w, "%11d, ", v); err != nil {
			return err
		}
		count = (count + 1) % PrintColumns
		if count == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// FprintVerbose writes one line per node with its value and the refs of its
// neighbours, for checking the links by eye.
func FprintVerbose(w io.Writer, l *List) error {
	for ref := l.head; ref != NoRef; ref = l.nodes[ref].next {
		n := l.nodes[ref]
		_, err := fmt.Fprintf(w, "value: %11d\tprev: %8s\tref: %8s\tnext: %8s\n",
			n.value, refString(n.prev), refString(ref), refString(n.next))
		if err != nil {
			return err
		}
	}
	return nil
}

func refString(ref Ref) string {
	if ref == NoRef {
		return "nil"
	}
	return fmt.Sprintf("%d", ref)
}
