// Package demo drives the repositories and snapshot stores the way an
// interactive program would: it seeds sample data, prints listings, and
// reports rejected operations without stopping.
package demo

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// PrintAll writes one line per item under a heading, or a placeholder when
// items is empty.
func PrintAll[T fmt.Stringer](out io.Writer, heading, empty string, items []T) {
	fmt.Fprintf(out, "--- %s ---\n", heading)
	if len(items) == 0 {
		fmt.Fprintln(out, empty)
	}
	for _, item := range items {
		fmt.Fprintln(out, item)
	}
	fmt.Fprintln(out)
}

// Report writes the outcome of an operation. A failure is printed as its
// kind and message; the caller carries on either way.
func Report(out io.Writer, err error) {
	if err == nil {
		fmt.Fprintln(out, "OK")
		return
	}
	fmt.Fprintf(out, "%s: %s\n", types.KindOf(err), err)
}
