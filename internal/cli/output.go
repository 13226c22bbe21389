package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// printValue writes v as indented JSON in JSON mode, otherwise through its
// String method.
func printValue(w io.Writer, jsonMode bool, v any) error {
	if jsonMode {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}
	fmt.Fprintln(w, v)
	return nil
}

// printList writes items as one JSON array in JSON mode, otherwise one per
// line.
func printList(w io.Writer, jsonMode bool, items []any) error {
	if jsonMode {
		return printValue(w, true, items)
	}
	for _, item := range items {
		fmt.Fprintln(w, item)
	}
	return nil
}
