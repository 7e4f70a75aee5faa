package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// outputStrings prints a list of strings in text or JSON format.
func outputStrings(w io.Writer, items []string, format, label string) error {
	if format == "json" {
		return outputJSON(w, items)
	}

	if len(items) == 0 {
		fmt.Fprintf(w, "No %s found.\n", label)
		return nil
	}

	fmt.Fprintf(w, "Found %d %s:\n", len(items), label)
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
	return nil
}

func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
