package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/docket-run/docket/pkg/manifest"
)

// WriteText renders project states as a fixed-width table.
func WriteText(w io.Writer, states []manifest.State) {
	fmt.Fprintf(w, "%-20s %-20s %-7s %-15s %s\n",
		"PROJECT", "DEPARTMENT", "FUNDED", "BUDGET", "COMPLETED")
	for _, s := range states {
		fmt.Fprintf(w, "%-20s %-20s %-7t %-15.2f %t\n",
			s.Name, s.Department, s.Funded, s.Budget, s.Completed)
	}
}

// WriteJSON renders project states as NDJSON, one project per line.
func WriteJSON(w io.Writer, states []manifest.State) error {
	enc := json.NewEncoder(w)
	for _, s := range states {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}
