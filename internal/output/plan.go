package output

import (
	"fmt"
	"io"
)

// PlanEntry is one step of a release plan.
type PlanEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Skipped     bool     `json:"skipped"`
	Reason      string   `json:"reason,omitempty"`
	Commands    []string `json:"commands,omitempty"`
}

// WritePlan writes a numbered, human-readable release plan.
func WritePlan(w io.Writer, entries []PlanEntry) error {
	for i, e := range entries {
		if e.Skipped {
			if _, err := fmt.Fprintf(w, "%2d. %-14s skipped (%s)\n", i+1, e.Name, e.Reason); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%2d. %-14s %s\n", i+1, e.Name, e.Description); err != nil {
			return err
		}
		for _, c := range e.Commands {
			if _, err := fmt.Fprintf(w, "      %s %s\n", arrowPrefix, c); err != nil {
				return err
			}
		}
	}
	return nil
}

const arrowPrefix = "→"
