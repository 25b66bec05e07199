// Package report formats connectivity metrics for people and machines and
// renders region labellings as images.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/waternet/connectivity"
)

// Entry is one analysed raster.
type Entry struct {
	Name   string `json:"name"`
	Source string `json:"source,omitempty"`
	connectivity.Metrics
	// DegreeHistogram[d] counts nodes of degree d (connectivity.DegreeHistogram).
	// JSON output only.
	DegreeHistogram []int `json:"degree_histogram,omitempty"`
}

// WriteText prints each entry as the classic six-line block: counts as
// integers, average degree and connectivity with two decimals. Blocks are
// separated by a blank line and headed by the entry name when there is more
// than one.
func WriteText(w io.Writer, entries []Entry) error {
	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if len(entries) > 1 {
			if _, err := fmt.Fprintf(w, "[%s]\n", e.Name); err != nil {
				return err
			}
		}
		m := e.Metrics
		if _, err := fmt.Fprintf(w,
			"Number of Edges: %d\n"+
				"Largest Component Size: %d\n"+
				"Number of Nodes: %d\n"+
				"Average Number of Node Connections: %.2f\n"+
				"Number of Components: %d\n"+
				"Connectivity Metric: %.2f\n",
			m.Edges, m.LargestComponent, m.Nodes, m.AvgDegree, m.Components, m.Score); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON encodes entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// WriteTable prints one aligned row per entry, for comparing years side by side.
func WriteTable(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintln(tw, "NAME\tNODES\tEDGES\tCOMPONENTS\tLARGEST\tAVG DEGREE\tCONNECTIVITY\t"); err != nil {
		return err
	}
	for _, e := range entries {
		m := e.Metrics
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.2f\t%.2f\t\n",
			e.Name, m.Nodes, m.Edges, m.Components, m.LargestComponent, m.AvgDegree, m.Score); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Write dispatches on format: "text", "json" or "table".
func Write(w io.Writer, format string, entries []Entry) error {
	switch format {
	case "text":
		return WriteText(w, entries)
	case "json":
		return WriteJSON(w, entries)
	case "table":
		return WriteTable(w, entries)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}
