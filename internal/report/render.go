package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/filespect/filespect/internal/engine"
	"github.com/filespect/filespect/internal/types"
)

type PrintOptions struct {
	Verbose bool
	Quiet   bool
	NoColor bool
}

// PrintResults renders one line per result. Baseline form is
// "path: label (explanation)"; quiet strips it to "path: label"; verbose
// appends the stage and confidence before the explanation.
func PrintResults(w io.Writer, results []types.DetectionResult, opts PrintOptions) {
	for _, r := range results {
		label := r.Category.Label()
		if !opts.NoColor {
			label = colorLabel(r.Category)
		}
		switch {
		case opts.Quiet:
			fmt.Fprintf(w, "%s: %s\n", r.Path, label)
		case opts.Verbose:
			info := fmt.Sprintf("[%s, %d%% confidence]", r.Stage, int(r.Confidence*100))
			if r.Explanation != "" {
				fmt.Fprintf(w, "%s: %s %s - %s\n", r.Path, label, info, r.Explanation)
			} else {
				fmt.Fprintf(w, "%s: %s %s\n", r.Path, label, info)
			}
		default:
			if r.Explanation != "" {
				fmt.Fprintf(w, "%s: %s (%s)\n", r.Path, label, r.Explanation)
			} else {
				fmt.Fprintf(w, "%s: %s\n", r.Path, label)
			}
		}
	}
}

// PrintJSON emits the results as a JSON array.
func PrintJSON(w io.Writer, results []types.DetectionResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// PrintSummaryTable renders per-category counts for the processed results.
func PrintSummaryTable(w io.Writer, results []types.DetectionResult) error {
	counts := map[types.Category]int{}
	for _, r := range results {
		counts[r.Category]++
	}
	table := tablewriter.NewWriter(w)
	table.Header("Category", "Count")
	for _, c := range types.Categories() {
		if n := counts[c]; n > 0 {
			if err := table.Append(c.Label(), fmt.Sprintf("%d", n)); err != nil {
				return err
			}
		}
	}
	if err := table.Append("Total", fmt.Sprintf("%d", len(results))); err != nil {
		return err
	}
	return table.Render()
}

// PrintStats writes the verbose-mode summary line.
func PrintStats(w io.Writer, res engine.Result) {
	line := fmt.Sprintf("Summary: %d/%d files identified", res.Detected, res.FilesScanned)
	if res.Errors > 0 {
		line += fmt.Sprintf(", %d errors", res.Errors)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
}

func colorLabel(c types.Category) string {
	switch c {
	case types.Unknown:
		return "\x1b[31m" + c.Label() + "\x1b[0m" // red
	case types.Binary, types.Empty:
		return "\x1b[33m" + c.Label() + "\x1b[0m" // yellow
	case types.Directory, types.Symlink:
		return "\x1b[36m" + c.Label() + "\x1b[0m" // cyan
	default:
		return "\x1b[32m" + c.Label() + "\x1b[0m" // green
	}
}
