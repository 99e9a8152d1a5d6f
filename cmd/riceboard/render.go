package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arthur-debert/riceboard/rice"
	"github.com/arthur-debert/riceboard/types"
)

// renderTable prints the features as an aligned table. Scores are
// rounded to two decimals for display only; undefined scores show as
// a dash.
func renderTable(w io.Writer, features []types.Feature) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tNAME\tREACH\tIMPACT\tCONFIDENCE\tEFFORT\tID")
	for _, f := range features {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			scoreText(f),
			f.Name,
			reachCell(f.Reach),
			valueCell(f.Impact),
			valueCell(f.Confidence),
			valueCell(f.Effort),
			shortID(f.ID),
		)
	}
	_ = tw.Flush()
}

func printFeature(w io.Writer, f types.Feature) {
	fmt.Fprintf(w, "%s  %s (score %s)\n", shortID(f.ID), f.Name, scoreText(f))
}

func scoreText(f types.Feature) string {
	score, ok := rice.ComputeScore(f)
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.2f", score)
}

func reachCell(reach *float64) string {
	if reach == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *reach)
}

func valueCell(v types.Value) string {
	if !v.IsSet() {
		return "-"
	}
	return v.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
