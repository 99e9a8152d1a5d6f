// Package imports maps external interchange data (delimited rows or
// structured records) onto feature records, collecting row-addressable
// diagnostics instead of failing. Rows are processed independently; one
// bad row never blocks the others.
package imports

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/riceboard/delimited"
	"github.com/arthur-debert/riceboard/ids"
	"github.com/arthur-debert/riceboard/rice"
	"github.com/arthur-debert/riceboard/types"
)

// RowError is one import diagnostic tied to a 1-based input row.
// For delimited input the header counts as row 1; structural failures
// are always reported against row 1.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// Result carries the accepted features plus every diagnostic gathered
// along the way. A structural failure yields zero features and a single
// row-1 error; soft warnings leave their row in Features with the
// offending field unresolved.
type Result struct {
	Features []types.Feature
	Errors   []RowError
}

// Options injects the collaborators normalization needs. Zero value is
// usable: random UUIDs and the wall clock.
type Options struct {
	// IDs generates identifiers for imported rows
	IDs ids.Generator

	// Now supplies the shared createdAt/updatedAt timestamp
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.IDs == nil {
		o.IDs = ids.NewUUID()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// requiredColumns must all be present in a delimited header; description
// is the only optional column
var requiredColumns = []string{"name", "reach", "impact", "confidence", "effort"}

// FromDelimited parses raw delimited text (first row = header) and
// normalizes it
func FromDelimited(text string, opts Options) Result {
	return FromRows(delimited.ParseRows(text), opts)
}

// FromRows normalizes already-tokenized rows, treating the first row as
// the header
func FromRows(rows [][]string, opts Options) Result {
	opts = opts.withDefaults()

	if len(rows) == 0 {
		return structuralFailure("input is empty, expected a header row")
	}

	columns := resolveHeader(rows[0])
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return structuralFailure("missing required column(s): " + strings.Join(missing, ", "))
	}

	now := opts.Now()
	var result Result
	for i, row := range rows[1:] {
		rowNum := i + 2
		feature, errs := normalizeRow(row, columns, opts.IDs, now, rowNum)
		result.Errors = append(result.Errors, errs...)
		if feature != nil {
			result.Features = append(result.Features, *feature)
		}
	}
	return result
}

// resolveHeader matches header cells case-insensitively against the
// known column set; unknown columns are ignored
func resolveHeader(header []string) map[string]int {
	known := map[string]bool{
		"name": true, "reach": true, "impact": true,
		"confidence": true, "effort": true, "description": true,
	}
	columns := make(map[string]int)
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if known[name] {
			if _, dup := columns[name]; !dup {
				columns[name] = i
			}
		}
	}
	return columns
}

func normalizeRow(row []string, columns map[string]int, gen ids.Generator, now time.Time, rowNum int) (*types.Feature, []RowError) {
	var errs []RowError

	name := cellAt(row, columns, "name")
	if name == "" {
		return nil, []RowError{{Row: rowNum, Message: "Missing name"}}
	}

	feature := types.Feature{
		ID:        gen.NewID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if idx, ok := columns["description"]; ok && idx < len(row) {
		feature.Description = row[idx]
	}

	if raw := cellAt(row, columns, "reach"); raw != "" {
		// A non-numeric reach is left unresolved without a diagnostic;
		// scoring surfaces it as an incomplete record
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			if rice.IsValidReach(n) {
				feature.Reach = &n
			} else {
				errs = append(errs, RowError{Row: rowNum, Message: "Invalid reach: " + raw})
			}
		}
	}

	feature.Impact, errs = resolveCell(cellAt(row, columns, "impact"), types.ImpactScale, rowNum, errs)
	feature.Confidence, errs = resolveCell(cellAt(row, columns, "confidence"), types.ConfidenceScale, rowNum, errs)
	feature.Effort, errs = resolveCell(cellAt(row, columns, "effort"), types.EffortScale, rowNum, errs)

	return &feature, errs
}

// resolveCell turns one non-empty cell into a Value: canonical label
// match first (so confidence "80" reads as the "80%" label, not the
// number eighty), then numeric passthrough. Unresolvable or out-of-range
// cells record a diagnostic and stay unset.
func resolveCell(raw string, scale *types.Scale, rowNum int, errs []RowError) (types.Value, []RowError) {
	if raw == "" {
		return types.Value{}, errs
	}
	if canon, ok := scale.Canonical(raw); ok {
		return types.LabelValue(canon), errs
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		value := types.NumberValue(n)
		if scale == types.EffortScale && !rice.IsAllowedEffort(value) {
			return types.Value{}, append(errs, RowError{Row: rowNum, Message: "Invalid effort: " + raw})
		}
		return value, errs
	}
	return types.Value{}, append(errs, RowError{
		Row:     rowNum,
		Message: fmt.Sprintf("Unrecognized %s: %s", scale.Name, raw),
	})
}

func cellAt(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func structuralFailure(message string) Result {
	return Result{Errors: []RowError{{Row: 1, Message: message}}}
}
