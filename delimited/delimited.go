// Package delimited implements the comma-delimited interchange format:
// an explicit character-scanning parser plus the matching writer-side
// escaping. Quoted cells may contain literal commas, quotes and newlines,
// which is why this cannot be a split-on-comma implementation.
package delimited

import "strings"

// ParseRows tokenizes raw text into rows of cell strings.
//
// Cells are separated by commas and rows by newlines. A cell wrapped in
// double quotes keeps embedded commas and newlines literal, and a doubled
// quote inside it decodes to one literal quote character. Unquoted cells
// are trimmed of surrounding whitespace; quoted content is taken
// verbatim. Carriage returns are stripped and blank lines skipped.
func ParseRows(text string) [][]string {
	text = strings.ReplaceAll(text, "\r", "")

	var rows [][]string
	var row []string
	var cell strings.Builder
	inQuotes := false
	cellQuoted := false
	rowQuoted := false

	finishCell := func() {
		s := cell.String()
		if !cellQuoted {
			s = strings.TrimSpace(s)
		}
		row = append(row, s)
		rowQuoted = rowQuoted || cellQuoted
		cell.Reset()
		cellQuoted = false
	}

	finishRow := func() {
		finishCell()
		// A line with no delimiters and no quoted content is blank, skip it
		if len(row) == 1 && row[0] == "" && !rowQuoted {
			row = nil
			rowQuoted = false
			return
		}
		rows = append(rows, row)
		row = nil
		rowQuoted = false
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					cell.WriteByte('"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			cell.WriteByte(c)
			continue
		}

		switch c {
		case '"':
			if cell.Len() == 0 && !cellQuoted {
				inQuotes = true
				cellQuoted = true
			} else {
				// Stray quote mid-cell, keep it literal
				cell.WriteByte(c)
			}
		case ',':
			finishCell()
		case '\n':
			finishRow()
		default:
			cell.WriteByte(c)
		}
	}

	// Flush a final row that isn't newline-terminated. An unterminated
	// quoted cell is closed implicitly rather than rejected.
	if cell.Len() > 0 || cellQuoted || len(row) > 0 {
		finishRow()
	}

	return rows
}

// Escape quotes a cell for output if and only if it contains a comma or
// a double quote, doubling any internal quotes
func Escape(cell string) string {
	if !strings.ContainsAny(cell, ",\"") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

// FormatRow renders one newline-terminated output row
func FormatRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = Escape(c)
	}
	return strings.Join(escaped, ",") + "\n"
}
