package sheet

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Row is one parsed data row: trimmed header name to trimmed cell value.
type Row map[string]string

// ReadError indicates the source file could not be read as a sheet at all.
// It fails the whole pass before any row is processed.
type ReadError struct {
	Reason string
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("sheet unreadable: %s", e.Reason)
}

// Parse splits raw text content into rows using the configured 1-based
// header and start line indexes.
//
// Cells are comma-split with no quote handling; a value containing an
// embedded comma will misalign columns. This mirrors the write path's
// escaping asymmetry and is intentional. Rows shorter than the header are
// padded with empty strings, extra cells beyond the header count are
// dropped, and blank lines produce no row.
func Parse(content []byte, headerRow, startRow int) ([]Row, error) {
	if !utf8.Valid(content) {
		return nil, &ReadError{Reason: "content is not valid text"}
	}

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	if headerRow < 1 || headerRow > len(lines) {
		return nil, &ReadError{Reason: fmt.Sprintf("header row %d out of range (%d lines)", headerRow, len(lines))}
	}
	if startRow < 1 {
		return nil, &ReadError{Reason: fmt.Sprintf("start row %d out of range", startRow)}
	}

	headers := splitCells(lines[headerRow-1])
	if len(headers) == 0 || (len(headers) == 1 && headers[0] == "") {
		return nil, &ReadError{Reason: fmt.Sprintf("header row %d is blank", headerRow)}
	}

	rows := make([]Row, 0)
	if startRow > len(lines) {
		return rows, nil
	}

	for _, line := range lines[startRow-1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := splitCells(line)

		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func splitCells(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
