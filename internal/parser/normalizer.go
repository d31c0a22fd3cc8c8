package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Normalize reads comma-separated UTF-8 text with a header row and returns
// one FlatRow per surviving data row, in file order. A fatal csv syntax
// error (unterminated quote etc.) aborts the whole decode with no partial
// result. Rows that repeat the header text and rows whose every cell is
// blank are dropped; everything else survives untouched so the inheritance
// decode downstream sees the original row sequence.
func Normalize(r io.Reader) ([]FlatRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // hand-edited sheets are ragged

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decoding csv: %w", err)
	}
	if len(records) == 0 {
		return []FlatRow{}, nil
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	// Keep only the recognized columns; which of the seven actually made it
	// into each row is what the validator inspects for missing headers.
	rows := make([]FlatRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(FlatRow, len(index))
		for _, col := range RequiredColumns() {
			i, ok := index[col]
			if !ok {
				continue
			}
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		if isHeaderEcho(row) || isBlank(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// isHeaderEcho detects a repeated header row pasted mid-file: the device
// code cell carries the device-code header literal, or the component cell
// carries the component header literal.
func isHeaderEcho(row FlatRow) bool {
	return strings.TrimSpace(row[ColDeviceCode]) == ColDeviceCode ||
		strings.TrimSpace(row[ColComponent]) == ColComponent
}

func isBlank(row FlatRow) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
