package export

import (
	"bytes"
	"encoding/csv"
	"errors"
)

// ErrNoRows is returned when an export is attempted over an empty collection.
// Callers surface it to the admin instead of producing a header-only file.
var ErrNoRows = errors.New("export: no records to export")

// Column pairs a CSV header with an accessor into the exported record type.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// CSV serializes records into RFC 4180 CSV: one header row followed by one
// row per record, columns in the given order. Fields containing commas,
// quotes or newlines are quoted with embedded quotes doubled.
func CSV[T any](records []T, columns []Column[T]) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoRows
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Header
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			row[i] = col.Value(rec)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
