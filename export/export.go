/*
Package export serializes filtered collections for download.

PURPOSE:
  Turns a caller-ordered collection into delimited text (CSV) or an XLSX
  workbook via a column spec: a label and a per-row formatter for every
  column. The caller's filtered/sorted order is preserved verbatim;
  export never re-sorts.

QUOTING:
  CSV rendering goes through encoding/csv, so every field containing the
  delimiter, a quote, or a newline is quoted and internal quotes are
  doubled. Quoting is conditional per field, for every column, which is
  what makes the output round-trip safe: ParseCSV(CSV(rows, cols))
  reconstructs the original rendered values.

EXAMPLE:
  cols := []export.Column[Record]{
      {Label: "Name", Value: func(r Record) string { return r.Name }},
  }
  text, err := export.CSV(rows, cols)
*/
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column binds a header label to a per-row formatter.
type Column[T any] struct {
	Label string
	Value func(T) string
}

// =============================================================================
// CSV
// =============================================================================

// CSV renders one header row from the column labels and one row per
// record, in the given order.
func CSV[T any](rows []T, cols []Column[T]) (string, error) {
	if len(cols) == 0 {
		return "", fmt.Errorf("export: empty column spec")
	}
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Label
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	record := make([]string, len(cols))
	for _, row := range rows {
		for i, c := range cols {
			record[i] = c.Value(row)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseCSV reads delimited text back into rows of field values,
// header row included. Fields may contain commas, quotes, or newlines.
func ParseCSV(text string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// =============================================================================
// XLSX
// =============================================================================

// XLSX renders the same column spec into a single-sheet workbook,
// returned as bytes. No file is written.
func XLSX[T any](sheet string, rows []T, cols []Column[T]) ([]byte, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("export: empty column spec")
	}
	f := excelize.NewFile()
	defer f.Close()

	f.SetActiveSheet(f.NewSheet(sheet))

	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c.Label
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return nil, err
	}

	for n, row := range rows {
		cells := make([]interface{}, len(cols))
		for i, c := range cols {
			cells[i] = c.Value(row)
		}
		if err := writeRow(f, sheet, n+2, cells); err != nil {
			return nil, err
		}
	}

	// Drop the workbook's default sheet when the caller named another.
	if sheet != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}
