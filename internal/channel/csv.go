package channel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column names recognized by header detection, lower-cased.
var headerWords = map[string]bool{
	"id":          true,
	"name":        true,
	"url":         true,
	"category":    true,
	"group":       true,
	"description": true,
	"logo":        true,
	"country":     true,
	"language":    true,
}

// ReadRows reads an entire listing file into ordered raw rows. Rows may have
// uneven column counts; that is left to the consumer to handle.
func ReadRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	rows, err := ReadRowsFrom(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// ReadRowsFrom reads CSV rows from a stream, tolerating a UTF-8 BOM, uneven
// column counts and lazy quoting.
func ReadRowsFrom(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(stripBOM(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows writes rows to path in the same encoding the reader accepts.
func WriteRows(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := WriteRowsTo(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// WriteRowsTo writes rows to a stream as CSV.
func WriteRowsTo(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// LooksLikeHeader reports whether a row is a column header rather than data.
// A header row has at least two cells that are known column names and no cell
// that looks like a URL.
func LooksLikeHeader(row []string) bool {
	known := 0
	for _, cell := range row {
		cell = strings.ToLower(strings.TrimSpace(cell))
		if strings.Contains(cell, "://") {
			return false
		}
		if headerWords[cell] {
			known++
		}
	}
	return known >= 2
}

// stripBOM wraps a reader to strip a UTF-8 BOM if present.
func stripBOM(r io.Reader) io.Reader {
	buf := make([]byte, 3)
	n, err := r.Read(buf)
	if err != nil || n < 3 {
		return io.MultiReader(strings.NewReader(string(buf[:n])), r)
	}
	if buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF {
		return r
	}
	return io.MultiReader(strings.NewReader(string(buf[:n])), r)
}
