// Package export persists throughput tables next to the results they were
// collected from, and loads them back.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/weiihann/ycsbplot/results"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// baseName is the file name, without extension, of every export.
const baseName = "result"

// Path returns where Write stores the given format under dir.
func Path(dir, format string) string {
	return filepath.Join(dir, baseName+"."+format)
}

// Write stores table under dir in each of the given formats and returns the
// written paths.
func Write(dir string, table results.Table, formats ...string) ([]string, error) {
	paths := make([]string, 0, len(formats))

	for _, format := range formats {
		path := Path(dir, format)

		var err error

		switch format {
		case FormatCSV:
			err = writeFile(path, func(w io.Writer) error { return WriteCSV(w, table) })
		case FormatJSON:
			err = writeFile(path, func(w io.Writer) error { return WriteJSON(w, table) })
		case FormatXLSX:
			err = WriteXLSX(path, table)
		default:
			return paths, fmt.Errorf("unknown export format %q", format)
		}

		if err != nil {
			return paths, fmt.Errorf("export %s: %w", format, err)
		}

		paths = append(paths, path)
	}

	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// WriteCSV writes table with a header row. Throughput keeps full precision.
func WriteCSV(w io.Writer, table results.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(results.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range table {
		if err := cw.Write(record(r)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// ReadCSV loads a table written by WriteCSV.
func ReadCSV(r io.Reader) (results.Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: missing header")
	}

	return fromRecords(records[1:])
}

// WriteJSON writes table as an indented JSON array.
func WriteJSON(w io.Writer, table results.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if table == nil {
		table = results.Table{}
	}

	return enc.Encode(table)
}

// ReadJSON loads a table written by WriteJSON.
func ReadJSON(r io.Reader) (results.Table, error) {
	var table results.Table
	if err := json.NewDecoder(r).Decode(&table); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	return table, nil
}

func record(r results.Row) []string {
	return []string{
		r.X,
		strconv.FormatFloat(r.Y, 'g', -1, 64),
		r.Label,
		r.Benchmark,
	}
}

func fromRecords(records [][]string) (results.Table, error) {
	table := make(results.Table, 0, len(records))

	for i, rec := range records {
		if len(rec) != len(results.Columns()) {
			return nil, fmt.Errorf("row %d: got %d columns, want %d",
				i+1, len(rec), len(results.Columns()))
		}

		y, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse y: %w", i+1, err)
		}

		table = append(table, results.Row{
			X:         rec[0],
			Y:         y,
			Label:     rec[2],
			Benchmark: rec[3],
		})
	}

	return table, nil
}
