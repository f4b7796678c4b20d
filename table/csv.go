package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVOptions holds options for reading delimited files.
type CSVOptions struct {
	Delimiter rune // Field delimiter (default: ',')
	Comment   rune // Lines starting with this rune are ignored (default: none)
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
	}
}

// Load reads the file at path and builds a Table from it.
// The path becomes the table's source id and is used by Reload.
func Load(path string, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t, err := LoadReader(path, file, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	t.opts = opts
	return t, nil
}

// LoadReader builds a Table from delimited text read from r.
// source is an opaque id kept for diagnostics.
func LoadReader(source string, r io.Reader, opts *CSVOptions) (*Table, error) {
	grid, err := ReadGrid(r, opts)
	if err != nil {
		return nil, err
	}
	return Parse(source, grid)
}

// ReadGrid reads every record from r and trims surrounding whitespace from
// each field. Records may have differing lengths; Parse checks them.
func ReadGrid(r io.Reader, opts *CSVOptions) ([][]string, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.Comment = opts.Comment
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.ReuseRecord = false

	var grid [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table: read rows: %w", err)
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		grid = append(grid, record)
	}

	return grid, nil
}
