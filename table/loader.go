package table

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
)

var errNonFinite = errors.New("value is not finite")

// Parse builds a Table from rows of already-split fields. The first row names
// the columns, the second declares their types, and the rest are data. Only
// Numeric columns survive, in source order.
//
// Parse never returns a partially built table: any error leaves nothing behind.
func Parse(source string, grid [][]string) (*Table, error) {
	if len(grid) < 2 {
		return nil, &FormatError{Reason: fmt.Sprintf("need a name row and a type row, got %d row(s)", len(grid))}
	}

	names, tags := grid[0], grid[1]
	if len(names) != len(tags) {
		return nil, &FormatError{Reason: fmt.Sprintf("name row has %d fields but type row has %d", len(names), len(tags))}
	}

	// Validate every tag before touching data rows.
	types := make([]ColumnType, len(tags))
	for i, tag := range tags {
		ct, err := ParseColumnType(tag)
		if err != nil {
			return nil, err
		}
		types[i] = ct
	}

	var keep []int
	for i, ct := range types {
		if ct == Numeric {
			keep = append(keep, i)
		}
	}

	headers := make([]string, len(keep))
	for j, pos := range keep {
		headers[j] = names[pos]
	}
	index, err := buildIndex(headers)
	if err != nil {
		return nil, err
	}

	body := grid[2:]
	data := make([][]float64, len(body))
	for r, record := range body {
		line := r + 2
		if len(record) != len(names) {
			return nil, &ShapeError{Row: line, Got: len(record), Want: len(names)}
		}
		row := make([]float64, len(keep))
		for j, pos := range keep {
			v, err := parseCell(record[pos])
			if err != nil {
				return nil, &CoercionError{Row: line, Column: headers[j], Value: record[pos], Err: err}
			}
			row[j] = v
		}
		data[r] = row
	}

	slog.Debug("table loaded",
		"source", source,
		"rows", len(data),
		"columns", len(headers),
		"dropped", len(names)-len(keep),
	)

	return &Table{
		source:  source,
		headers: headers,
		index:   index,
		data:    data,
	}, nil
}

// buildIndex maps each header to its dense position. Duplicate names would
// break the one-to-one mapping and are rejected.
func buildIndex(headers []string) (map[string]int, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, dup := index[h]; dup {
			return nil, &FormatError{Reason: "duplicate numeric column " + quote(h)}
		}
		index[h] = i
	}
	return index, nil
}

func parseCell(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNonFinite
	}
	return v, nil
}
