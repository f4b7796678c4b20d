package table

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultPreviewRows is the row count used by previews when none is given.
const DefaultPreviewRows = 5

// ErrNoSource is returned by Reload on a table that was not loaded from a file.
var ErrNoSource = errors.New("table: no file to reload from")

// Table holds the numeric columns of a source file.
//
// headers and index are always replaced together; every row in data has
// len(headers) values.
type Table struct {
	source  string
	opts    *CSVOptions
	headers []string
	index   map[string]int
	data    [][]float64
}

// New creates a table from numeric data that is already in memory.
// It enforces the same invariants as Parse: unique headers, rows of
// len(headers) values, finite values only. data is copied.
func New(source string, headers []string, data [][]float64) (*Table, error) {
	hs := make([]string, len(headers))
	copy(hs, headers)

	index, err := buildIndex(hs)
	if err != nil {
		return nil, err
	}

	for r, row := range data {
		if len(row) != len(hs) {
			return nil, &ShapeError{Row: r, Got: len(row), Want: len(hs)}
		}
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &CoercionError{Row: r, Column: hs[c], Value: fmt.Sprint(v), Err: errNonFinite}
			}
		}
	}

	return &Table{
		source:  source,
		headers: hs,
		index:   index,
		data:    copyRows(data),
	}, nil
}

// Source returns the id the table was loaded from.
func (t *Table) Source() string {
	return t.source
}

// Headers returns the column names in column order.
func (t *Table) Headers() []string {
	hs := make([]string, len(t.headers))
	copy(hs, t.headers)
	return hs
}

// NameIndex returns the mapping from column name to column position.
func (t *Table) NameIndex() map[string]int {
	m := make(map[string]int, len(t.index))
	for k, v := range t.index {
		m[k] = v
	}
	return m
}

// Dims returns the number of columns.
func (t *Table) Dims() int {
	return len(t.headers)
}

// Samples returns the number of rows.
func (t *Table) Samples() int {
	return len(t.data)
}

// Sample returns a copy of row i.
func (t *Table) Sample(i int) ([]float64, error) {
	if i < 0 || i >= len(t.data) {
		return nil, &IndexError{Index: i, Len: len(t.data)}
	}
	row := make([]float64, len(t.data[i]))
	copy(row, t.data[i])
	return row, nil
}

// IndicesOf returns the positions of the given names, ordered by column
// position rather than by the order of names. Names that are not headers,
// and repeats, are skipped without error; use Select or Column for strict
// lookups.
func (t *Table) IndicesOf(names ...string) []int {
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}

	indices := []int{}
	for i, h := range t.headers {
		if _, ok := want[h]; ok {
			indices = append(indices, i)
		}
	}
	return indices
}

// AllData returns a copy of the whole matrix.
func (t *Table) AllData() [][]float64 {
	return copyRows(t.data)
}

// Head returns a copy of the first n rows, or fewer if the table is shorter.
func (t *Table) Head(n int) [][]float64 {
	n = clamp(n, 0, len(t.data))
	return copyRows(t.data[:n])
}

// Tail returns a copy of the last n rows, or fewer if the table is shorter.
func (t *Table) Tail(n int) [][]float64 {
	n = clamp(n, 0, len(t.data))
	return copyRows(t.data[len(t.data)-n:])
}

// Restrict returns a new table holding rows [start, end). A negative bound
// counts back from the last row; bounds are then clamped to the table and
// start >= end gives an empty table. t is not modified and the result shares
// no memory with it.
func (t *Table) Restrict(start, end int) *Table {
	start = bound(start, len(t.data))
	end = bound(end, len(t.data))
	if start >= end {
		start, end = 0, 0
	}

	out := t.Copy()
	out.data = copyRows(t.data[start:end])
	return out
}

// RestrictRows replaces t's rows with rows [start, end) in place.
// Rows and indices obtained before the call refer to the old layout.
func (t *Table) RestrictRows(start, end int) {
	*t = *t.Restrict(start, end)
}

// Select returns the named columns, in the order given, for the given rows,
// in the order given. An empty rows selects every row. Rows may repeat.
func (t *Table) Select(names []string, rows []int) ([][]float64, error) {
	cols := make([]int, len(names))
	for i, name := range names {
		pos := t.position(name)
		if pos < 0 {
			return nil, &KeyError{Name: name}
		}
		cols[i] = pos
	}

	if len(rows) == 0 {
		rows = make([]int, len(t.data))
		for i := range rows {
			rows[i] = i
		}
	}
	for _, r := range rows {
		if r < 0 || r >= len(t.data) {
			return nil, &IndexError{Index: r, Len: len(t.data)}
		}
	}

	out := make([][]float64, len(rows))
	for i, r := range rows {
		row := make([]float64, len(cols))
		for j, c := range cols {
			row[j] = t.data[r][c]
		}
		out[i] = row
	}
	return out, nil
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	pos := t.position(name)
	if pos < 0 {
		return nil, &KeyError{Name: name}
	}
	col := make([]float64, len(t.data))
	for i, row := range t.data {
		col[i] = row[pos]
	}
	return col, nil
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	return &Table{
		source:  t.source,
		opts:    t.opts,
		headers: t.Headers(),
		index:   t.NameIndex(),
		data:    copyRows(t.data),
	}
}

// Dense returns the matrix as a gonum dense matrix, or nil when the table has
// no rows or no columns.
func (t *Table) Dense() *mat.Dense {
	r, c := len(t.data), len(t.headers)
	if r == 0 || c == 0 {
		return nil
	}
	flat := make([]float64, 0, r*c)
	for _, row := range t.data {
		flat = append(flat, row...)
	}
	return mat.NewDense(r, c, flat)
}

// Reload reads the source file again and replaces the table's contents.
// On error the table keeps its previous contents.
func (t *Table) Reload() error {
	if t.opts == nil {
		return ErrNoSource
	}
	fresh, err := Load(t.source, t.opts)
	if err != nil {
		return err
	}
	*t = *fresh
	return nil
}

// position finds name by scanning the header list.
func (t *Table) position(name string) int {
	for i, h := range t.headers {
		if h == name {
			return i
		}
	}
	return -1
}

func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

// bound resolves a slice bound against n rows: negative values count from
// the end, and the result lies in [0, n].
func bound(v, n int) int {
	if v < 0 {
		v += n
	}
	return clamp(v, 0, n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
