package table

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSeqTable builds a table with columns x and y where row i is (i, 10*i).
func newSeqTable(t *testing.T, n int) *Table {
	t.Helper()

	var b strings.Builder
	b.WriteString("x,label,y\nnumeric,string,numeric\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d,row%d,%d\n", i, i, 10*i)
	}

	tbl, err := LoadReader("seq", strings.NewReader(b.String()), nil)
	require.NoError(t, err)
	return tbl
}

func TestSelectAllEqualsAllData(t *testing.T) {
	tbl := newSeqTable(t, 6)

	got, err := tbl.Select(tbl.Headers(), nil)
	require.NoError(t, err)
	assert.Equal(t, tbl.AllData(), got)

	got, err = tbl.Select(tbl.Headers(), []int{})
	require.NoError(t, err)
	assert.Equal(t, tbl.AllData(), got)
}

func TestSelectOrderAndRepeats(t *testing.T) {
	tbl := newSeqTable(t, 4)

	got, err := tbl.Select([]string{"y", "x", "y"}, []int{3, 0, 3})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{30, 3, 30},
		{0, 0, 0},
		{30, 3, 30},
	}, got)
}

func TestSelectErrors(t *testing.T) {
	tbl := newSeqTable(t, 3)

	_, err := tbl.Select([]string{"x", "label"}, nil)
	var keyErr *KeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "label", keyErr.Name)
	assert.ErrorIs(t, err, ErrKey)

	for _, row := range []int{-1, 3, 100} {
		_, err = tbl.Select([]string{"x"}, []int{0, row})
		var idxErr *IndexError
		require.ErrorAs(t, err, &idxErr, "row %d", row)
		assert.Equal(t, row, idxErr.Index)
		assert.Equal(t, 3, idxErr.Len)
	}
}

func TestIndicesOfIsLenient(t *testing.T) {
	tbl := newSeqTable(t, 2)

	assert.Equal(t, []int{}, tbl.IndicesOf("unknown_name"))
	assert.Empty(t, tbl.IndicesOf())

	// Header order, not query order; repeats collapse.
	assert.Equal(t, []int{0, 1}, tbl.IndicesOf("y", "x", "y", "nope"))
	assert.Equal(t, []int{1}, tbl.IndicesOf("y"))

	// The strict path on the same table fails.
	_, err := tbl.Select([]string{"unknown_name"}, nil)
	assert.ErrorIs(t, err, ErrKey)
}

func TestSample(t *testing.T) {
	tbl := newSeqTable(t, 3)

	row, err := tbl.Sample(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 20}, row)

	_, err = tbl.Sample(3)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = tbl.Sample(-1)
	assert.ErrorIs(t, err, ErrIndex)

	empty := newSeqTable(t, 0)
	_, err = empty.Sample(0)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestHeadTailClamp(t *testing.T) {
	tests := []struct {
		rows     int
		n        int
		wantHead int
		wantTail int
	}{
		{rows: 10, n: DefaultPreviewRows, wantHead: 5, wantTail: 5},
		{rows: 3, n: DefaultPreviewRows, wantHead: 3, wantTail: 3},
		{rows: 0, n: DefaultPreviewRows, wantHead: 0, wantTail: 0},
		{rows: 4, n: 0, wantHead: 0, wantTail: 0},
		{rows: 4, n: -2, wantHead: 0, wantTail: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d rows n=%d", tt.rows, tt.n), func(t *testing.T) {
			tbl := newSeqTable(t, tt.rows)
			assert.Len(t, tbl.Head(tt.n), tt.wantHead)
			assert.Len(t, tbl.Tail(tt.n), tt.wantTail)
		})
	}

	tbl := newSeqTable(t, 10)
	assert.Equal(t, [][]float64{{0, 0}, {1, 10}}, tbl.Head(2))
	assert.Equal(t, [][]float64{{8, 80}, {9, 90}}, tbl.Tail(2))
}

func TestRestrictRows(t *testing.T) {
	tbl := newSeqTable(t, 10)
	before, err := tbl.Sample(2)
	require.NoError(t, err)

	tbl.RestrictRows(2, 5)

	assert.Equal(t, 3, tbl.Samples())
	assert.Equal(t, 2, tbl.Dims())
	after, err := tbl.Sample(0)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, map[string]int{"x": 0, "y": 1}, tbl.NameIndex())
}

func TestRestrictLeavesReceiverAlone(t *testing.T) {
	tbl := newSeqTable(t, 10)

	sub := tbl.Restrict(7, 9)
	assert.Equal(t, 2, sub.Samples())
	assert.Equal(t, 10, tbl.Samples())
	assert.Equal(t, tbl.Headers(), sub.Headers())
	assert.Equal(t, tbl.Source(), sub.Source())

	// No shared backing arrays.
	sub.RestrictRows(0, 1)
	assert.Equal(t, 1, sub.Samples())
	assert.Equal(t, 10, tbl.Samples())
	row, err := tbl.Sample(7)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 70}, row)
}

func TestRestrictClamping(t *testing.T) {
	tests := []struct {
		start, end int
		want       [][]float64
	}{
		{start: 0, end: 100, want: [][]float64{{0, 0}, {1, 10}, {2, 20}, {3, 30}}},
		{start: -5, end: 2, want: [][]float64{{0, 0}, {1, 10}}},
		{start: -2, end: 4, want: [][]float64{{2, 20}, {3, 30}}},
		{start: 0, end: -1, want: [][]float64{{0, 0}, {1, 10}, {2, 20}}},
		{start: -1, end: -3, want: [][]float64{}},
		{start: 1, end: -10, want: [][]float64{}},
		{start: 3, end: 3, want: [][]float64{}},
		{start: 3, end: 1, want: [][]float64{}},
		{start: 10, end: 20, want: [][]float64{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("[%d,%d)", tt.start, tt.end), func(t *testing.T) {
			tbl := newSeqTable(t, 4)
			assert.Equal(t, tt.want, tbl.Restrict(tt.start, tt.end).AllData())
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	tbl := newSeqTable(t, 3)

	all := tbl.AllData()
	all[0][0] = 99
	head := tbl.Head(1)
	head[0][1] = 99
	tail := tbl.Tail(1)
	tail[0][0] = 99
	row, err := tbl.Sample(1)
	require.NoError(t, err)
	row[0] = 99
	sel, err := tbl.Select([]string{"x"}, nil)
	require.NoError(t, err)
	sel[2][0] = 99
	col, err := tbl.Column("x")
	require.NoError(t, err)
	col[0] = 99

	hs := tbl.Headers()
	hs[0] = "mutated"
	idx := tbl.NameIndex()
	idx["x"] = 7
	delete(idx, "y")

	assert.Equal(t, [][]float64{{0, 0}, {1, 10}, {2, 20}}, tbl.AllData())
	assert.Equal(t, []string{"x", "y"}, tbl.Headers())
	assert.Equal(t, map[string]int{"x": 0, "y": 1}, tbl.NameIndex())
}

func TestColumn(t *testing.T) {
	tbl := newSeqTable(t, 3)

	col, err := tbl.Column("y")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10, 20}, col)

	_, err = tbl.Column("label")
	assert.ErrorIs(t, err, ErrKey)
}

func TestNew(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}}
	tbl, err := New("mem", []string{"p", "q"}, data)
	require.NoError(t, err)

	data[0][0] = 100
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, tbl.AllData())
	assert.Equal(t, map[string]int{"p": 0, "q": 1}, tbl.NameIndex())

	_, err = New("mem", []string{"p", "p"}, nil)
	assert.ErrorIs(t, err, ErrFormat)

	_, err = New("mem", []string{"p", "q"}, [][]float64{{1}})
	assert.ErrorIs(t, err, ErrShape)

	_, err = New("mem", []string{"p"}, [][]float64{{math.Inf(1)}})
	assert.ErrorIs(t, err, ErrCoercion)
}

func TestDense(t *testing.T) {
	tbl := newSeqTable(t, 3)

	d := tbl.Dense()
	require.NotNil(t, d)
	r, c := d.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 20.0, d.At(2, 1))

	d.Set(0, 0, 42)
	row, err := tbl.Sample(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, row[0])

	assert.Nil(t, newSeqTable(t, 0).Dense())
}

func TestCopy(t *testing.T) {
	tbl := newSeqTable(t, 4)
	cp := tbl.Copy()

	cp.RestrictRows(0, 1)
	assert.Equal(t, 1, cp.Samples())
	assert.Equal(t, 4, tbl.Samples())
}
