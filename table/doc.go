// Package table loads delimited text whose first two rows are metadata and
// serves the numeric columns as an in-memory matrix.
//
// # Input format
//
// The first row names the columns, the second declares a type for each one
// (string, enum, numeric or date), and every following row is data:
//
//	a,b,c
//	numeric,string,numeric
//	1.0,x,2.0
//	3.0,y,4.0
//
// Only numeric columns are kept, in source order, and re-indexed densely from
// zero. The example above loads as headers [a c] with index {a:0 c:1} and
// matrix [[1 2] [3 4]]. Fields are trimmed; embedded delimiters are not
// supported.
//
// # Loading
//
//	t, err := table.Load("iris.csv", nil)
//
//	// From any reader
//	t, err := table.LoadReader("inline", strings.NewReader(text), nil)
//
//	// From rows split elsewhere
//	t, err := table.Parse("grid", [][]string{{"a"}, {"numeric"}, {"1"}})
//
// Errors match the sentinels ErrFormat, ErrShape and ErrCoercion via
// errors.Is, and carry detail in *FormatError, *ShapeError and
// *CoercionError.
//
// # Querying
//
//	t.Headers()                  // [a c]
//	t.NameIndex()                // map[a:0 c:1]
//	t.Dims(), t.Samples()        // 2, 2
//	row, err := t.Sample(1)      // [3 4]
//	t.Head(table.DefaultPreviewRows)
//	t.Tail(3)
//
//	// Strict: unknown names are a *KeyError, bad rows an *IndexError
//	m, err := t.Select([]string{"c", "a"}, []int{1}) // [[4 3]]
//
//	// Lenient: unknown names are skipped, result follows header order
//	t.IndicesOf("c", "a", "zzz") // [0 1]
//
// # Row ranges
//
// Restrict returns a new table and leaves the receiver alone. RestrictRows
// does the same in place:
//
//	train := t.Restrict(0, 100)
//	t.RestrictRows(2, 5)
//
// Every accessor returns copies; nothing returned by a Table aliases its
// internal matrix.
package table
