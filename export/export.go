// Package export writes a table.Table to other formats: back to the two-row
// header CSV it was read from, to an Arrow table, or to a Parquet file.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/sartorproj/gotabular/table"
)

// ErrNoColumns is returned by WriteCSV for a table without columns, which
// has no header row to write.
var ErrNoColumns = errors.New("export: table has no columns")

// WriteCSV writes t in the loader's input format: names, a type row of
// "numeric", then the data. Loading the output gives back an equal table.
// Tables without columns are rejected with ErrNoColumns.
func WriteCSV(w io.Writer, t *table.Table) error {
	if t.Dims() == 0 {
		return ErrNoColumns
	}
	writer := csv.NewWriter(w)

	headers := t.Headers()
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	types := make([]string, len(headers))
	for i := range types {
		types[i] = table.Numeric.String()
	}
	if err := writer.Write(types); err != nil {
		return fmt.Errorf("failed to write CSV type row: %w", err)
	}

	record := make([]string, len(headers))
	for _, row := range t.AllData() {
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ToArrow converts t to an Arrow table with one float64 column per header.
// The caller must Release the result.
func ToArrow(t *table.Table) arrow.Table {
	pool := memory.NewGoAllocator()
	headers := t.Headers()

	fields := make([]arrow.Field, len(headers))
	for i, h := range headers {
		fields[i] = arrow.Field{Name: h, Type: arrow.PrimitiveTypes.Float64}
	}
	schema := arrow.NewSchema(fields, nil)

	columns := make([]arrow.Column, len(headers))
	for i, h := range headers {
		values, _ := t.Column(h)

		builder := array.NewFloat64Builder(pool)
		builder.AppendValues(values, nil)
		arr := builder.NewArray()
		builder.Release()

		chunked := arrow.NewChunked(fields[i].Type, []arrow.Array{arr})
		arr.Release()
		columns[i] = *arrow.NewColumn(fields[i], chunked)
		chunked.Release()
	}

	tbl := array.NewTable(schema, columns, int64(t.Samples()))
	for i := range columns {
		columns[i].Release()
	}
	return tbl
}

// WriteParquet writes t to a Snappy-compressed Parquet file at path.
func WriteParquet(t *table.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	tbl := ToArrow(t)
	defer tbl.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	writer, err := pqarrow.NewFileWriter(tbl.Schema(), file, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	chunk := tbl.NumRows()
	if chunk == 0 {
		chunk = 1
	}
	if err := writer.WriteTable(tbl, chunk); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write table to parquet: %w", err)
	}

	return writer.Close()
}
