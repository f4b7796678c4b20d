// Package gotabular loads two-header CSV files into in-memory numeric tables.
//
// The first row of a file names the columns and the second declares a type
// for each one (string, enum, numeric or date). Only numeric columns are kept,
// in source order, so every value in a table is a float64.
//
// # Quick Start
//
// Load a file and project a few cells:
//
//	t, _ := table.Load("iris.csv", nil)
//	fmt.Println(t.Headers())                  // [sepal_length petal_width]
//	cells, _ := t.Select([]string{"petal_width"}, []int{0, 5})
//
// Restrict to a row range, then describe what is left:
//
//	t.RestrictRows(100, 150)
//	summaries, _ := stats.Describe(t)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - table: Loading, projection and row restriction
//   - stats: Column summaries, covariance/correlation and normalization
//   - render: Text, markdown, CSV and JSON output of tables and summaries
//   - export: CSV, Arrow and Parquet export
//   - config: Layered configuration (defaults, file, environment, flags)
//
// The gotabular command in cmd/gotabular exposes all of this from the shell.
package gotabular
