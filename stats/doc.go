// Package stats provides descriptive statistics over the columns of a
// table.Table.
//
// # Summaries
//
//	summaries, err := stats.Describe(t)            // every column
//	summaries, err := stats.Describe(t, "a", "c")  // named columns
//	for _, s := range summaries {
//	    fmt.Printf("%s: mean=%.3f std=%.3f\n", s.Name, s.Mean, s.Std)
//	}
//
// Variance and Std are sample statistics (n-1). A single-row column has
// zero variance; an empty column has NaN statistics.
//
// # Covariance and Correlation
//
// Both return a gonum *mat.SymDense indexed like the requested columns:
//
//	cov, err := stats.Covariance(t)
//	corr, err := stats.Correlation(t, "a", "c")
//	r := corr.At(0, 1)
//
// At least two rows are required.
//
// # Normalization
//
//	z, err := stats.Normalize(t, stats.ZScore)
//	unit, err := stats.Normalize(t, stats.MinMax)
//
// The result is a new table with the same headers; t is left unchanged.
package stats
