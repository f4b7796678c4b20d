package stats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gotabular/table"
)

// ErrInsufficientData is returned when a statistic needs more rows or
// columns than the table has.
var ErrInsufficientData = errors.New("stats: insufficient data")

// Summary holds descriptive statistics for one column.
type Summary struct {
	Name     string
	Count    int
	Min      float64
	Max      float64
	Range    float64
	Mean     float64
	Median   float64
	Variance float64 // Sample variance (n-1)
	Std      float64
}

// Describe computes a Summary for each named column, or for every column when
// no names are given. Unknown names are a *table.KeyError.
// Statistics of an empty column are NaN.
func Describe(t *table.Table, names ...string) ([]Summary, error) {
	if len(names) == 0 {
		names = t.Headers()
	}

	summaries := make([]Summary, 0, len(names))
	for _, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summarize(name, col))
	}
	return summaries, nil
}

func summarize(name string, values []float64) Summary {
	s := Summary{Name: name, Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		s.Min, s.Max, s.Range, s.Mean, s.Median, s.Variance, s.Std = nan, nan, nan, nan, nan, nan, nan
		return s
	}

	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	s.Range = s.Max - s.Min
	s.Mean = stat.Mean(values, nil)
	s.Median = median(values)
	if len(values) > 1 {
		s.Variance = stat.Variance(values, nil)
	}
	s.Std = math.Sqrt(s.Variance)
	return s
}

// median averages the two middle values for even lengths.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Covariance returns the sample covariance matrix of the named columns, or of
// every column when no names are given.
func Covariance(t *table.Table, names ...string) (*mat.SymDense, error) {
	x, err := columns(t, names)
	if err != nil {
		return nil, err
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)
	return &cov, nil
}

// Correlation returns the Pearson correlation matrix of the named columns, or
// of every column when no names are given. Constant columns yield NaN entries.
func Correlation(t *table.Table, names ...string) (*mat.SymDense, error) {
	x, err := columns(t, names)
	if err != nil {
		return nil, err
	}
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, x, nil)
	return &corr, nil
}

func columns(t *table.Table, names []string) (*mat.Dense, error) {
	if len(names) == 0 {
		names = t.Headers()
	}
	data, err := t.Select(names, nil)
	if err != nil {
		return nil, err
	}
	if len(data) < 2 || len(names) == 0 {
		return nil, ErrInsufficientData
	}

	flat := make([]float64, 0, len(data)*len(names))
	for _, row := range data {
		flat = append(flat, row...)
	}
	return mat.NewDense(len(data), len(names), flat), nil
}
