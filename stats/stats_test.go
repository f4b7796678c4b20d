package stats

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gotabular/table"
)

const sample = `a,tag,b,c
numeric,enum,numeric,numeric
1,x,2,5
2,y,4,5
3,x,6,5
4,y,8,5`

func loadSample(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.LoadReader("sample", strings.NewReader(sample), nil)
	require.NoError(t, err)
	return tbl
}

func TestDescribe(t *testing.T) {
	tbl := loadSample(t)

	summaries, err := Describe(tbl)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	a := summaries[0]
	assert.Equal(t, "a", a.Name)
	assert.Equal(t, 4, a.Count)
	assert.Equal(t, 1.0, a.Min)
	assert.Equal(t, 4.0, a.Max)
	assert.Equal(t, 3.0, a.Range)
	assert.InDelta(t, 2.5, a.Mean, 1e-12)
	assert.InDelta(t, 2.5, a.Median, 1e-12)
	assert.InDelta(t, 5.0/3.0, a.Variance, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), a.Std, 1e-12)

	c := summaries[2]
	assert.Equal(t, 0.0, c.Variance)
	assert.Equal(t, 0.0, c.Range)
}

func TestDescribeNamed(t *testing.T) {
	tbl := loadSample(t)

	summaries, err := Describe(tbl, "b", "a")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "b", summaries[0].Name)
	assert.Equal(t, "a", summaries[1].Name)

	_, err = Describe(tbl, "tag")
	assert.ErrorIs(t, err, table.ErrKey)
}

func TestDescribeEdgeCases(t *testing.T) {
	tbl := loadSample(t)

	one := tbl.Restrict(2, 3)
	summaries, err := Describe(one, "a")
	require.NoError(t, err)
	assert.Equal(t, 3.0, summaries[0].Median)
	assert.Equal(t, 0.0, summaries[0].Variance)

	empty := tbl.Restrict(0, 0)
	summaries, err = Describe(empty, "a")
	require.NoError(t, err)
	assert.Equal(t, 0, summaries[0].Count)
	assert.True(t, math.IsNaN(summaries[0].Mean))
	assert.True(t, math.IsNaN(summaries[0].Min))
}

func TestMedianOdd(t *testing.T) {
	assert.Equal(t, 3.0, median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 3, 2}))
}

func TestCovarianceAndCorrelation(t *testing.T) {
	tbl := loadSample(t)

	cov, err := Covariance(tbl, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, cov.SymmetricDim())
	assert.InDelta(t, 5.0/3.0, cov.At(0, 0), 1e-12)
	assert.InDelta(t, 10.0/3.0, cov.At(0, 1), 1e-12)
	assert.InDelta(t, 20.0/3.0, cov.At(1, 1), 1e-12)

	corr, err := Correlation(tbl, "a", "b")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, corr.At(0, 1), 1e-12)
	assert.InDelta(t, 1.0, corr.At(1, 0), 1e-12)

	all, err := Covariance(tbl)
	require.NoError(t, err)
	assert.Equal(t, 3, all.SymmetricDim())
}

func TestCovarianceErrors(t *testing.T) {
	tbl := loadSample(t)

	_, err := Covariance(tbl.Restrict(0, 1))
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Correlation(tbl, "missing")
	assert.ErrorIs(t, err, table.ErrKey)
}

func TestNormalize(t *testing.T) {
	tbl := loadSample(t)

	unit, err := Normalize(tbl, MinMax)
	require.NoError(t, err)
	assert.Equal(t, tbl.Headers(), unit.Headers())
	col, err := unit.Column("a")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 2.0 / 3, 1}, col, 1e-12)

	constant, err := unit.Column("c")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, constant)

	z, err := Normalize(tbl, ZScore)
	require.NoError(t, err)
	summaries, err := Describe(z, "b")
	require.NoError(t, err)
	assert.InDelta(t, 0, summaries[0].Mean, 1e-12)
	assert.InDelta(t, 1, summaries[0].Std, 1e-12)

	// Input untouched.
	orig, err := tbl.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, orig)

	_, err = Normalize(tbl, Method("log"))
	assert.Error(t, err)
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("zscore")
	require.NoError(t, err)
	assert.Equal(t, ZScore, m)

	_, err = ParseMethod("ZSCORE")
	assert.Error(t, err)
}
