package stats

import (
	"fmt"

	"github.com/sartorproj/gotabular/table"
)

// Method selects a per-column rescaling.
type Method string

const (
	ZScore Method = "zscore" // (v - mean) / std
	MinMax Method = "minmax" // (v - min) / (max - min)
)

// ParseMethod validates a method name.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case ZScore, MinMax:
		return m, nil
	default:
		return "", fmt.Errorf("stats: unknown normalization %q (want zscore or minmax)", s)
	}
}

// Normalize rescales every column and returns the result as a new table.
// Constant columns map to 0. t is not modified.
func Normalize(t *table.Table, method Method) (*table.Table, error) {
	if _, err := ParseMethod(string(method)); err != nil {
		return nil, err
	}

	summaries, err := Describe(t)
	if err != nil {
		return nil, err
	}

	data := t.AllData()
	for c, s := range summaries {
		var center, scale float64
		switch method {
		case ZScore:
			center, scale = s.Mean, s.Std
		case MinMax:
			center, scale = s.Min, s.Range
		}
		for _, row := range data {
			if scale == 0 {
				row[c] = 0
				continue
			}
			row[c] = (row[c] - center) / scale
		}
	}

	return table.New(t.Source(), t.Headers(), data)
}
