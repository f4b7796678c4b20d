package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sartorproj/gotabular/stats"
	tabular "github.com/sartorproj/gotabular/table"
)

// Matrix writes rows of values under the given column names.
func Matrix(w io.Writer, headers []string, data [][]float64, format Format) error {
	if format == FormatJSON {
		rows := make([][]*float64, len(data))
		for i, row := range data {
			rows[i] = make([]*float64, len(row))
			for j, v := range row {
				rows[i][j] = finite(v)
			}
		}
		return writeJSON(w, struct {
			Columns []string     `json:"columns"`
			Rows    [][]*float64 `json:"rows"`
		}{headers, rows})
	}

	rows := make([][]string, len(data))
	for i, row := range data {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = formatFloat(v)
		}
	}
	return writeGrid(w, headers, rows, format)
}

// Headers writes each column name with its position.
func Headers(w io.Writer, t *tabular.Table, format Format) error {
	names := t.Headers()
	index := t.NameIndex()

	if format == FormatJSON {
		type column struct {
			Name  string `json:"name"`
			Index int    `json:"index"`
		}
		cols := make([]column, len(names))
		for i, n := range names {
			cols[i] = column{Name: n, Index: index[n]}
		}
		return writeJSON(w, cols)
	}

	rows := make([][]string, len(names))
	for i, n := range names {
		rows[i] = []string{strconv.Itoa(index[n]), n}
	}
	return writeGrid(w, []string{"index", "name"}, rows, format)
}

// Describe writes one line of statistics per column.
func Describe(w io.Writer, summaries []stats.Summary, format Format) error {
	if format == FormatJSON {
		type summary struct {
			Name     string   `json:"name"`
			Count    int      `json:"count"`
			Min      *float64 `json:"min"`
			Max      *float64 `json:"max"`
			Range    *float64 `json:"range"`
			Mean     *float64 `json:"mean"`
			Median   *float64 `json:"median"`
			Variance *float64 `json:"variance"`
			Std      *float64 `json:"std"`
		}
		out := make([]summary, len(summaries))
		for i, s := range summaries {
			out[i] = summary{
				Name: s.Name, Count: s.Count,
				Min: finite(s.Min), Max: finite(s.Max), Range: finite(s.Range),
				Mean: finite(s.Mean), Median: finite(s.Median),
				Variance: finite(s.Variance), Std: finite(s.Std),
			}
		}
		return writeJSON(w, out)
	}

	cols := []string{"name", "count", "min", "max", "range", "mean", "median", "variance", "std"}
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{
			s.Name,
			strconv.Itoa(s.Count),
			formatFloat(s.Min),
			formatFloat(s.Max),
			formatFloat(s.Range),
			formatFloat(s.Mean),
			formatFloat(s.Median),
			formatFloat(s.Variance),
			formatFloat(s.Std),
		}
	}
	return writeGrid(w, cols, rows, format)
}

// Summary writes a short human-readable preview: the source, the shape, the
// headers and the first rows.
func Summary(w io.Writer, t *tabular.Table, rows int) error {
	n, m := t.Samples(), t.Dims()
	head := t.Head(rows)

	if _, err := fmt.Fprintf(w, "%s (%dx%d)\n", t.Source(), n, m); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Headers: %v\n", t.Headers()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Showing first %d/%d rows.\n", len(head), n); err != nil {
		return err
	}
	return Matrix(w, t.Headers(), head, FormatTable)
}

func writeGrid(w io.Writer, cols []string, rows [][]string, format Format) error {
	if format == FormatTable && len(rows) == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	tw.AppendHeader(header)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = v
		}
		tw.AppendRow(row)
	}

	switch format {
	case FormatMarkdown:
		tw.RenderMarkdown()
	case FormatCSV:
		tw.RenderCSV()
	default:
		tw.Render()
		_, err := fmt.Fprintf(w, "(%d rows)\n", len(rows))
		return err
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// finite maps NaN and Inf to nil so they encode as JSON null.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
