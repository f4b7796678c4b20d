package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gotabular/internal/logging"
	"github.com/sartorproj/gotabular/render"
	"github.com/sartorproj/gotabular/stats"
	"github.com/sartorproj/gotabular/table"
)

// rangeFlags holds the optional --start/--end row restriction shared by
// several commands.
type rangeFlags struct {
	start int
	end   int
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&r.start, "start", 0, "first row to keep (inclusive, negative counts from the end)")
	cmd.Flags().IntVar(&r.end, "end", 0, "row to stop before (exclusive, negative counts from the end; default all rows)")
}

// apply restricts t in place when either bound was given. A missing --end
// keeps every row from --start on.
func (r *rangeFlags) apply(cmd *cobra.Command, t *table.Table) {
	if !cmd.Flags().Changed("start") && !cmd.Flags().Changed("end") {
		return
	}
	end := r.end
	if !cmd.Flags().Changed("end") {
		end = t.Samples()
	}
	logging.With("command", cmd.Name()).Debug("restricting rows",
		"start", r.start, "end", end, "before", t.Samples())
	t.RestrictRows(r.start, end)
}

// NewSelectCommand creates the select command.
func NewSelectCommand() *cobra.Command {
	var (
		columns []string
		rows    []int
		rng     rangeFlags
	)

	cmd := &cobra.Command{
		Use:   "select FILE",
		Short: "Project columns by name and rows by index",
		Long: `Select prints the named columns, in the order given, for the given rows,
in the order given. Rows may repeat. Without --columns every column is
printed; without --rows every row is.

--start/--end restrict the table to a row range first, so --rows indexes
into the restricted range.`,
		Example: `  gotabular select iris.csv --columns petal_width,sepal_length --rows 0,5,5
  gotabular select iris.csv --start 100 --end 150 -o csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, cfg, err := loadTable(cmd, args[0])
			if err != nil {
				return err
			}
			rng.apply(cmd, t)

			if len(columns) == 0 {
				columns = t.Headers()
			}
			data, err := t.Select(columns, rows)
			if err != nil {
				return err
			}
			return render.Matrix(cmd.OutOrStdout(), columns, data, cfg.OutputFormat())
		},
	}

	cmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "columns to select (comma separated)")
	cmd.Flags().IntSliceVarP(&rows, "rows", "r", nil, "row indices to select (comma separated)")
	rng.register(cmd)
	return cmd
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	var (
		columns []string
		matrix  string
		rng     rangeFlags
	)

	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Describe columns, or print their covariance or correlation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, cfg, err := loadTable(cmd, args[0])
			if err != nil {
				return err
			}
			rng.apply(cmd, t)
			out := cmd.OutOrStdout()

			if matrix == "" {
				summaries, err := stats.Describe(t, columns...)
				if err != nil {
					return err
				}
				return render.Describe(out, summaries, cfg.OutputFormat())
			}

			names := columns
			if len(names) == 0 {
				names = t.Headers()
			}
			var m *mat.SymDense
			switch matrix {
			case "cov":
				m, err = stats.Covariance(t, names...)
			case "corr":
				m, err = stats.Correlation(t, names...)
			default:
				return fmt.Errorf("unknown matrix %q (want cov or corr)", matrix)
			}
			if err != nil {
				return err
			}
			data := make([][]float64, len(names))
			for i := range names {
				data[i] = make([]float64, len(names))
				for j := range names {
					data[i][j] = m.At(i, j)
				}
			}
			return render.Matrix(out, names, data, cfg.OutputFormat())
		},
	}

	cmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "columns to describe (default all)")
	cmd.Flags().StringVar(&matrix, "matrix", "", "print a cov or corr matrix instead of summaries")
	rng.register(cmd)
	return cmd
}
