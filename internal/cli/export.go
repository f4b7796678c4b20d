package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gotabular/export"
	"github.com/sartorproj/gotabular/internal/logging"
	"github.com/sartorproj/gotabular/stats"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var (
		format    string
		out       string
		normalize string
		rng       rangeFlags
	)

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the numeric columns as two-row-header CSV or Parquet",
		Example: `  gotabular export iris.csv --format parquet --out iris.parquet
  gotabular export iris.csv --normalize zscore > iris_z.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, _, err := loadTable(cmd, args[0])
			if err != nil {
				return err
			}
			rng.apply(cmd, t)

			if normalize != "" {
				method, err := stats.ParseMethod(normalize)
				if err != nil {
					return err
				}
				if t, err = stats.Normalize(t, method); err != nil {
					return err
				}
			}

			log := logging.With("command", cmd.Name(), "format", format, "out", out)
			switch format {
			case "csv":
				if out == "" || out == "-" {
					return export.WriteCSV(cmd.OutOrStdout(), t)
				}
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.WriteCSV(f, t); err != nil {
					return err
				}
				log.Info("exported", "rows", t.Samples(), "columns", t.Dims())
				return f.Close()
			case "parquet":
				if out == "" || out == "-" {
					return fmt.Errorf("parquet export needs --out")
				}
				if err := export.WriteParquet(t, out); err != nil {
					return err
				}
				log.Info("exported", "rows", t.Samples(), "columns", t.Dims())
				return nil
			default:
				return fmt.Errorf("unknown export format %q (want csv or parquet)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "export format (csv|parquet)")
	cmd.Flags().StringVar(&out, "out", "", "output path (csv defaults to stdout)")
	cmd.Flags().StringVar(&normalize, "normalize", "", "rescale columns first (zscore|minmax)")
	rng.register(cmd)
	return cmd
}
