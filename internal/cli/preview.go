package cli

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/gotabular/render"
)

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Show source, shape, headers and the first rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, cfg, err := loadTable(cmd, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("rows") {
				rows = cfg.PreviewRows
			}
			return render.Summary(cmd.OutOrStdout(), t, rows)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "rows to preview (default from config, 5)")
	return cmd
}

// NewHeadersCommand creates the headers command.
func NewHeadersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "headers FILE",
		Short: "List numeric columns and their positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, cfg, err := loadTable(cmd, args[0])
			if err != nil {
				return err
			}
			return render.Headers(cmd.OutOrStdout(), t, cfg.OutputFormat())
		},
	}
}

// NewHeadCommand creates the head command.
func NewHeadCommand() *cobra.Command {
	return newWindowCommand("head", "Show the first rows", true)
}

// NewTailCommand creates the tail command.
func NewTailCommand() *cobra.Command {
	return newWindowCommand("tail", "Show the last rows", false)
}

func newWindowCommand(name, short string, first bool) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   name + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, cfg, err := loadTable(cmd, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("lines") {
				n = cfg.PreviewRows
			}
			data := t.Tail(n)
			if first {
				data = t.Head(n)
			}
			return render.Matrix(cmd.OutOrStdout(), t.Headers(), data, cfg.OutputFormat())
		},
	}

	cmd.Flags().IntVarP(&n, "lines", "n", 0, "number of rows (default from config, 5)")
	return cmd
}
