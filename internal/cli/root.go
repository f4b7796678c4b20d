// Package cli provides the command-line interface for gotabular.
package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gotabular/config"
	"github.com/sartorproj/gotabular/internal/logging"
	"github.com/sartorproj/gotabular/render"
	"github.com/sartorproj/gotabular/table"
)

// Version information (set at build time).
var Version = "0.1.0"

// configKey is used to store the loaded config in the command context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "gotabular",
		Short: "Inspect numeric tables stored as two-row-header CSV",
		Long: `gotabular loads delimited files whose first row names the columns and whose
second row declares each column's type (string, enum, numeric or date).
Only numeric columns are kept; the commands below preview, select,
summarize and export them.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logging.Setup(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	formats := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		formats[i] = string(f)
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().String("delimiter", "", "field delimiter (default \",\")")
	rootCmd.PersistentFlags().String("comment", "", "ignore lines starting with this character")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format ("+strings.Join(formats, "|")+")")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewVersionCommand(Version))
	rootCmd.AddCommand(NewInfoCommand())
	rootCmd.AddCommand(NewHeadersCommand())
	rootCmd.AddCommand(NewHeadCommand())
	rootCmd.AddCommand(NewTailCommand())
	rootCmd.AddCommand(NewSelectCommand())
	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewExportCommand())

	return rootCmd
}

// configFrom returns the config stored by the root command, or defaults when
// a command runs on its own.
func configFrom(cmd *cobra.Command) (*config.Config, error) {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg, nil
		}
	}
	return config.Load("", nil)
}

// loadTable reads path with the configured reader options and returns the
// table along with the config used.
func loadTable(cmd *cobra.Command, path string) (*table.Table, *config.Config, error) {
	cfg, err := configFrom(cmd)
	if err != nil {
		return nil, nil, err
	}
	logging.With("command", cmd.Name()).Debug("loading table", "file", path)
	t, err := table.Load(path, cfg.CSVOptions())
	if err != nil {
		return nil, nil, err
	}
	return t, cfg, nil
}
