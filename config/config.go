// Package config loads settings for the gotabular command from defaults, an
// optional YAML file, GOTABULAR_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sartorproj/gotabular/render"
	"github.com/sartorproj/gotabular/table"
)

// EnvPrefix is prepended to every environment variable, e.g. GOTABULAR_LOG_LEVEL.
const EnvPrefix = "GOTABULAR"

// Config holds reader, output and logging settings for the gotabular command.
type Config struct {
	Delimiter   string `mapstructure:"delimiter"`
	Comment     string `mapstructure:"comment"`
	PreviewRows int    `mapstructure:"preview_rows"`
	Output      string `mapstructure:"output"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
}

// flagKeys maps flag names onto config keys.
var flagKeys = map[string]string{
	"delimiter":  "delimiter",
	"comment":    "comment",
	"output":     "output",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("delimiter", ",")
	v.SetDefault("comment", "")
	v.SetDefault("preview_rows", table.DefaultPreviewRows)
	v.SetDefault("output", string(render.FormatTable))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration. path may be empty, in which case only defaults and
// the environment apply. flags may be nil; flags that were set on the command
// line take precedence over everything else.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that cannot be expressed through types.
func (c *Config) Validate() error {
	var errs []error

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter))
	}
	if utf8.RuneCountInString(c.Comment) > 1 {
		errs = append(errs, fmt.Errorf("comment must be empty or a single character, got %q", c.Comment))
	}
	if c.Comment != "" && c.Comment == c.Delimiter {
		errs = append(errs, errors.New("comment and delimiter must differ"))
	}
	if c.PreviewRows < 0 {
		errs = append(errs, fmt.Errorf("preview_rows must not be negative, got %d", c.PreviewRows))
	}
	if _, err := render.ParseFormat(c.Output); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// CSVOptions converts the reader settings for table.Load.
func (c *Config) CSVOptions() *table.CSVOptions {
	opts := table.DefaultCSVOptions()
	if r, _ := utf8.DecodeRuneInString(c.Delimiter); r != utf8.RuneError {
		opts.Delimiter = r
	}
	if r, _ := utf8.DecodeRuneInString(c.Comment); r != utf8.RuneError {
		opts.Comment = r
	}
	return opts
}

// OutputFormat returns the validated output format.
func (c *Config) OutputFormat() render.Format {
	f, err := render.ParseFormat(c.Output)
	if err != nil {
		return render.FormatTable
	}
	return f
}
