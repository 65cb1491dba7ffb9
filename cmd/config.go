package cmd

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds settings read from cpio-config.yaml and CPIO_* variables
type Config struct {
	OutputFormat string        `mapstructure:"output_format" yaml:"output_format"`
	MaxEntries   int           `mapstructure:"max_entries" yaml:"max_entries"`
	Strict       bool          `mapstructure:"strict" yaml:"strict"`
	HumanSizes   bool          `mapstructure:"human_sizes" yaml:"human_sizes"`
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

var outputFormats = []string{"table", "json", "yaml"}

// loadConfig reads configuration into v. An explicit configFile must
// exist; otherwise a missing file falls back to defaults.
func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("cpio-config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.go-cpio")
		v.AddConfigPath("/etc/go-cpio")
	}

	// Set defaults
	v.SetDefault("output_format", "table")
	v.SetDefault("max_entries", 10000)
	v.SetDefault("strict", false)
	v.SetDefault("human_sizes", true)
	v.SetDefault("timeout", 30*time.Second)

	// Allow environment variables
	v.SetEnvPrefix("CPIO")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if !slices.Contains(outputFormats, config.OutputFormat) {
		return nil, fmt.Errorf("unsupported output format: %s", config.OutputFormat)
	}
	if config.MaxEntries < 0 {
		return nil, fmt.Errorf("max_entries must not be negative, got %d", config.MaxEntries)
	}
	if config.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative, got %s", config.Timeout)
	}

	return &config, nil
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.app

			cfg := Config{
				OutputFormat: ctx.OutputFormat,
				MaxEntries:   ctx.MaxEntries,
				Strict:       ctx.Strict,
				HumanSizes:   ctx.HumanSizes,
				Timeout:      ctx.DefaultTimeout,
			}

			if used := opts.viper.ConfigFileUsed(); used != "" {
				fmt.Fprintf(ctx.Out, "# %s\n", used)
			}
			encoder := yaml.NewEncoder(ctx.Out)
			defer encoder.Close()
			encoder.SetIndent(2)
			return encoder.Encode(cfg)
		},
	}
}
