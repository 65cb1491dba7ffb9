package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-cpio/pkg/app"
)

// rootOptions holds the global flags and the application context built
// from them before any subcommand runs
type rootOptions struct {
	// Global output flags only
	verbose      bool
	quiet        bool
	outputFormat string
	configFile   string
	strict       bool
	timeout      time.Duration

	viper *viper.Viper
	app   *app.Context
}

// NewRootCommand builds the go-cpio command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "go-cpio",
		Short: "Inspect and verify cpio archives",
		Long: `go-cpio is a read-only command-line tool for inspecting cpio archives such
as initramfs images and RPM payloads.

The archive is decoded in memory; nothing is extracted or written to disk.
Old binary (either byte order), odc, newc and crc archives are recognised
entry by entry.

Commands:
  list        List archive entries with optional filters
  stat        Summarise an archive
  verify      Check that an archive decodes cleanly
  config      Show the effective configuration`,
		Version:       "0.1.0-dev",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringVarP(&opts.outputFormat, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default searches for cpio-config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "treat archives that stop decoding early as errors")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "time limit for each archive, 0 for none")

	_ = opts.viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("output"))
	_ = opts.viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	_ = opts.viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	rootCmd.AddCommand(
		newListCmd(opts),
		newStatCmd(opts),
		newVerifyCmd(opts),
		newConfigCmd(opts),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// prepare loads configuration and builds the application context
func (o *rootOptions) prepare(cmd *cobra.Command) error {
	if o.verbose && o.quiet {
		return errors.New("--verbose and --quiet cannot be used together")
	}

	cfg, err := loadConfig(o.viper, o.configFile)
	if err != nil {
		return err
	}

	ctx := app.NewContext()
	ctx.Context = cmd.Context()
	ctx.OutputFormat = cfg.OutputFormat
	ctx.Verbose = o.verbose
	ctx.Quiet = o.quiet
	ctx.HumanSizes = cfg.HumanSizes
	ctx.Strict = cfg.Strict
	ctx.MaxEntries = cfg.MaxEntries
	ctx.DefaultTimeout = cfg.Timeout
	ctx.Out = cmd.OutOrStdout()
	ctx.Log.SetOutput(cmd.ErrOrStderr())
	ctx.Configure()

	if used := o.viper.ConfigFileUsed(); used != "" {
		ctx.Log.WithField("config", used).Debug("configuration loaded")
	}

	o.app = ctx
	return nil
}
