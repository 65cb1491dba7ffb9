package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-cpio/pkg/app/stat"
)

func newStatCmd(opts *rootOptions) *cobra.Command {
	var entryName string

	statCmd := &cobra.Command{
		Use:   "stat <archive>",
		Short: "Summarise an archive",
		Long: `Report entry counts per type and format, total content size, hard-link
groups and whether decoding reached the end of the archive.

With --entry the named member is described as well. Names are matched
exactly as stored, so "./init" and "init" are different entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.app

			response, err := stat.Handle(ctx, &stat.Request{ArchivePath: args[0], EntryName: entryName})
			if response != nil {
				if ferr := stat.FormatOutput(ctx.Out, response, ctx.OutputFormat, ctx.HumanSizes); ferr != nil {
					return ferr
				}
			}
			return err
		},
	}

	statCmd.Flags().StringVarP(&entryName, "entry", "e", "", "also describe the entry with this name")

	return statCmd
}
