package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-cpio/pkg/app/verify"
)

func newVerifyCmd(opts *rootOptions) *cobra.Command {
	var requireTrailer bool

	verifyCmd := &cobra.Command{
		Use:   "verify <archive>...",
		Short: "Check that archives decode cleanly",
		Long: `Decode every entry of each archive and exit non-zero if any entry fails
to decode. With --require-trailer (or --strict) an archive must also end
with its TRAILER!!! entry.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.app

			var firstErr error
			for _, archivePath := range args {
				response, err := verify.Handle(ctx, &verify.Request{
					ArchivePath:    archivePath,
					RequireTrailer: requireTrailer,
				})
				if response != nil && !ctx.Quiet {
					if ferr := verify.FormatOutput(ctx.Out, response, ctx.OutputFormat); ferr != nil {
						return ferr
					}
				}
				if err != nil && firstErr == nil {
					firstErr = err
				}
			}
			return firstErr
		},
	}

	verifyCmd.Flags().BoolVar(&requireTrailer, "require-trailer", false, "fail archives without a trailer entry")

	return verifyCmd
}
