package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-cpio/pkg/app/list"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	req := &list.Request{}
	var tree bool

	listCmd := &cobra.Command{
		Use:   "list <archive>",
		Short: "List archive entries",
		Long: `List the entries of a cpio archive.

Examples:
  # List everything
  go-cpio list initramfs.cpio

  # List regular files under usr/bin larger than 1 MiB
  go-cpio list initramfs.cpio --name 'usr/bin/*' --type file --min-size 1MiB

  # Everything below lib, at any depth, as a tree
  go-cpio list initramfs.cpio.zst --name 'lib/**' --tree

  # First 20 entries as JSON
  go-cpio list initramfs.cpio --limit 20 -o json`,

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ArchivePath = args[0]
			return runList(opts, req, tree)
		},
	}

	listCmd.Flags().StringVarP(&req.NamePattern, "name", "n", "", "glob matched against entry names")
	listCmd.Flags().StringVarP(&req.Type, "type", "t", "", "entry type ("+strings.Join(list.EntryTypes, ", ")+")")
	listCmd.Flags().StringVar(&req.MinSize, "min-size", "", "minimum content size (e.g. 10KB, 1MiB)")
	listCmd.Flags().StringVar(&req.MaxSize, "max-size", "", "maximum content size")
	listCmd.Flags().IntVarP(&req.Limit, "limit", "l", 0, "maximum number of entries (default max_entries)")
	listCmd.Flags().BoolVar(&tree, "tree", false, "print entries as a directory tree (table output only)")

	return listCmd
}

func runList(opts *rootOptions, req *list.Request, tree bool) error {
	ctx := opts.app

	response, err := list.Handle(ctx, req)
	if response == nil {
		return err
	}

	var ferr error
	if tree && ctx.OutputFormat == "table" {
		ferr = list.FormatTree(ctx.Out, response)
	} else {
		ferr = list.FormatOutput(ctx.Out, response, ctx.OutputFormat, ctx.HumanSizes)
	}
	if ferr != nil {
		return ferr
	}
	return err
}
