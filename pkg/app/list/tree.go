package list

import (
	"io"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/deploymenttheory/go-cpio/pkg/services"
)

// FormatTree writes the listed entries as a directory tree rooted at the
// archive name. Parent directories missing from the listing are implied.
func FormatTree(w io.Writer, response *Response) error {
	root := treeprint.NewWithRoot(response.Archive)
	branches := map[string]treeprint.Tree{"": root}

	var branchFor func(dir string) treeprint.Tree
	branchFor = func(dir string) treeprint.Tree {
		if b, ok := branches[dir]; ok {
			return b
		}
		parent, base := splitPath(dir)
		b := branchFor(parent).AddBranch(base)
		branches[dir] = b
		return b
	}

	for _, e := range response.Entries {
		name := cleanName(e.Name)
		if name == "" {
			continue
		}

		if e.Type == "dir" {
			branchFor(name)
			continue
		}

		parent, base := splitPath(name)
		branchFor(parent).AddNode(label(base, e))
	}

	_, err := io.WriteString(w, root.String())
	return err
}

func label(base string, e services.EntryInfo) string {
	if e.LinkTarget != "" {
		return base + " -> " + e.LinkTarget
	}
	return base
}

// cleanName strips the "./" and "/" prefixes archivers commonly emit
func cleanName(name string) string {
	for {
		switch {
		case strings.HasPrefix(name, "./"):
			name = name[2:]
		case strings.HasPrefix(name, "/"):
			name = name[1:]
		case name == ".":
			return ""
		default:
			return strings.TrimSuffix(name, "/")
		}
	}
}

func splitPath(name string) (dir, base string) {
	i := strings.LastIndexByte(name, '/')
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}
