package stat

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-cpio/pkg/services"
)

// FormatOutput writes an archive summary to w in the requested format
func FormatOutput(w io.Writer, response *Response, format string, humanSizes bool) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(response)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(response)
	case "table":
		return formatTable(w, response, humanSizes)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatTable(out io.Writer, response *Response, humanSizes bool) error {
	s := response.Summary
	size := func(n int64) string {
		if humanSizes {
			return humanize.IBytes(uint64(n))
		}
		return fmt.Sprintf("%d", n)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Archive:\t%s\n", response.Archive)
	if response.Compression != "" && response.Compression != "none" {
		fmt.Fprintf(w, "Size:\t%s (%s, %s stored)\n", size(int64(s.ArchiveSize)), response.Compression, size(int64(response.StoredSize)))
	} else {
		fmt.Fprintf(w, "Size:\t%s\n", size(int64(s.ArchiveSize)))
	}
	fmt.Fprintf(w, "Entries:\t%s\n", humanize.Comma(int64(s.Entries)))
	fmt.Fprintf(w, "Formats:\t%s\n", joinCounts(s.Formats))
	fmt.Fprintf(w, "Types:\t%s\n", joinCounts(s.Types))
	fmt.Fprintf(w, "Content:\t%s\n", size(s.ContentBytes))
	if s.LargestEntry != "" {
		fmt.Fprintf(w, "Largest:\t%s (%s)\n", s.LargestEntry, size(int64(s.LargestSize)))
	}
	fmt.Fprintf(w, "Hard links:\t%d groups\n", len(s.HardLinks))

	if response.Failure != nil {
		fmt.Fprintf(w, "Status:\tstopped at entry %d (offset %d): %s\n",
			response.Failure.Index, response.Failure.Offset, response.Failure.Reason)
	} else {
		fmt.Fprintf(w, "Status:\tclean (%d trailing bytes)\n", response.TrailingBytes())
	}

	if err := w.Flush(); err != nil {
		return err
	}

	for _, g := range s.HardLinks {
		fmt.Fprintf(out, "  [%s/%d] %s\n", g.Device, g.Ino, strings.Join(g.Names, ", "))
	}

	if response.Entry != nil {
		fmt.Fprintln(out)
		return formatEntry(out, response.Entry, size)
	}
	return nil
}

func formatEntry(out io.Writer, e *services.EntryInfo, size func(int64) string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Entry:\t%s\n", e.Name)
	fmt.Fprintf(w, "Position:\tentry %d at offset %d\n", e.Index, e.Offset)
	fmt.Fprintf(w, "Mode:\t%s (%s, %s)\n", e.Mode, e.Type, e.Format)
	fmt.Fprintf(w, "Size:\t%s\n", size(int64(e.Size)))
	fmt.Fprintf(w, "Owner:\t%d:%d\n", e.UID, e.GID)
	fmt.Fprintf(w, "Inode:\t%d on %s, %d links\n", e.Ino, e.Device, e.NLink)
	if e.RDevice != "" {
		fmt.Fprintf(w, "Device:\t%s\n", e.RDevice)
	}
	if e.LinkTarget != "" {
		fmt.Fprintf(w, "Target:\t%s\n", e.LinkTarget)
	}
	fmt.Fprintf(w, "Modified:\t%s\n", e.Modified.UTC().Format("2006-01-02 15:04:05"))

	return w.Flush()
}

// joinCounts renders a count map as "a=1, b=2" in key order
func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "-"
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, ", ")
}
