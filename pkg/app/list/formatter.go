package list

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// FormatOutput writes listing results to w in the requested format
func FormatOutput(w io.Writer, response *Response, format string, humanSizes bool) error {
	switch format {
	case "json":
		return formatJSON(w, response)
	case "yaml":
		return formatYAML(w, response)
	case "table":
		return formatTable(w, response, humanSizes)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// formatTable formats results as a table
func formatTable(out io.Writer, response *Response, humanSizes bool) error {
	if len(response.Entries) == 0 {
		fmt.Fprintln(out, "No entries found matching the selection criteria.")
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

		fmt.Fprintf(w, "MODE\tUID\tGID\tSIZE\tMODIFIED\tNAME\n")
		for _, e := range response.Entries {
			name := e.Name
			if e.LinkTarget != "" {
				name += " -> " + e.LinkTarget
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\n",
				e.Mode, e.UID, e.GID, formatSize(int64(e.Size), humanSizes),
				e.Modified.UTC().Format("2006-01-02 15:04"), name)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\n%d of %d entries", len(response.Entries), response.Scanned)
	if response.Truncated {
		fmt.Fprint(out, " (limit reached)")
	}
	fmt.Fprintf(out, ", %s\n", formatSize(response.TotalSize(), humanSizes))

	if response.Failure != nil {
		fmt.Fprintf(out, "Stopped at entry %d (offset %d): %s\n",
			response.Failure.Index, response.Failure.Offset, response.Failure.Reason)
	}
	return nil
}

// formatJSON formats results as JSON
func formatJSON(w io.Writer, response *Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// formatYAML formats results as YAML
func formatYAML(w io.Writer, response *Response) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(response)
}

func formatSize(n int64, human bool) string {
	if !human {
		return fmt.Sprintf("%d", n)
	}
	return humanize.IBytes(uint64(n))
}
