package verify

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// FormatOutput writes verification results to w in the requested format
func FormatOutput(w io.Writer, response *Response, format string) error {
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
		return formatText(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatText(w io.Writer, response *Response) error {
	entries := humanize.Comma(int64(response.Entries))

	var err error
	switch {
	case response.Failure != nil:
		_, err = fmt.Fprintf(w, "FAIL %s: entry %d at offset %d: %s (%s entries decoded)\n",
			response.Archive, response.Failure.Index, response.Failure.Offset, response.Failure.Reason, entries)
	case !response.OK:
		_, err = fmt.Fprintf(w, "FAIL %s: no trailer after %s entries\n", response.Archive, entries)
	case !response.TrailerFound:
		_, err = fmt.Fprintf(w, "OK   %s: %s entries, no trailer\n", response.Archive, entries)
	default:
		_, err = fmt.Fprintf(w, "OK   %s: %s entries\n", response.Archive, entries)
	}
	return err
}
