package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/mdu/internal/mdu"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs statistics in JSON format.
func PrintJSON(stats *mdu.Stats, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// FormatSize renders a usage total either as a block count or in human-readable bytes.
func FormatSize(usage mdu.Usage, human bool) string {
	if human {
		return humanize.IBytes(uint64(usage.Bytes())) //nolint:gosec // Sizes are never negative
	}

	return strconv.FormatInt(usage.Blocks, 10)
}

// PrintTable outputs one "size<TAB>path" line per measured root, like du.
// Roots that could not be accessed are left out.
func PrintTable(stats *mdu.Stats, human bool, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	for _, usage := range stats.Roots {
		if usage.Skipped {
			continue
		}

		fmt.Fprintf(w, "%s\t%s\n", FormatSize(usage, human), usage.Label)
	}

	return w.Flush()
}
