package xdi

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Dump converts a dataset to an XDI formatted string, the inverse of
// Load.
//
// The dataset must carry an XDI version and at least one column;
// otherwise an error wrapping ErrMissingAttribute is returned. Producer
// versions are written in sorted package order so the output is
// deterministic; headers keep their stored order. The result ends with
// exactly one newline.
func Dump(ds *Dataset) (string, error) {
	if ds.XDIVersion == "" {
		return "", fmt.Errorf("%w: xdi_version", ErrMissingAttribute)
	}
	if len(ds.Columns) == 0 {
		return "", fmt.Errorf("%w: columns", ErrMissingAttribute)
	}

	var sb strings.Builder

	// Version specifiers
	sb.WriteString("# XDI/")
	sb.WriteString(ds.XDIVersion)
	for _, name := range sortedKeys(ds.Versions) {
		sb.WriteByte(' ')
		sb.WriteString(name)
		sb.WriteByte('/')
		sb.WriteString(ds.Versions[name])
	}
	sb.WriteByte('\n')

	// Header metadata
	for _, h := range ds.Headers {
		fmt.Fprintf(&sb, "# %s: %s\n", h.Name, h.Value)
	}

	// User comments section
	if comment := strings.TrimSpace(ds.UserComment); comment != "" {
		sb.WriteString("# /////\n")
		for _, line := range strings.Split(comment, "\n") {
			sb.WriteString("# ")
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}

	// Column labels
	sb.WriteString("# -----\n")
	sb.WriteByte('#')
	for _, col := range ds.Columns {
		sb.WriteByte(' ')
		sb.WriteString(col.Label)
	}
	sb.WriteByte('\n')

	// Data rows in tab-separated format
	rows := ds.Rows()
	for r := 0; r < rows; r++ {
		sb.WriteString("  ")
		for c := range ds.Columns {
			if c > 0 {
				sb.WriteByte('\t')
			}
			if r < len(ds.Columns[c].Values) {
				sb.WriteString(formatValue(ds.Columns[c].Values[r]))
			}
		}
		sb.WriteByte('\n')
	}

	// Clean up the file ending (make sure there's a single newline)
	return strings.TrimRight(sb.String(), " \t\n") + "\n", nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
