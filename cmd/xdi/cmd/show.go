package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spc-group/go-xdi/fileio"
	"github.com/spc-group/go-xdi/logger"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a summary of an XDI file",
	Long: `Print a summary of an XDI file: format version, producer
versions, header count, column labels, and the number of data rows.

Example:
  xdi show scan.xdi`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("loading file", "path", args[0])

		ds, err := fileio.ReadFile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("XDI version: %s\n", ds.XDIVersion)
		for _, name := range sortedVersionNames(ds.Versions) {
			fmt.Printf("Producer:    %s/%s\n", name, ds.Versions[name])
		}
		fmt.Printf("Headers:     %d\n", len(ds.Headers))
		if comment := strings.TrimSpace(ds.UserComment); comment != "" {
			fmt.Printf("Comment:     %d line(s)\n", len(strings.Split(comment, "\n")))
		}

		labels := make([]string, 0, len(ds.Columns))
		for _, col := range ds.Columns {
			labels = append(labels, col.Label)
		}
		fmt.Printf("Columns:     %s\n", strings.Join(labels, " "))
		fmt.Printf("Rows:        %d\n", ds.Rows())
		return nil
	},
}

func sortedVersionNames(versions map[string]string) []string {
	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	rootCmd.AddCommand(showCmd)
}
