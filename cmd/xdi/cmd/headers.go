package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spc-group/go-xdi/fileio"
)

// headersCmd represents the headers command
var headersCmd = &cobra.Command{
	Use:   "headers <file>",
	Short: "Print the header fields of an XDI file",
	Long: `Print the free-form header fields of an XDI file in their
stored order, one "name: value" pair per line.

Example:
  xdi headers scan.xdi`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := fileio.ReadFile(args[0])
		if err != nil {
			return err
		}
		for _, h := range ds.Headers {
			fmt.Printf("%s: %s\n", h.Name, h.Value)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(headersCmd)
}
