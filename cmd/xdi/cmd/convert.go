package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spc-group/go-xdi/export"
	"github.com/spc-group/go-xdi/fileio"
	"github.com/spc-group/go-xdi/logger"
	"github.com/spc-group/go-xdi/xdi"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert an XDI file to another representation",
	Long: `Convert a recognized input file to the representation selected
by the output extension: .xdi, .xdi.gz, .json, .yaml or .yml.

Example:
  xdi convert scan.xdi scan.json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[1]

		ds, err := fileio.ReadFile(in)
		if err != nil {
			return err
		}
		logger.Debug("converting", "in", in, "out", out, "rows", ds.Rows())

		switch fileio.Ext(out) {
		case ".json":
			return writeExport(out, ds, export.JSON)
		case ".yaml", ".yml":
			return writeExport(out, ds, export.YAML)
		default:
			return fileio.WriteFile(out, ds)
		}
	},
}

func writeExport(path string, ds *xdi.Dataset, encode func(*xdi.Dataset) ([]byte, error)) error {
	raw, err := encode(ds)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
