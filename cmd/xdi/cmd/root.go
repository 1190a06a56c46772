package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spc-group/go-xdi/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xdi",
	Short: "Inspect and convert XDI spectroscopy files",
	Long: `xdi reads and writes files in the XAS Data Interchange format
used to exchange X-ray absorption spectroscopy measurements between
instruments and analysis tools.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		switch level {
		case "debug":
			logger.SetLevel(logger.DebugLevel)
		case "info":
			logger.SetLevel(logger.InfoLevel)
		case "warn":
			logger.SetLevel(logger.WarnLevel)
		case "error":
			logger.SetLevel(logger.ErrorLevel)
		default:
			return fmt.Errorf("unknown log level %q", level)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Logging level (debug, info, warn, error)")
}
