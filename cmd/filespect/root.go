package filespect

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON        bool
	flagTable       bool
	flagThreads     int
	flagNoColor     bool
	flagNoCache     bool
	flagNoSignature bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the filespect CLI.
var rootCmd = &cobra.Command{
	Use:           "filespect",
	Short:         "Determine file types",
	Long:          "Filespect classifies files and directories with a three-stage pipeline: filesystem metadata, byte signatures, and content analysis.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the filespect CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "append a per-category summary table")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable the incremental result cache")
	rootCmd.PersistentFlags().BoolVar(&flagNoSignature, "no-signature", false, "skip the byte-signature stage")
}
