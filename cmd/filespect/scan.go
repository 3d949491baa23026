package filespect

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/filespect/filespect/internal/config"
	"github.com/filespect/filespect/internal/engine"
	"github.com/filespect/filespect/internal/report"
	"github.com/filespect/filespect/internal/types"
)

var (
	flagVerbose     bool
	flagQuiet       bool
	flagStage       string
	flagFilterTypes []string
	flagIncludeDirs bool
	flagMaxDepth    int
	flagInclude     string
	flagExclude     string
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Classify files and directories",
		Args:  cobra.ArbitraryArgs,
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "show stage, confidence and explanation for each result")
	cmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "only show file paths and types")
	cmd.Flags().StringVarP(&flagStage, "stage", "t", "all", "run a single stage: filesystem|signature|content|all")
	cmd.Flags().StringArrayVarP(&flagFilterTypes, "filter-type", "f", nil, "only show these categories (repeatable)")
	cmd.Flags().BoolVarP(&flagIncludeDirs, "include-directories", "d", false, "include directories in the output")
	cmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0, "maximum directory depth to recurse (0 = unlimited)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
}

func runScan(_ *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal("."); err == nil {
		lcfg = c
	}

	stageStr := flagStage
	if stageStr == "all" {
		if s := pickString("", lcfg.Stage, gcfg.Stage); s != "" {
			stageStr = s
		}
	}
	stage, err := resolveStage(stageStr)
	if err != nil {
		return err
	}
	filters := flagFilterTypes
	if len(filters) == 0 {
		if len(lcfg.FilterTypes) > 0 {
			filters = lcfg.FilterTypes
		} else {
			filters = gcfg.FilterTypes
		}
	}

	cfg := engine.Config{
		Paths:        paths,
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxDepth:     pickInt(flagMaxDepth, lcfg.MaxDepth, gcfg.MaxDepth),
		IncludeDirs:  pickBool(flagIncludeDirs, lcfg.IncludeDirs, gcfg.IncludeDirs),
		Stage:        stage,
		FilterTypes:  filters,
		Threads:      pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		NoCache:      pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
		NoSignature:  pickBool(flagNoSignature, lcfg.NoSignature, gcfg.NoSignature),
		Warn: func(format string, a ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", a...)
		},
	}

	res, err := engine.ScanWithStats(cfg)
	if err != nil {
		return err
	}

	if flagJSON {
		if err := report.PrintJSON(os.Stdout, res.Results); err != nil {
			return err
		}
	} else {
		opts := report.PrintOptions{
			Verbose: flagVerbose,
			Quiet:   flagQuiet,
			NoColor: pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) || !term.IsTerminal(int(os.Stdout.Fd())),
		}
		report.PrintResults(os.Stdout, res.Results, opts)
		if flagTable {
			if err := report.PrintSummaryTable(os.Stdout, res.Results); err != nil {
				return err
			}
		}
	}

	if flagVerbose && res.FilesScanned > 1 {
		report.PrintStats(os.Stderr, res)
	}
	return nil
}

func resolveStage(s string) (types.Stage, error) {
	switch s {
	case "", "all":
		return "", nil
	case "filesystem":
		return types.StageFilesystem, nil
	case "signature":
		return types.StageSignature, nil
	case "content":
		return types.StageContent, nil
	}
	return "", fmt.Errorf("unknown stage %q (want filesystem, signature, content or all)", s)
}
