package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xamlint/xamlint/internal/fileproc"
	"github.com/xamlint/xamlint/internal/progress"
	"github.com/xamlint/xamlint/internal/scanner"
	"github.com/xamlint/xamlint/pkg/lint"
	"github.com/xamlint/xamlint/pkg/models"
)

var analyzeCmd = &cobra.Command{
	Use:     "analyze [path...]",
	Aliases: []string{"a"},
	Short:   "Analyze XAML and code-behind for performance problems",
	Long: `Analyzes AvaloniaUI markup for layout and binding performance problems
(deep nesting, unvirtualized lists, inline styling, oversized panels)
and C# code-behind for UI-thread hazards (async void, blocked tasks,
synchronous IO, string building in loops).

Pass files or directories; the input kind is detected per file from
its extension. Pass "-" to analyze a single document from standard
input, auto-detected unless --kind is set.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("kind", "k", "", "Input kind: auto, xaml, csharp (overrides config)")
	analyzeCmd.Flags().Bool("fail-on-issues", false, "Exit nonzero when any issue is found, regardless of verdict")
	analyzeCmd.Flags().Int("max-nesting-depth", 0, "Maximum layout nesting depth before a warning")
	analyzeCmd.Flags().Int("max-inline-styled", 0, "Maximum heavily inline-styled elements per document")
	analyzeCmd.Flags().Int("max-elements", 0, "Maximum elements per document")
	analyzeCmd.Flags().Int("max-resource-entries", 0, "Maximum entries per resource dictionary")
	analyzeCmd.Flags().Int("max-panel-children", 0, "Maximum direct children per stacking panel")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	kind := cfg.Kind()
	if flagKind, _ := cmd.Flags().GetString("kind"); flagKind != "" {
		kind, err = models.ParseAnalysisKind(flagKind)
		if err != nil {
			return err
		}
	}

	// Flags override config thresholds
	thresholds := models.Thresholds{
		MaxNestingDepth:    intFlagOrConfig(cmd, "max-nesting-depth", cfg.Thresholds.MaxNestingDepth),
		MaxInlineStyled:    intFlagOrConfig(cmd, "max-inline-styled", cfg.Thresholds.MaxInlineStyled),
		MaxElements:        intFlagOrConfig(cmd, "max-elements", cfg.Thresholds.MaxElements),
		MaxResourceEntries: intFlagOrConfig(cmd, "max-resource-entries", cfg.Thresholds.MaxResourceEntries),
		MaxPanelChildren:   intFlagOrConfig(cmd, "max-panel-children", cfg.Thresholds.MaxPanelChildren),
	}

	linter := lint.New(lint.WithThresholds(thresholds))

	if len(args) == 1 && args[0] == "-" {
		raw, err := readStdin()
		if err != nil {
			return err
		}
		result := linter.Analyze(raw, kind)
		if err := outputSingle(cmd, result); err != nil {
			return err
		}
		exitOnVerdict(cmd, []fileReport{{File: "-", Result: result}}, models.LevelNormal, false)
		return nil
	}

	files, err := collectFiles(cfg, getPaths(args))
	if err != nil {
		return err
	}
	if kind != models.KindAuto {
		files = scanner.FilterByKind(files, kind)
	}
	if len(files) == 0 {
		color.Yellow("No source files found")
		return nil
	}

	tracker := progress.NewTracker("Analyzing files...", len(files), getQuiet(cmd))
	results, procErrs := fileproc.ForEachFileIndexed(files, func(path string) (*models.RunResult, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		fileKind, _ := scanner.DetectKind(path)
		return linter.Analyze(string(data), fileKind), nil
	}, tracker.Tick)
	tracker.Finish()
	printProcessingErrors(procErrs)

	reports := pairReports(files, results)
	if err := outputReports(cmd, cfg, "Performance Analysis", reports); err != nil {
		return err
	}

	exitOnVerdict(cmd, reports, models.LevelNormal, procErrs != nil)
	return nil
}
