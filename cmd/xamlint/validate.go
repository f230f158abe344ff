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

var validateCmd = &cobra.Command{
	Use:   "validate [path...]",
	Short: "Validate XAML documents against the structural rule set",
	Long: `Validates AvaloniaUI XAML documents for structural problems: missing
or wrong namespaces, undeclared prefixes, duplicate resource keys,
deprecated controls, and binding mistakes.

Pass files or directories; directories are scanned recursively. Pass
"-" to validate a single document from standard input.

The exit code is nonzero when any document fails. At the warnings
level the exit code is also nonzero when any issue is found, even
though the verdict itself only depends on errors.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringP("level", "l", "", "Validation level: normal, warnings, strict (overrides config)")
	validateCmd.Flags().Bool("fail-on-issues", false, "Exit nonzero when any issue is found, regardless of verdict")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := cfg.Level()
	if flagLevel, _ := cmd.Flags().GetString("level"); flagLevel != "" {
		level, err = models.ParseValidationLevel(flagLevel)
		if err != nil {
			return err
		}
	}

	linter := lint.New(lint.WithThresholds(cfg.Thresholds))

	if len(args) == 1 && args[0] == "-" {
		raw, err := readStdin()
		if err != nil {
			return err
		}
		result := linter.Validate(raw, level)
		if err := outputSingle(cmd, result); err != nil {
			return err
		}
		exitOnVerdict(cmd, []fileReport{{File: "-", Result: result}}, level, false)
		return nil
	}

	files, err := collectFiles(cfg, getPaths(args))
	if err != nil {
		return err
	}
	xamlFiles := scanner.FilterByKind(files, models.KindXAML)
	if len(xamlFiles) == 0 {
		color.Yellow("No XAML files found")
		return nil
	}

	tracker := progress.NewTracker("Validating XAML files...", len(xamlFiles), getQuiet(cmd))
	results, procErrs := fileproc.ForEachFileIndexed(xamlFiles, func(path string) (*models.RunResult, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return linter.Validate(string(data), level), nil
	}, tracker.Tick)
	tracker.Finish()
	printProcessingErrors(procErrs)

	reports := pairReports(xamlFiles, results)
	if err := outputReports(cmd, cfg, "XAML Validation", reports); err != nil {
		return err
	}

	exitOnVerdict(cmd, reports, level, procErrs != nil)
	return nil
}

// exitOnVerdict exits nonzero when any document failed, when any file could
// not be processed, or when issues were found at the warnings level or with
// --fail-on-issues set.
func exitOnVerdict(cmd *cobra.Command, reports []fileReport, level models.ValidationLevel, hadErrors bool) {
	failed := hadErrors
	issues := 0
	for _, r := range reports {
		if !r.Result.Passed {
			failed = true
		}
		issues += r.Result.IssueCount()
	}

	failOnIssues, _ := cmd.Flags().GetBool("fail-on-issues")
	if failed || (issues > 0 && (failOnIssues || level == models.LevelWarnings)) {
		os.Exit(1)
	}
}
