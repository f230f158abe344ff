package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xamlint/xamlint/internal/fileproc"
	"github.com/xamlint/xamlint/internal/output"
	"github.com/xamlint/xamlint/internal/scanner"
	"github.com/xamlint/xamlint/pkg/config"
	"github.com/xamlint/xamlint/pkg/lint"
	"github.com/xamlint/xamlint/pkg/models"
)

// collectFiles expands paths into a sorted list of lintable files.
// Directories are scanned recursively with config exclusions applied;
// explicit file arguments still go through the exclusion check.
func collectFiles(cfg *config.Config, paths []string) ([]string, error) {
	sc := scanner.NewScanner(cfg)
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			found, err := sc.ScanDir(path)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		ok, err := sc.ScanFile(path)
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files, nil
}

// readStdin reads an entire document from standard input.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// fileReport pairs a lint result with the file it came from.
type fileReport struct {
	File   string            `json:"file" toon:"file"`
	Result *models.RunResult `json:"result" toon:"result"`
}

// pairReports matches indexed results back to their files, dropping slots
// that failed to process.
func pairReports(files []string, results []*models.RunResult) []fileReport {
	reports := make([]fileReport, 0, len(files))
	for i, res := range results {
		if res == nil {
			continue
		}
		reports = append(reports, fileReport{File: files[i], Result: res})
	}
	return reports
}

// summaryTable builds the per-file summary with run totals in the footer.
func summaryTable(title string, reports []fileReport, colored bool) *output.Table {
	rows := make([][]string, 0, len(reports))
	passed, failed, issues := 0, 0, 0

	for _, r := range reports {
		verdict := "PASS"
		if !r.Result.Passed {
			verdict = "FAIL"
		}
		if colored {
			verdict = output.VerdictColor(r.Result.Passed, verdict)
		}
		if r.Result.Passed {
			passed++
		} else {
			failed++
		}
		issues += r.Result.IssueCount()

		rows = append(rows, []string{
			r.File,
			verdict,
			fmt.Sprintf("%d", r.Result.IssueCount()),
			fmt.Sprintf("%d/100", r.Result.Score),
		})
	}

	return output.NewTable(
		title,
		[]string{"File", "Result", "Issues", "Score"},
		rows,
		[]string{
			fmt.Sprintf("Files: %d", len(reports)),
			fmt.Sprintf("Passed: %d", passed),
			fmt.Sprintf("Failed: %d", failed),
			fmt.Sprintf("Issues: %d", issues),
		},
		reports,
	)
}

// outputReports writes per-file reports plus the summary table. Text and
// markdown formats print full reports only for files that have findings.
func outputReports(cmd *cobra.Command, cfg *config.Config, title string, reports []fileReport) error {
	format := output.ParseFormat(getFormat(cmd))
	formatter, err := output.NewFormatter(format, getOutputFile(cmd), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if format == output.FormatText || format == output.FormatMarkdown {
		for _, r := range reports {
			if r.Result.Summary.TotalFindings == 0 {
				continue
			}
			fmt.Fprintf(formatter.Writer(), "%s\n%s\n", r.File, lint.Report(r.Result))
		}
	}

	return formatter.Output(summaryTable(title, reports, formatter.Colored()))
}

// outputSingle writes one result, as a plain report for text formats or as
// serialized data otherwise.
func outputSingle(cmd *cobra.Command, result *models.RunResult) error {
	format := output.ParseFormat(getFormat(cmd))
	formatter, err := output.NewFormatter(format, getOutputFile(cmd), false)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if format == output.FormatText || format == output.FormatMarkdown {
		_, err := fmt.Fprint(formatter.Writer(), lint.Report(result))
		return err
	}
	return formatter.Output(result)
}

// printProcessingErrors reports files that could not be read.
func printProcessingErrors(errs *fileproc.ProcessingErrors) {
	if errs == nil {
		return
	}
	for _, e := range errs.Errors {
		color.Red("  %s: %v", e.Path, e.Err)
	}
}
