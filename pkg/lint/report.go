package lint

import (
	"fmt"
	"strings"

	"github.com/xamlint/xamlint/pkg/models"
)

// Report renders a result as a stable plain-text report. Identical results
// render to identical strings; ordering follows finding collection order.
func Report(result *models.RunResult) string {
	var b strings.Builder

	b.WriteString(reportTitle(result))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(reportTitle(result))))
	b.WriteString("\n\n")

	if result.Passed {
		b.WriteString("Result: PASSED\n")
	} else {
		b.WriteString("Result: FAILED\n")
	}
	if result.Level != "" {
		fmt.Fprintf(&b, "Level: %s\n", result.Level)
	}
	if result.Kind != "" {
		fmt.Fprintf(&b, "Input: %s\n", result.Kind)
	}

	if len(result.Issues) > 0 {
		fmt.Fprintf(&b, "\nIssues (%d):\n", len(result.Issues))
		for i, f := range result.Issues {
			writeFinding(&b, i+1, f)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintf(&b, "\nRecommendations (%d):\n", len(result.Recommendations))
		for i, f := range result.Recommendations {
			writeFinding(&b, i+1, f)
		}
	}

	fmt.Fprintf(&b, "\nScore: %d/100 (%s)\n", result.Score, result.ScoreBand())
	return b.String()
}

func reportTitle(result *models.RunResult) string {
	if result.Operation == "analyze" {
		return "Performance Analysis Report"
	}
	return "XAML Validation Report"
}

func writeFinding(b *strings.Builder, n int, f models.Finding) {
	loc := ""
	if f.Line > 0 {
		loc = fmt.Sprintf(" (line %d)", f.Line)
	}
	fmt.Fprintf(b, "%3d. [%s] %s: %s%s\n", n, f.Severity, f.Rule, f.Message, loc)
	if f.Suggestion != "" {
		fmt.Fprintf(b, "     fix: %s\n", f.Suggestion)
	}
}
