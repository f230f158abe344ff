package lint

import "github.com/xamlint/xamlint/pkg/models"

// issuePenalty is the score cost of each warning or error finding.
const issuePenalty = 10

// score derives the verdict and numeric score from the collected findings.
// The penalty is linear and floored at zero; strict escalates warnings to
// verdict failures without changing the score.
func score(result *models.RunResult, level models.ValidationLevel) {
	issues := result.IssueCount()

	s := 100 - issuePenalty*issues
	if s < 0 {
		s = 0
	}
	result.Score = s

	passed := result.Summary.ErrorCount == 0
	if level == models.LevelStrict && result.Summary.WarningCount > 0 {
		passed = false
	}
	result.Passed = passed
}
