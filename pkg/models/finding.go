package models

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Severity represents the severity level of a finding.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Category groups rules by the concern they inspect.
type Category string

const (
	CategoryStructure     Category = "structure"
	CategoryCompatibility Category = "compatibility"
	CategoryBinding       Category = "binding"
	CategoryPerformance   Category = "performance"
	CategorySource        Category = "source"
)

// Finding is one diagnostic emitted by a rule. Findings are append-only
// within a run and never mutated after collection.
type Finding struct {
	Rule        string   `json:"rule" toon:"rule"`
	Category    Category `json:"category" toon:"category"`
	Severity    Severity `json:"severity" toon:"severity"`
	Message     string   `json:"message" toon:"message"`
	Suggestion  string   `json:"suggestion,omitempty" toon:"suggestion,omitempty"`
	Line        int      `json:"line,omitempty" toon:"line,omitempty"`
	ContextHash string   `json:"context_hash,omitempty" toon:"context_hash,omitempty"` // BLAKE3 digest for identity tracking
}

// IsIssue reports whether the finding counts against the score.
func (f Finding) IsIssue() bool {
	return f.Severity == SeverityWarning || f.Severity == SeverityError
}

// ContextHash computes a short stable digest identifying a finding across
// runs, independent of its position in the report.
func ContextHash(rule, message string) string {
	sum := blake3.Sum256([]byte(rule + "\x00" + message))
	return hex.EncodeToString(sum[:8])
}

// RunSummary provides aggregate statistics for one run.
type RunSummary struct {
	TotalFindings int `json:"total_findings" toon:"total_findings"`
	ErrorCount    int `json:"error_count" toon:"error_count"`
	WarningCount  int `json:"warning_count" toon:"warning_count"`
	InfoCount     int `json:"info_count" toon:"info_count"`
}

// RunResult aggregates all findings from one rule set execution plus the
// derived verdict and score. It has no lifecycle beyond a single invocation.
type RunResult struct {
	Operation       string          `json:"operation" toon:"operation"`
	Level           ValidationLevel `json:"validation_level,omitempty" toon:"validation_level,omitempty"`
	Kind            AnalysisKind    `json:"analysis_kind,omitempty" toon:"analysis_kind,omitempty"`
	Findings        []Finding       `json:"findings" toon:"findings"`
	Issues          []Finding       `json:"issues" toon:"issues"`
	Recommendations []Finding       `json:"recommendations" toon:"recommendations"`
	Passed          bool            `json:"passed" toon:"passed"`
	Score           int             `json:"score" toon:"score"`
	Summary         RunSummary      `json:"summary" toon:"summary"`
}

// NewRunResult creates an initialized result for the named operation.
func NewRunResult(operation string) *RunResult {
	return &RunResult{
		Operation:       operation,
		Findings:        make([]Finding, 0),
		Issues:          make([]Finding, 0),
		Recommendations: make([]Finding, 0),
	}
}

// AddFinding records a finding, assigns its context hash, partitions it into
// issues or recommendations, and updates the summary counters.
func (r *RunResult) AddFinding(f Finding) {
	if f.ContextHash == "" {
		f.ContextHash = ContextHash(f.Rule, f.Message)
	}
	r.Findings = append(r.Findings, f)
	r.Summary.TotalFindings++

	switch f.Severity {
	case SeverityError:
		r.Summary.ErrorCount++
	case SeverityWarning:
		r.Summary.WarningCount++
	case SeverityInfo:
		r.Summary.InfoCount++
	}

	if f.IsIssue() {
		r.Issues = append(r.Issues, f)
	} else {
		r.Recommendations = append(r.Recommendations, f)
	}
}

// IssueCount returns the number of Warning and Error findings.
func (r *RunResult) IssueCount() int {
	return r.Summary.ErrorCount + r.Summary.WarningCount
}

// ScoreBand maps the numeric score to a qualitative band.
func (r *RunResult) ScoreBand() string {
	switch {
	case r.Score >= 90:
		return "excellent"
	case r.Score >= 70:
		return "good"
	case r.Score >= 50:
		return "moderate"
	default:
		return "poor"
	}
}
