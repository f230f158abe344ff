// Package lint runs rule sets over documents and turns their findings into
// scored, reportable results. The runner isolates rules from each other: a
// panicking rule is converted into an error finding and evaluation continues.
package lint

import (
	"fmt"
	"strings"

	"github.com/xamlint/xamlint/pkg/models"
	"github.com/xamlint/xamlint/pkg/rules"
	"github.com/xamlint/xamlint/pkg/xmldoc"
)

// Linter evaluates rule sets against input text. It is safe for concurrent
// use; all per-run state lives in the RunResult.
type Linter struct {
	thresholds models.Thresholds
	validation rules.Set
	analysis   rules.Set
	source     rules.SourceRuleSet
}

// Option is a functional option for configuring a Linter.
type Option func(*Linter)

// WithThresholds sets custom numeric limits for the performance rules.
func WithThresholds(t models.Thresholds) Option {
	return func(l *Linter) {
		l.thresholds = t
	}
}

// New creates a linter with the standard rule sets.
func New(opts ...Option) *Linter {
	l := &Linter{
		thresholds: models.DefaultThresholds(),
		validation: rules.ValidationSet(),
		analysis:   rules.PerformanceSet(),
		source:     rules.SourceSet(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Validate parses raw markup and evaluates the validation rule set at the
// given level. A parse failure short-circuits: the result carries exactly one
// error finding and no rule executes.
func (l *Linter) Validate(raw string, level models.ValidationLevel) *models.RunResult {
	result := models.NewRunResult("validate")
	result.Level = level

	opts := models.Options{Level: level, Thresholds: l.thresholds}

	doc, perr := xmldoc.Parse(raw)
	if perr != nil {
		addParseFailure(result, perr)
		return result
	}

	for _, rule := range l.validation {
		for _, f := range evaluateRule(rule, doc, opts) {
			result.AddFinding(f)
		}
	}

	score(result, level)
	return result
}

// Analyze evaluates the performance rules for markup input or the source
// rules for code-behind input. KindAuto picks by inspecting the input.
func (l *Linter) Analyze(raw string, kind models.AnalysisKind) *models.RunResult {
	result := models.NewRunResult("analyze")

	if kind == models.KindAuto || kind == "" {
		kind = detectKind(raw)
	}
	result.Kind = kind

	opts := models.Options{Kind: kind, Thresholds: l.thresholds}

	switch kind {
	case models.KindXAML:
		doc, perr := xmldoc.Parse(raw)
		if perr != nil {
			addParseFailure(result, perr)
			return result
		}
		for _, rule := range l.analysis {
			for _, f := range evaluateRule(rule, doc, opts) {
				result.AddFinding(f)
			}
		}

	case models.KindCSharp:
		if strings.TrimSpace(raw) == "" {
			result.AddFinding(models.Finding{
				Rule:     "parse",
				Category: models.CategorySource,
				Severity: models.SeverityError,
				Message:  "source input is empty",
			})
			result.Passed = false
			result.Score = 0
			return result
		}
		lines := strings.Split(raw, "\n")
		for _, rule := range l.source {
			for _, f := range evaluateSourceRule(rule, lines, opts) {
				result.AddFinding(f)
			}
		}
	}

	score(result, models.LevelNormal)
	return result
}

// detectKind classifies input as markup or code-behind source.
func detectKind(raw string) models.AnalysisKind {
	if strings.HasPrefix(strings.TrimSpace(raw), "<") {
		return models.KindXAML
	}
	return models.KindCSharp
}

// addParseFailure records the single terminal finding for a failed parse.
func addParseFailure(result *models.RunResult, perr *xmldoc.ParseError) {
	result.AddFinding(models.Finding{
		Rule:       "parse",
		Category:   models.CategoryStructure,
		Severity:   models.SeverityError,
		Message:    fmt.Sprintf("document failed to parse: %s", perr.Message),
		Suggestion: "fix the markup syntax before rerunning the rules",
	})
	result.Passed = false
	result.Score = 0
}

// evaluateRule runs one rule with panic isolation. A recovered panic becomes
// an error finding naming the rule.
func evaluateRule(rule rules.Rule, doc *xmldoc.Document, opts models.Options) (findings []models.Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = []models.Finding{ruleFailure(rule.Name(), r)}
		}
	}()
	return rule.Evaluate(doc, opts)
}

// evaluateSourceRule is the source-rule counterpart of evaluateRule.
func evaluateSourceRule(rule rules.SourceRule, lines []string, opts models.Options) (findings []models.Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = []models.Finding{ruleFailure(rule.Name(), r)}
		}
	}()
	return rule.EvaluateLines(lines, opts)
}

func ruleFailure(name string, cause any) models.Finding {
	return models.Finding{
		Rule:     name,
		Category: models.CategoryStructure,
		Severity: models.SeverityError,
		Message:  fmt.Sprintf("rule %s failed: %v", name, cause),
	}
}
