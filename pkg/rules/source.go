package rules

import (
	"fmt"
	"strings"

	"github.com/xamlint/xamlint/pkg/models"
)

// SourceRule is a single named predicate over code-behind source lines.
// Like Rule, implementations are stateless and safe for concurrent use.
type SourceRule interface {
	Name() string
	EvaluateLines(lines []string, opts models.Options) []models.Finding
}

// SourceRuleSet is an ordered collection of source rules.
type SourceRuleSet []SourceRule

// SourceSet returns the rules applied by the performance analysis operation
// when the input is code-behind source.
func SourceSet() SourceRuleSet {
	return SourceRuleSet{
		asyncVoidRule{},
		blockingTaskRule{},
		syncIORule{},
		stringConcatLoopRule{},
	}
}

// asyncVoidRule flags async void methods outside event handlers. Exceptions
// thrown from them bypass the caller and crash the process.
type asyncVoidRule struct{}

func (asyncVoidRule) Name() string { return "async-void" }

func (asyncVoidRule) EvaluateLines(lines []string, opts models.Options) []models.Finding {
	var findings []models.Finding
	for i, line := range lines {
		if !strings.Contains(line, "async void") {
			continue
		}
		if isEventHandlerSignature(line) {
			continue
		}
		findings = append(findings, models.Finding{
			Rule:       "async-void",
			Category:   models.CategorySource,
			Severity:   models.SeverityWarning,
			Message:    "async void method is not awaitable and swallows exceptions",
			Suggestion: "return Task instead of void so callers can await and observe failures",
			Line:       i + 1,
		})
	}
	return findings
}

// isEventHandlerSignature matches the conventional (object sender, ...Args e)
// shape where async void is the accepted pattern.
func isEventHandlerSignature(line string) bool {
	return strings.Contains(line, "object sender") ||
		strings.Contains(line, "object? sender") ||
		strings.Contains(line, "EventArgs")
}

// blockingTaskRule flags synchronous waits on tasks, which deadlock when
// issued from the UI thread.
type blockingTaskRule struct{}

func (blockingTaskRule) Name() string { return "blocking-task" }

var blockingTaskPatterns = []string{
	".Result",
	".Wait()",
	".GetAwaiter().GetResult()",
}

func (blockingTaskRule) EvaluateLines(lines []string, opts models.Options) []models.Finding {
	var findings []models.Finding
	for i, line := range lines {
		if isCommentLine(line) {
			continue
		}
		for _, pat := range blockingTaskPatterns {
			if !strings.Contains(line, pat) {
				continue
			}
			findings = append(findings, models.Finding{
				Rule:       "blocking-task",
				Category:   models.CategorySource,
				Severity:   models.SeverityWarning,
				Message:    fmt.Sprintf("synchronous wait on a task via %s", strings.TrimPrefix(pat, ".")),
				Suggestion: "await the task; blocking the UI thread on a task deadlocks the dispatcher",
				Line:       i + 1,
			})
			break
		}
	}
	return findings
}

// syncIORule flags synchronous file IO calls that stall the UI thread.
type syncIORule struct{}

func (syncIORule) Name() string { return "sync-io" }

var syncIOPatterns = []string{
	"File.ReadAllText(",
	"File.ReadAllLines(",
	"File.ReadAllBytes(",
	"File.WriteAllText(",
	"File.WriteAllLines(",
	"File.WriteAllBytes(",
	".ReadToEnd(",
}

func (syncIORule) EvaluateLines(lines []string, opts models.Options) []models.Finding {
	var findings []models.Finding
	for i, line := range lines {
		if isCommentLine(line) || strings.Contains(line, "Async") {
			continue
		}
		for _, pat := range syncIOPatterns {
			if !strings.Contains(line, pat) {
				continue
			}
			findings = append(findings, models.Finding{
				Rule:       "sync-io",
				Category:   models.CategorySource,
				Severity:   models.SeverityInfo,
				Message:    fmt.Sprintf("synchronous file IO call %s", strings.TrimSuffix(strings.TrimPrefix(pat, "."), "(")),
				Suggestion: "use the Async variant and await it off the UI thread",
				Line:       i + 1,
			})
			break
		}
	}
	return findings
}

// stringConcatLoopRule flags += string concatenation inside loop bodies.
// Each concatenation reallocates the whole string.
type stringConcatLoopRule struct{}

func (stringConcatLoopRule) Name() string { return "string-concat-loop" }

func (stringConcatLoopRule) EvaluateLines(lines []string, opts models.Options) []models.Finding {
	var findings []models.Finding

	// Loops are tracked by the brace depth at which they opened. A loop whose
	// opening brace sits on the following line is "unarmed" until the depth
	// rises above its mark; only armed loops close when the depth returns.
	type loopMark struct {
		depth int
		armed bool
	}
	var loops []loopMark
	braceDepth := 0

	for i, line := range lines {
		if isCommentLine(line) {
			continue
		}
		opened := opensLoop(line)
		if opened {
			loops = append(loops, loopMark{depth: braceDepth})
		}

		braceDepth += strings.Count(line, "{") - strings.Count(line, "}")

		for j := range loops {
			if braceDepth > loops[j].depth {
				loops[j].armed = true
			}
		}
		for len(loops) > 0 {
			top := loops[len(loops)-1]
			if top.armed && braceDepth <= top.depth {
				loops = loops[:len(loops)-1]
				continue
			}
			break
		}

		if len(loops) > 0 && isStringConcat(line) {
			findings = append(findings, models.Finding{
				Rule:       "string-concat-loop",
				Category:   models.CategorySource,
				Severity:   models.SeverityInfo,
				Message:    "string concatenation with += inside a loop",
				Suggestion: "accumulate with StringBuilder and call ToString once after the loop",
				Line:       i + 1,
			})
		}

		// A loop that never grew a brace body either carried its whole body
		// inline on the header line, or had a single-statement body ending on
		// the first line after the header.
		if len(loops) > 0 && !loops[len(loops)-1].armed &&
			(!opened || strings.Contains(line, "{")) {
			loops = loops[:len(loops)-1]
		}
	}
	return findings
}

// opensLoop matches the start of a for, foreach, while, or do loop.
func opensLoop(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "for ") || strings.HasPrefix(t, "for(") ||
		strings.HasPrefix(t, "foreach ") || strings.HasPrefix(t, "foreach(") ||
		strings.HasPrefix(t, "while ") || strings.HasPrefix(t, "while(") ||
		t == "do" || strings.HasPrefix(t, "do ") || strings.HasPrefix(t, "do{")
}

// isStringConcat matches += applied to what looks like a string expression.
func isStringConcat(line string) bool {
	idx := strings.Index(line, "+=")
	if idx < 0 {
		return false
	}
	rhs := line[idx+2:]
	return strings.Contains(rhs, "\"") || strings.Contains(rhs, "$\"") ||
		strings.Contains(rhs, ".ToString()")
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "//")
}
