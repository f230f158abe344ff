package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	toon "github.com/toon-format/toon-go"

	"github.com/xamlint/xamlint/internal/output"
	"github.com/xamlint/xamlint/pkg/lint"
	"github.com/xamlint/xamlint/pkg/models"
)

// ValidateInput is the input for the validate_xaml tool.
type ValidateInput struct {
	DocumentText    string `json:"document_text" jsonschema:"The XAML document text to validate."`
	ValidationLevel string `json:"validation_level,omitempty" jsonschema:"Validation level: normal (default), warnings, or strict."`
	Format          string `json:"format,omitempty" jsonschema:"Output format: text (default), json, or toon."`
}

// AnalyzeInput is the input for the analyze_performance tool.
type AnalyzeInput struct {
	CodeText     string `json:"code_text" jsonschema:"XAML markup or C# code-behind text to analyze."`
	AnalysisKind string `json:"analysis_kind,omitempty" jsonschema:"Input kind: auto (default), xaml, or csharp."`
	Format       string `json:"format,omitempty" jsonschema:"Output format: text (default), json, or toon."`
}

// formatResult renders a run result in the requested format. Text is the
// default because the report is written for direct reading.
func formatResult(result *models.RunResult, format string) (string, error) {
	switch output.ParseFormat(format) {
	case output.FormatJSON:
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	case output.FormatTOON:
		out, err := toon.Marshal(result, toon.WithIndent(2))
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return lint.Report(result), nil
	}
}

func toolResult(result *models.RunResult, format string) (*mcp.CallToolResult, any, error) {
	text, err := formatResult(result, format)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

// configFailure builds the failed report for an unusable parameter. Bad
// parameters come back as ordinary reports, like any other failure; the
// protocol error path is reserved for serialization faults.
func configFailure(operation string, err error) *models.RunResult {
	result := models.NewRunResult(operation)
	result.AddFinding(models.Finding{
		Rule:     "config",
		Category: models.CategoryStructure,
		Severity: models.SeverityError,
		Message:  err.Error(),
	})
	result.Passed = false
	result.Score = 0
	return result
}

// handleValidateXAML runs the validation rule set over a document. Malformed
// documents and invalid parameters both produce failed reports, never tool
// errors.
func handleValidateXAML(ctx context.Context, req *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, any, error) {
	level, err := models.ParseValidationLevel(input.ValidationLevel)
	if err != nil {
		return toolResult(configFailure("validate", err), input.Format)
	}

	result := lint.New().Validate(input.DocumentText, level)
	return toolResult(result, input.Format)
}

// handleAnalyzePerformance runs the performance rules over markup or the
// source rules over code-behind.
func handleAnalyzePerformance(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, any, error) {
	kind, err := models.ParseAnalysisKind(input.AnalysisKind)
	if err != nil {
		return toolResult(configFailure("analyze", err), input.Format)
	}

	result := lint.New().Analyze(input.CodeText, kind)
	return toolResult(result, input.Format)
}
