package mcpserver

// Tool descriptions with interpretation guidance for LLMs.

func describeValidate() string {
	return `Validates an AvaloniaUI XAML document against structural and correctness rules.

USE WHEN:
- Checking generated or edited XAML before writing it to a project
- Migrating WPF markup to Avalonia and looking for incompatibilities
- Reviewing a view for binding mistakes, duplicate names, or inert styles

INTERPRETING RESULTS:
- Result PASSED/FAILED is the verdict; errors always fail, warnings fail only at strict level
- Score starts at 100 and loses 10 points per warning or error, floored at 0
- error: the document is wrong (missing namespaces, duplicate keys, selector-less styles)
- warning: likely mistakes and WPF leftovers (deprecated controls, untyped bindings)
- info: positive confirmations and housekeeping notes; never affects the verdict
- A document that fails to parse reports exactly one error and score 0

PARAMETERS:
- document_text: the full XAML text
- validation_level: normal (default), warnings, or strict
- format: text (default), json, or toon

RETURNS:
- A report with verdict, numbered issues with fix suggestions, recommendations, and the score`
}

func describeAnalyze() string {
	return `Analyzes AvaloniaUI markup or C# code-behind for performance problems.

USE WHEN:
- Profiling a view that renders or scrolls slowly
- Reviewing list-heavy UIs for missing virtualization
- Checking code-behind for UI-thread blocking patterns

INTERPRETING RESULTS:
- For XAML: deep layout nesting, unvirtualized lists, inline style repetition,
  oversized panels and resource sections, runtime vs compiled bindings
- For C#: async void methods, synchronous waits on tasks (.Result, .Wait()),
  synchronous file IO, string concatenation in loops (with line numbers)
- warning: measurable performance risk; info: improvement opportunity
- Score follows the same 10-points-per-issue policy as validation

PARAMETERS:
- code_text: XAML markup or C# source
- analysis_kind: auto (default, detects markup by a leading '<'), xaml, or csharp
- format: text (default), json, or toon

RETURNS:
- A report with issues, recommendations, and a 0-100 performance score`
}
