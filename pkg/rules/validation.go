package rules

import (
	"fmt"
	"strings"

	"github.com/xamlint/xamlint/pkg/models"
	"github.com/xamlint/xamlint/pkg/xmldoc"
)

// rootNamespaceRule checks that the root element declares the Avalonia
// default namespace. A WPF presentation namespace is a compatibility
// warning; anything else is an error.
type rootNamespaceRule struct{}

func (rootNamespaceRule) Name() string { return "root-namespace" }

func (rootNamespaceRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	switch ns := doc.DefaultNamespace(); ns {
	case AvaloniaNamespace:
		return []models.Finding{{
			Rule:     "root-namespace",
			Category: models.CategoryStructure,
			Severity: models.SeverityInfo,
			Message:  "root element declares the Avalonia namespace",
		}}
	case WPFNamespace:
		return []models.Finding{{
			Rule:       "root-namespace",
			Category:   models.CategoryCompatibility,
			Severity:   models.SeverityWarning,
			Message:    "root element declares the WPF presentation namespace",
			Suggestion: fmt.Sprintf("replace the default namespace with xmlns=%q", AvaloniaNamespace),
		}}
	case "":
		return []models.Finding{{
			Rule:       "root-namespace",
			Category:   models.CategoryStructure,
			Severity:   models.SeverityError,
			Message:    "root element declares no default namespace",
			Suggestion: fmt.Sprintf("add xmlns=%q to the root element", AvaloniaNamespace),
		}}
	default:
		return []models.Finding{{
			Rule:       "root-namespace",
			Category:   models.CategoryCompatibility,
			Severity:   models.SeverityWarning,
			Message:    fmt.Sprintf("root element declares unexpected default namespace %q", ns),
			Suggestion: fmt.Sprintf("Avalonia markup uses xmlns=%q", AvaloniaNamespace),
		}}
	}
}

// xamlNamespaceRule checks that any use of the x: directive prefix is backed
// by the XAML namespace declaration on the root.
type xamlNamespaceRule struct{}

func (xamlNamespaceRule) Name() string { return "xaml-namespace" }

func (xamlNamespaceRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	declared, ok := doc.Namespace("x")
	if ok && declared == XAMLNamespace {
		return nil
	}

	var findings []models.Finding
	for _, e := range doc.Elements() {
		if !usesXAMLDirectives(e) {
			continue
		}
		if !ok {
			findings = append(findings, models.Finding{
				Rule:       "xaml-namespace",
				Category:   models.CategoryStructure,
				Severity:   models.SeverityError,
				Message:    fmt.Sprintf("element <%s> uses the x: prefix but the root does not declare it", e.FullName()),
				Suggestion: fmt.Sprintf("add xmlns:x=%q to the root element", XAMLNamespace),
			})
		} else {
			findings = append(findings, models.Finding{
				Rule:       "xaml-namespace",
				Category:   models.CategoryStructure,
				Severity:   models.SeverityWarning,
				Message:    fmt.Sprintf("x: prefix is bound to %q instead of the XAML namespace", declared),
				Suggestion: fmt.Sprintf("bind the x: prefix to %q", XAMLNamespace),
			})
			break // one finding is enough for a wrong URI; per-element repeats add no information
		}
	}
	return findings
}

// styleSelectorRule flags Style elements without a Selector attribute, which
// are silently inert in Avalonia.
type styleSelectorRule struct{}

func (styleSelectorRule) Name() string { return "style-selectors" }

func (styleSelectorRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	var findings []models.Finding
	for _, e := range doc.ElementsNamed("Style") {
		if e.HasAttr("Selector") {
			continue
		}
		findings = append(findings, models.Finding{
			Rule:       "style-selectors",
			Category:   models.CategoryStructure,
			Severity:   models.SeverityError,
			Message:    "Style element has no Selector and will never match",
			Suggestion: "add a Selector attribute, e.g. Selector=\"Button.accent\"",
		})
	}
	return findings
}

// duplicateKeyRule flags duplicate x:Key values within the same resources
// section. Duplicate keys make all but the last entry unreachable.
type duplicateKeyRule struct{}

func (duplicateKeyRule) Name() string { return "duplicate-keys" }

func (duplicateKeyRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	var findings []models.Finding
	for _, container := range doc.Elements() {
		if !isResourcesContainer(container) {
			continue
		}
		seen := make(map[string]bool)
		for _, child := range container.Children() {
			key, ok := child.Attr("x:Key")
			if !ok || key == "" {
				continue
			}
			if seen[key] {
				findings = append(findings, models.Finding{
					Rule:       "duplicate-keys",
					Category:   models.CategoryStructure,
					Severity:   models.SeverityError,
					Message:    fmt.Sprintf("duplicate x:Key %q in <%s>", key, container.FullName()),
					Suggestion: "rename or remove the duplicate resource entry",
				})
			}
			seen[key] = true
		}
	}
	return findings
}

// duplicateNameRule flags duplicate x:Name or Name values across the
// document. Names share one scope per markup file.
type duplicateNameRule struct{}

func (duplicateNameRule) Name() string { return "duplicate-names" }

func (duplicateNameRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	var findings []models.Finding
	seen := make(map[string]bool)
	for _, e := range doc.Elements() {
		if isPropertyElement(e) {
			continue
		}
		name, ok := e.Attr("x:Name")
		if !ok {
			name, ok = e.Attr("Name")
		}
		if !ok || name == "" {
			continue
		}
		if seen[name] {
			findings = append(findings, models.Finding{
				Rule:       "duplicate-names",
				Category:   models.CategoryStructure,
				Severity:   models.SeverityError,
				Message:    fmt.Sprintf("duplicate element name %q on <%s>", name, e.FullName()),
				Suggestion: "element names must be unique within a markup file",
			})
		}
		seen[name] = true
	}
	return findings
}

// bindingTypeHintRule flags runtime binding expressions in documents that
// declare neither x:DataType nor compiled bindings. Such bindings resolve by
// reflection and fail only at runtime.
type bindingTypeHintRule struct{}

func (bindingTypeHintRule) Name() string { return "binding-type-hint" }

func (bindingTypeHintRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	if doc.Root().HasAttr("x:DataType") || compileBindingsEnabled(doc) {
		return nil
	}

	var findings []models.Finding
	for _, e := range doc.Elements() {
		for _, a := range e.Attrs() {
			if !hasBindingValue(a.Value) {
				continue
			}
			findings = append(findings, models.Finding{
				Rule:       "binding-type-hint",
				Category:   models.CategoryBinding,
				Severity:   models.SeverityWarning,
				Message:    fmt.Sprintf("binding on <%s> %s has no type hint", e.FullName(), a.Name),
				Suggestion: "declare x:DataType on the root or enable x:CompileBindings=\"True\"",
			})
		}
	}
	return findings
}

// wpfOnlyControls maps WPF control names with no Avalonia equivalent to a
// migration suggestion.
var wpfOnlyControls = map[string]string{
	"Frame":            "use TransitioningContentControl or a routed view model for navigation",
	"MediaElement":     "no built-in equivalent; consider LibVLCSharp.Avalonia",
	"WebBrowser":       "host a platform web view through NativeControlHost",
	"WindowsFormsHost": "host native content through NativeControlHost",
	"InkCanvas":        "use a Canvas with pointer event handlers",
	"StatusBar":        "compose a DockPanel docked to the bottom edge",
	"Ribbon":           "compose Menu and ToolBar-style controls",
}

// deprecatedControlRule flags WPF-only controls that do not exist in Avalonia.
type deprecatedControlRule struct{}

func (deprecatedControlRule) Name() string { return "deprecated-controls" }

func (deprecatedControlRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	var findings []models.Finding
	for _, e := range doc.Elements() {
		suggestion, ok := wpfOnlyControls[e.Name()]
		if !ok || e.Prefix() != "" {
			continue
		}
		findings = append(findings, models.Finding{
			Rule:       "deprecated-controls",
			Category:   models.CategoryCompatibility,
			Severity:   models.SeverityWarning,
			Message:    fmt.Sprintf("<%s> is a WPF control with no Avalonia equivalent", e.Name()),
			Suggestion: suggestion,
		})
	}
	return findings
}

// gridDefinitionsRule flags grids whose children address rows or columns
// that were never defined. Undefined tracks collapse to a single cell.
type gridDefinitionsRule struct{}

func (gridDefinitionsRule) Name() string { return "grid-definitions" }

func (gridDefinitionsRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	var findings []models.Finding
	for _, grid := range doc.ElementsNamed("Grid") {
		hasRows := grid.HasAttr("RowDefinitions")
		hasCols := grid.HasAttr("ColumnDefinitions")
		for _, child := range grid.Children() {
			switch child.Name() {
			case "Grid.RowDefinitions":
				hasRows = true
			case "Grid.ColumnDefinitions":
				hasCols = true
			}
		}

		usesRows, usesCols := false, false
		for _, d := range grid.Descendants() {
			if v, ok := d.Attr("Grid.Row"); ok && v != "0" {
				usesRows = true
			}
			if v, ok := d.Attr("Grid.Column"); ok && v != "0" {
				usesCols = true
			}
		}

		if usesRows && !hasRows {
			findings = append(findings, models.Finding{
				Rule:       "grid-definitions",
				Category:   models.CategoryStructure,
				Severity:   models.SeverityWarning,
				Message:    "Grid children reference rows but the grid defines no RowDefinitions",
				Suggestion: "add RowDefinitions, e.g. RowDefinitions=\"Auto,*\"",
			})
		}
		if usesCols && !hasCols {
			findings = append(findings, models.Finding{
				Rule:       "grid-definitions",
				Category:   models.CategoryStructure,
				Severity:   models.SeverityWarning,
				Message:    "Grid children reference columns but the grid defines no ColumnDefinitions",
				Suggestion: "add ColumnDefinitions, e.g. ColumnDefinitions=\"Auto,*\"",
			})
		}
	}
	return findings
}

// eventHandlerAttrs are attributes whose values name code-behind methods.
var eventHandlerAttrs = []string{
	"Click", "Tapped", "DoubleTapped", "PointerPressed", "PointerReleased",
	"SelectionChanged", "TextChanged", "Checked", "Unchecked", "Loaded",
}

// eventHandlerRule flags event handler attributes in documents that declare
// no x:Class, since there is no code-behind to resolve the handlers against.
type eventHandlerRule struct{}

func (eventHandlerRule) Name() string { return "event-handlers" }

func (eventHandlerRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	if doc.Root().HasAttr("x:Class") {
		return nil
	}

	count := 0
	for _, e := range doc.Elements() {
		for _, attr := range eventHandlerAttrs {
			if v, ok := e.Attr(attr); ok && v != "" && !strings.HasPrefix(v, "{") {
				count++
			}
		}
	}
	if count == 0 {
		return nil
	}
	return []models.Finding{{
		Rule:       "event-handlers",
		Category:   models.CategoryStructure,
		Severity:   models.SeverityWarning,
		Message:    fmt.Sprintf("%d event handler attribute(s) present but the root declares no x:Class", count),
		Suggestion: "declare x:Class so handlers resolve against code-behind, or bind commands instead",
	}}
}

// emptyResourcesRule flags resources sections with no entries.
type emptyResourcesRule struct{}

func (emptyResourcesRule) Name() string { return "empty-resources" }

func (emptyResourcesRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	var findings []models.Finding
	for _, e := range doc.Elements() {
		if !isResourcesContainer(e) || len(e.Children()) > 0 {
			continue
		}
		findings = append(findings, models.Finding{
			Rule:       "empty-resources",
			Category:   models.CategoryStructure,
			Severity:   models.SeverityInfo,
			Message:    fmt.Sprintf("<%s> is empty", e.FullName()),
			Suggestion: "remove the empty resources section",
		})
	}
	return findings
}
