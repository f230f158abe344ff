// Package rules contains the individual lint rules. Every rule is a
// stateless predicate over a parsed document (or raw source lines) that
// emits zero or more findings. Rules never fail on well-formed but unusual
// documents; absence of a pattern is not an error.
package rules

import (
	"strings"

	"github.com/xamlint/xamlint/pkg/models"
	"github.com/xamlint/xamlint/pkg/xmldoc"
)

// Namespace URIs recognized by the structural rules.
const (
	AvaloniaNamespace = "https://github.com/avaloniaui"
	XAMLNamespace     = "http://schemas.microsoft.com/winfx/2006/xaml"
	WPFNamespace      = "http://schemas.microsoft.com/winfx/2006/xaml/presentation"
)

// Rule is a single named predicate over a parsed document. Implementations
// hold no per-run state and are safe for concurrent use across runs.
type Rule interface {
	Name() string
	Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding
}

// Set is an ordered collection of rules. Order affects only report
// readability; rules never depend on each other's outcomes.
type Set []Rule

// ValidationSet returns the structural and correctness rules applied by the
// validate operation, in their fixed evaluation order.
func ValidationSet() Set {
	return Set{
		rootNamespaceRule{},
		xamlNamespaceRule{},
		styleSelectorRule{},
		duplicateKeyRule{},
		duplicateNameRule{},
		bindingTypeHintRule{},
		deprecatedControlRule{},
		gridDefinitionsRule{},
		eventHandlerRule{},
		emptyResourcesRule{},
	}
}

// PerformanceSet returns the rules applied by the performance analysis
// operation when the input is markup.
func PerformanceSet() Set {
	return Set{
		nestingDepthRule{},
		virtualizationRule{},
		inlineStyleRule{},
		panelChildrenRule{},
		compiledBindingsRule{},
		imageDecodeRule{},
		resourceSizeRule{},
		elementCountRule{},
	}
}

// hasBindingValue reports whether an attribute value is a runtime binding
// expression. Compiled bindings are deliberately excluded.
func hasBindingValue(v string) bool {
	return strings.Contains(v, "{Binding") || strings.Contains(v, "{ReflectionBinding")
}

// isResourcesContainer matches <Window.Resources>-style property elements
// and standalone ResourceDictionary elements.
func isResourcesContainer(e *xmldoc.Element) bool {
	return strings.HasSuffix(e.Name(), ".Resources") || e.Name() == "ResourceDictionary"
}

// isPropertyElement matches property-element syntax such as <Grid.RowDefinitions>.
func isPropertyElement(e *xmldoc.Element) bool {
	return strings.Contains(e.Name(), ".")
}

// usesXAMLDirectives reports whether the element relies on the x: prefix.
func usesXAMLDirectives(e *xmldoc.Element) bool {
	if e.Prefix() == "x" {
		return true
	}
	for _, a := range e.Attrs() {
		if strings.HasPrefix(a.Name, "x:") {
			return true
		}
	}
	return false
}

// compileBindingsEnabled reports whether the root opts into compiled bindings.
func compileBindingsEnabled(doc *xmldoc.Document) bool {
	v, ok := doc.Root().Attr("x:CompileBindings")
	return ok && strings.EqualFold(v, "true")
}
