package rules

import (
	"fmt"
	"strings"

	"github.com/xamlint/xamlint/pkg/models"
	"github.com/xamlint/xamlint/pkg/xmldoc"
)

// layoutPanels are containers that contribute to layout nesting depth.
var layoutPanels = map[string]bool{
	"StackPanel":    true,
	"Grid":          true,
	"DockPanel":     true,
	"WrapPanel":     true,
	"Canvas":        true,
	"RelativePanel": true,
	"Border":        true,
	"ScrollViewer":  true,
}

// itemsControls are list-like controls that may hold many rows.
var itemsControls = map[string]bool{
	"ListBox":       true,
	"ItemsControl":  true,
	"TreeView":      true,
	"DataGrid":      true,
	"ItemsRepeater": true,
}

// stylingAttrs are per-element presentation attributes that belong in styles
// once they repeat across a document.
var stylingAttrs = []string{
	"Background", "Foreground", "FontSize", "FontWeight", "FontFamily",
	"BorderBrush", "BorderThickness", "CornerRadius",
}

// nestingDepthRule flags layout containers nested beyond the configured
// depth. Every extra layout level costs a measure/arrange pass.
type nestingDepthRule struct{}

func (nestingDepthRule) Name() string { return "layout-nesting" }

func (nestingDepthRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	limit := opts.Thresholds.MaxNestingDepth
	var findings []models.Finding
	for _, e := range doc.Elements() {
		if !layoutPanels[e.Name()] || e.Depth() <= limit {
			continue
		}
		findings = append(findings, models.Finding{
			Rule:       "layout-nesting",
			Category:   models.CategoryPerformance,
			Severity:   models.SeverityWarning,
			Message:    fmt.Sprintf("<%s> is nested %d levels deep (threshold %d)", e.Name(), e.Depth(), limit),
			Suggestion: "flatten the layout; Grid with row/column definitions usually replaces several nested panels",
		})
	}
	return findings
}

// virtualizationRule flags bound list controls without a virtualizing items
// panel, and confirms the configuration when every list control has one.
type virtualizationRule struct{}

func (virtualizationRule) Name() string { return "list-virtualization" }

func (virtualizationRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	var findings []models.Finding
	boundControls := 0
	for _, e := range doc.Elements() {
		if !itemsControls[e.Name()] {
			continue
		}
		if !e.HasAttr("ItemsSource") {
			continue
		}
		boundControls++
		if isVirtualized(e) {
			continue
		}
		findings = append(findings, models.Finding{
			Rule:       "list-virtualization",
			Category:   models.CategoryPerformance,
			Severity:   models.SeverityWarning,
			Message:    fmt.Sprintf("<%s> binds ItemsSource without a virtualizing items panel", e.Name()),
			Suggestion: "set an ItemsPanel with VirtualizingStackPanel so offscreen rows are not realized",
		})
	}

	if boundControls > 0 && len(findings) == 0 {
		findings = append(findings, models.Finding{
			Rule:     "list-virtualization",
			Category: models.CategoryPerformance,
			Severity: models.SeverityInfo,
			Message:  "all bound list controls use virtualizing items panels",
		})
	}
	return findings
}

// isVirtualized reports whether a list control configures a virtualizing
// items panel, either inline or through a property element.
func isVirtualized(e *xmldoc.Element) bool {
	if v, ok := e.Attr("ItemsPanel"); ok && strings.Contains(v, "Virtualizing") {
		return true
	}
	for _, d := range e.Descendants() {
		if strings.Contains(d.Name(), "Virtualizing") {
			return true
		}
	}
	return false
}

// inlineStyleRule flags documents where too many elements carry repeated
// inline styling attributes instead of shared styles.
type inlineStyleRule struct{}

func (inlineStyleRule) Name() string { return "inline-styles" }

func (inlineStyleRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	limit := opts.Thresholds.MaxInlineStyled
	styled := 0
	for _, e := range doc.Elements() {
		n := 0
		for _, attr := range stylingAttrs {
			if e.HasAttr(attr) {
				n++
			}
		}
		if n >= 3 {
			styled++
		}
	}
	if styled <= limit {
		return nil
	}
	return []models.Finding{{
		Rule:       "inline-styles",
		Category:   models.CategoryPerformance,
		Severity:   models.SeverityWarning,
		Message:    fmt.Sprintf("%d elements carry three or more inline styling attributes (threshold %d)", styled, limit),
		Suggestion: "move repeated presentation attributes into Styles with selectors",
	}}
}

// panelChildrenRule flags stack-like panels hosting large static child
// lists, which realize every child regardless of visibility.
type panelChildrenRule struct{}

func (panelChildrenRule) Name() string { return "panel-children" }

func (panelChildrenRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	limit := opts.Thresholds.MaxPanelChildren
	var findings []models.Finding
	for _, e := range doc.Elements() {
		if e.Name() != "StackPanel" && e.Name() != "WrapPanel" {
			continue
		}
		n := len(e.Children())
		if n <= limit {
			continue
		}
		findings = append(findings, models.Finding{
			Rule:       "panel-children",
			Category:   models.CategoryPerformance,
			Severity:   models.SeverityWarning,
			Message:    fmt.Sprintf("<%s> hosts %d direct children (threshold %d)", e.Name(), n, limit),
			Suggestion: "replace the static panel with a bound, virtualized ItemsControl",
		})
	}
	return findings
}

// compiledBindingsRule recommends compiled bindings when runtime bindings
// are present, and confirms when they are already enabled.
type compiledBindingsRule struct{}

func (compiledBindingsRule) Name() string { return "compiled-bindings" }

func (compiledBindingsRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	if compileBindingsEnabled(doc) {
		return []models.Finding{{
			Rule:     "compiled-bindings",
			Category: models.CategoryBinding,
			Severity: models.SeverityInfo,
			Message:  "compiled bindings are enabled",
		}}
	}

	for _, e := range doc.Elements() {
		for _, a := range e.Attrs() {
			if hasBindingValue(a.Value) {
				return []models.Finding{{
					Rule:       "compiled-bindings",
					Category:   models.CategoryBinding,
					Severity:   models.SeverityInfo,
					Message:    "document uses runtime bindings without x:CompileBindings",
					Suggestion: "enable x:CompileBindings=\"True\" for compile-time checking and faster binding resolution",
				}}
			}
		}
	}
	return nil
}

// imageDecodeRule flags images that decode at full asset size because no
// display size is given.
type imageDecodeRule struct{}

func (imageDecodeRule) Name() string { return "image-decode" }

func (imageDecodeRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	var findings []models.Finding
	for _, e := range doc.Elements() {
		if e.Name() != "Image" || !e.HasAttr("Source") {
			continue
		}
		if e.HasAttr("Width") || e.HasAttr("Height") || e.HasAttr("MaxWidth") || e.HasAttr("MaxHeight") {
			continue
		}
		findings = append(findings, models.Finding{
			Rule:       "image-decode",
			Category:   models.CategoryPerformance,
			Severity:   models.SeverityInfo,
			Message:    "<Image> has a Source but no size constraint, so the bitmap decodes at full asset size",
			Suggestion: "set Width/Height (or MaxWidth/MaxHeight) so the image decodes at display size",
		})
	}
	return findings
}

// resourceSizeRule flags oversized inline resource sections.
type resourceSizeRule struct{}

func (resourceSizeRule) Name() string { return "resource-size" }

func (resourceSizeRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	limit := opts.Thresholds.MaxResourceEntries
	var findings []models.Finding
	for _, e := range doc.Elements() {
		if !isResourcesContainer(e) {
			continue
		}
		n := len(e.Children())
		if n <= limit {
			continue
		}
		findings = append(findings, models.Finding{
			Rule:       "resource-size",
			Category:   models.CategoryPerformance,
			Severity:   models.SeverityInfo,
			Message:    fmt.Sprintf("<%s> holds %d entries (threshold %d)", e.FullName(), n, limit),
			Suggestion: "split large resource sections into merged ResourceDictionary files",
		})
	}
	return findings
}

// elementCountRule flags documents large enough to be worth splitting.
type elementCountRule struct{}

func (elementCountRule) Name() string { return "element-count" }

func (elementCountRule) Evaluate(doc *xmldoc.Document, opts models.Options) []models.Finding {
	limit := opts.Thresholds.MaxElements
	n := len(doc.Elements())
	if n <= limit {
		return nil
	}
	return []models.Finding{{
		Rule:       "element-count",
		Category:   models.CategoryPerformance,
		Severity:   models.SeverityInfo,
		Message:    fmt.Sprintf("document contains %d elements (threshold %d)", n, limit),
		Suggestion: "extract repeated regions into UserControls to keep documents small",
	}}
}
