// Package xmldoc parses markup text into an immutable, navigable element
// tree for rule evaluation. Parse failures are reported as values rather
// than errors so callers cannot skip the failure path.
package xmldoc

import (
	"strings"

	"github.com/beevik/etree"
)

// ParseError describes why a document could not be parsed. A parse failure
// is terminal for a run; no rule may execute against a failed parse.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// Attr is a single attribute with its full (possibly prefixed) name.
type Attr struct {
	Name  string
	Value string
}

// Element is one node in the parsed tree. Immutable once parsed.
type Element struct {
	el     *etree.Element
	parent *Element
	depth  int
}

// Document is the parsed tree representation of the input. It is owned by a
// single run and discarded when the run completes.
type Document struct {
	root       *Element
	elements   []*Element
	namespaces map[string]string
}

// Parse parses raw markup into a Document. On malformed input it returns a
// ParseError carrying the underlying syntax message.
func Parse(raw string) (*Document, *ParseError) {
	if strings.TrimSpace(raw) == "" {
		return nil, &ParseError{Message: "document is empty"}
	}

	tree := etree.NewDocument()
	if err := tree.ReadFromString(raw); err != nil {
		return nil, &ParseError{Message: err.Error()}
	}

	rootEl := tree.Root()
	if rootEl == nil {
		return nil, &ParseError{Message: "document has no root element"}
	}

	doc := &Document{namespaces: make(map[string]string)}
	for _, a := range rootEl.Attr {
		if a.Space == "" && a.Key == "xmlns" {
			doc.namespaces[""] = a.Value
		} else if a.Space == "xmlns" {
			doc.namespaces[a.Key] = a.Value
		}
	}

	doc.root = &Element{el: rootEl, depth: 0}
	doc.collect(doc.root)
	return doc, nil
}

// collect builds the depth-first element list.
func (d *Document) collect(e *Element) {
	d.elements = append(d.elements, e)
	for _, child := range e.el.ChildElements() {
		d.collect(&Element{el: child, parent: e, depth: e.depth + 1})
	}
}

// Root returns the root element.
func (d *Document) Root() *Element {
	return d.root
}

// Elements returns all elements in depth-first document order, root first.
func (d *Document) Elements() []*Element {
	return d.elements
}

// ElementsNamed returns all elements whose local name matches name.
func (d *Document) ElementsNamed(name string) []*Element {
	var out []*Element
	for _, e := range d.elements {
		if e.Name() == name {
			out = append(out, e)
		}
	}
	return out
}

// DefaultNamespace returns the default namespace declared on the root, or
// the empty string if none is declared.
func (d *Document) DefaultNamespace() string {
	return d.namespaces[""]
}

// Namespace looks up a namespace declared on the root by prefix.
func (d *Document) Namespace(prefix string) (string, bool) {
	ns, ok := d.namespaces[prefix]
	return ns, ok
}

// Name returns the element's local name without any namespace prefix.
func (e *Element) Name() string {
	return e.el.Tag
}

// Prefix returns the element's namespace prefix, if any.
func (e *Element) Prefix() string {
	return e.el.Space
}

// FullName returns the element name as written, including its prefix.
func (e *Element) FullName() string {
	if e.el.Space == "" {
		return e.el.Tag
	}
	return e.el.Space + ":" + e.el.Tag
}

// Depth returns the nesting depth of the element; the root has depth 0.
func (e *Element) Depth() int {
	return e.depth
}

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Attr looks up an attribute by its full name. Prefixed names such as
// "x:Key" match on both prefix and local part.
func (e *Element) Attr(name string) (string, bool) {
	space, key := splitName(name)
	for _, a := range e.el.Attr {
		if a.Space == space && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// Attrs returns all attributes in declaration order with full names.
func (e *Element) Attrs() []Attr {
	out := make([]Attr, 0, len(e.el.Attr))
	for _, a := range e.el.Attr {
		name := a.Key
		if a.Space != "" {
			name = a.Space + ":" + a.Key
		}
		out = append(out, Attr{Name: name, Value: a.Value})
	}
	return out
}

// Children returns the element's direct child elements.
func (e *Element) Children() []*Element {
	children := e.el.ChildElements()
	out := make([]*Element, 0, len(children))
	for _, c := range children {
		out = append(out, &Element{el: c, parent: e, depth: e.depth + 1})
	}
	return out
}

// Descendants returns every element beneath this one in depth-first order,
// not including the element itself.
func (e *Element) Descendants() []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(cur *Element) {
		for _, c := range cur.Children() {
			out = append(out, c)
			walk(c)
		}
	}
	walk(e)
	return out
}

// Text returns the element's character data with surrounding space trimmed.
func (e *Element) Text() string {
	return strings.TrimSpace(e.el.Text())
}

func splitName(name string) (space, key string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
