package html

// An Element is a named tag with an ordered attribute list and, unless the element is void, an
// ordered child list.  Its fields are unexported on purpose: the only way to obtain one is
// through the element catalog, which is what keeps void elements childless -- the void
// constructors simply have no children parameter, so there is no code path that produces a void
// element with content.
type Element struct {
	tag   string
	void  bool
	attrs []Attr
	kids  []Node
}

// AppendHTML implements Node by serializing the element: the open tag with its attributes in
// construction order, then (for non-void elements) each child in order and the close tag.  Void
// elements close with a bare ">" and never emit a closing tag.
func (e *Element) AppendHTML(buf []byte) []byte {
	buf = appendPreamble(buf, e.tag, e.attrs)
	buf = append(buf, '>')
	if e.void {
		return buf
	}
	for _, kid := range e.kids {
		buf = kid.AppendHTML(buf)
	}
	buf = append(buf, '<', '/')
	buf = append(buf, e.tag...)
	return append(buf, '>')
}

// TagName reports the element's tag name, for inspection tools.
func (e *Element) TagName() string { return e.tag }

// Void reports whether the element is a void element (no children, no closing tag).
func (e *Element) Void() bool { return e.void }

// Attributes returns the element's attribute list in construction order.  The slice is the
// element's own; treat it as read only.
func (e *Element) Attributes() []Attr { return e.attrs }

// Children returns the element's child list in construction order.  The slice is the element's
// own; treat it as read only.  Void elements always return nil.
func (e *Element) Children() []Node { return e.kids }

// appendPreamble appends the beginning of a tag and its attributes, but stops shy of completing
// the tag with a ">", since it does not know how the tag is closed.
func appendPreamble(buf []byte, name string, attrs []Attr) []byte {
	buf = append(buf, '<')
	buf = append(buf, name...)
	for _, attr := range attrs {
		buf = attr.AppendAttr(buf)
	}
	return buf
}

// newElement backs the normal element constructors.
func newElement(tag string, attrs []Attr, kids []Node) *Element {
	return &Element{tag: tag, attrs: attrs, kids: kids}
}

// newVoid backs the void element constructors.
func newVoid(tag string, attrs []Attr) *Element {
	return &Element{tag: tag, void: true, attrs: attrs}
}
