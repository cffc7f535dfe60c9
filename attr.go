package html

import "fmt"

// An Attr is a single attribute on an element.  It is one of three things: a name/value pair, a
// bare boolean attribute, or the null attribute, which renders nothing at all.  Attribute names
// always come from the fixed catalog in attributes.go (or a fixed extension vocabulary such as
// htmx); only values may carry user input, and values are escaped when rendered.
type Attr struct {
	name  string
	value string
	kind  attrKind
}

type attrKind uint8

const (
	attrNull attrKind = iota
	attrPair
	attrFlag
)

// NullAttr is the attribute that is not there.  It renders nothing, which lets a call site
// conditionally swap a real attribute in or out without changing the shape of the surrounding
// list:
//
//	html.Input(html.Type(`text`), maybeAutofocus())
//
// where maybeAutofocus returns either html.Autofocus(true) or html.NullAttr.
var NullAttr Attr

// AppendAttr appends the attribute's rendering, including its leading space.  A pair renders as
// ` name="escaped value"`, a present boolean as ` name`, and the null attribute as nothing, so
// omitted attributes leave no whitespace artifacts behind.
func (a Attr) AppendAttr(buf []byte) []byte {
	switch a.kind {
	case attrPair:
		buf = append(buf, ' ')
		buf = append(buf, a.name...)
		buf = append(buf, '=', '"')
		buf = appendAttrText(buf, a.value)
		buf = append(buf, '"')
	case attrFlag:
		buf = append(buf, ' ')
		buf = append(buf, a.name...)
	}
	return buf
}

// Name reports the attribute's name, or "" for the null attribute.
func (a Attr) Name() string { return a.name }

// Value reports the attribute's unescaped value.  Boolean and null attributes have none.
func (a Attr) Value() string { return a.value }

// Null reports whether the attribute is the null attribute.
func (a Attr) Null() bool { return a.kind == attrNull }

// Boolean reports whether the attribute renders as a bare name.
func (a Attr) Boolean() bool { return a.kind == attrFlag }

// Attrs is sugar for an attribute list, mirroring the children parameter of the element
// catalog:
//
//	html.Div(html.Attrs(html.ID(`menu`), html.Class(`open`)), items...)
func Attrs(list ...Attr) []Attr { return list }

// Attribute constructs a name/value attribute outside the fixed catalog.  This exists for fixed
// extension vocabularies, like the htmx package in this module.  The name must be a static
// identifier known to the caller, never user input; only the value is escaped at render time.
// The value is formatted printf style, eagerly; without arguments it is used verbatim.
func Attribute(name, format string, args ...any) Attr {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	return Attr{name: name, value: format, kind: attrPair}
}

// Flag constructs a boolean attribute outside the fixed catalog, present when the condition
// holds and the null attribute otherwise.  The same naming rules as Attribute apply.
func Flag(name string, when bool) Attr {
	if !when {
		return NullAttr
	}
	return Attr{name: name, kind: attrFlag}
}

// attr backs the free text attribute catalog.
func attr(name, format string, args []any) Attr {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	return Attr{name: name, value: format, kind: attrPair}
}

// pair backs the enumerated attribute catalog, whose values are already fixed strings.
func pair(name, value string) Attr {
	return Attr{name: name, value: value, kind: attrPair}
}

// flag backs the boolean attribute catalog.
func flag(name string, when bool) Attr {
	if !when {
		return NullAttr
	}
	return Attr{name: name, kind: attrFlag}
}
