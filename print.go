package html

import (
	"fmt"
	"strings"
)

// The pretty printer renders a tree with indentation and newlines for inspection and golden
// file diffing.  It applies exactly the same escaping as AppendHTML -- only the whitespace
// framing differs -- so it is safe to eyeball untrusted content with it, but the inserted
// whitespace makes it unsuitable for production serialization of whitespace sensitive markup.

// PrettyString renders the provided nodes indented with two spaces, one element per line.
func PrettyString(nodes ...Node) string {
	return string(AppendPretty(nil, `  `, nodes...))
}

// AppendPretty appends an indented rendering of the provided nodes, using the given string for
// each level of indentation.  Every line ends with a newline, including the last.
func AppendPretty(buf []byte, indent string, nodes ...Node) []byte {
	for _, node := range nodes {
		buf = appendPretty(buf, node, indent, 0)
	}
	return buf
}

func appendPretty(buf []byte, node Node, indent string, depth int) []byte {
	switch n := node.(type) {
	case Group:
		for _, kid := range n {
			buf = appendPretty(buf, kid, indent, depth)
		}
		return buf
	case *Element:
		return appendPrettyElement(buf, n, indent, depth)
	case Script:
		return appendPrettyRawText(buf, `script`, n.Attrs, n.Content, `</script>`, indent, depth)
	case Style:
		return appendPrettyRawText(buf, `style`, n.Attrs, n.Content, `</style>`, indent, depth)
	default:
		// Text, HTML, Comment, Doctype, static content and anything user defined renders on a
		// line of its own, exactly as the renderer would emit it.
		buf = appendIndent(buf, indent, depth)
		buf = node.AppendHTML(buf)
		return append(buf, '\n')
	}
}

func appendPrettyElement(buf []byte, e *Element, indent string, depth int) []byte {
	buf = appendIndent(buf, indent, depth)
	buf = appendPreamble(buf, e.tag, e.attrs)
	buf = append(buf, '>')
	if e.void {
		return append(buf, '\n')
	}
	if inline, ok := inlineContent(e.kids); ok {
		buf = Append(buf, inline...)
		buf = append(buf, '<', '/')
		buf = append(buf, e.tag...)
		return append(buf, '>', '\n')
	}
	buf = append(buf, '\n')
	for _, kid := range e.kids {
		buf = appendPretty(buf, kid, indent, depth+1)
	}
	buf = appendIndent(buf, indent, depth)
	buf = append(buf, '<', '/')
	buf = append(buf, e.tag...)
	return append(buf, '>', '\n')
}

func appendPrettyRawText(buf []byte, tag string, attrs []Attr, content, end string, indent string, depth int) []byte {
	buf = appendIndent(buf, indent, depth)
	buf = appendPreamble(buf, tag, attrs)
	buf = append(buf, '>')
	if content == `` {
		buf = append(buf, end...)
		return append(buf, '\n')
	}
	buf = append(buf, '\n')
	// Raw text keeps its own layout; only the tags are framed.  The terminator check matches
	// the renderer's.
	if strings.Contains(content, end) {
		panic(fmt.Errorf(`content contains %q`, end))
	}
	buf = append(buf, content...)
	if content[len(content)-1] != '\n' {
		buf = append(buf, '\n')
	}
	buf = appendIndent(buf, indent, depth)
	buf = append(buf, end...)
	return append(buf, '\n')
}

// inlineContent reports whether an element's children are all character level nodes, in which
// case the element prints on a single line.
func inlineContent(kids []Node) ([]Node, bool) {
	if len(kids) == 0 {
		return nil, true
	}
	for _, kid := range kids {
		switch kid.(type) {
		case Text, HTML:
		default:
			return nil, false
		}
	}
	return kids, true
}

func appendIndent(buf []byte, indent string, depth int) []byte {
	for i := 0; i < depth; i++ {
		buf = append(buf, indent...)
	}
	return buf
}
