// Package html implements a type safe and extremely simple model of HTML content that can be
// used to quickly build HTML programmatically.  Elements and attributes are constructed through
// a fixed catalog of typed functions, so invalid shapes -- children on a void element, an
// unknown attribute name -- are rejected before the program compiles rather than at render
// time.  User supplied text is escaped for its lexical context when the tree is rendered, never
// earlier and never twice.
package html

import (
	"fmt"
	"strings"
)

// ContentType is the content type of rendered HTML, for use by whatever layer turns a node into
// an HTTP response.
const ContentType = `text/html; charset=utf-8`

// A Node is something that can be appended to HTML.
type Node interface {
	AppendHTML(buf []byte) []byte
}

// Append appends the HTML from each of its nodes to the provided buffer.
func Append(buf []byte, nodes ...Node) []byte {
	for _, node := range nodes {
		buf = node.AppendHTML(buf)
	}
	return buf
}

// Bytes renders the provided nodes as a finished HTML payload.  Pair this with ContentType to
// produce an HTTP response.
func Bytes(nodes ...Node) []byte {
	return Append(make([]byte, 0, 1024), nodes...)
}

// String renders the provided nodes as a string.  Rendering is deterministic -- the same tree
// always produces the same string.
func String(nodes ...Node) string {
	return string(Bytes(nodes...))
}

// Static converts the provided HTML nodes into static content, speeding up subsequent addition
// as HTML.
func Static(nodes ...Node) Node {
	return static(Append(make([]byte, 0, 1024), nodes...))
}

type static []byte

func (e static) AppendHTML(buf []byte) []byte { return append(buf, e...) }

// HTML5 is the most frequently used doctype.
var HTML5 = Doctype(`html`)

// Doctype emits a <!DOCTYPE> declaration.
type Doctype string

func (e Doctype) AppendHTML(buf []byte) []byte {
	buf = append(buf, `<!DOCTYPE `...)
	buf = appendText(buf, string(e))
	buf = append(buf, '>')
	return buf
}

// A Group is a transparent sequence of sibling nodes.  It renders each node in order with no
// wrapping syntax of its own, so grouped content is byte identical to the concatenation of its
// parts.
type Group []Node

func (e Group) AppendHTML(buf []byte) []byte { return Append(buf, e...) }

// Fragment groups nodes without introducing a wrapping element.
func Fragment(children ...Node) Group { return Group(children) }

// Text is character data found outside of an HTML tag.  It is escaped when rendered, so it may
// safely carry any user supplied string.
type Text string

// AppendHTML implements Node by appending the text, escaping any characters that could be
// misunderstood as starting a tag or entity by a parser.
func (e Text) AppendHTML(buf []byte) []byte {
	return appendText(buf, string(e))
}

// Textf formats a text node, printf style.  Formatting happens once, here; the renderer never
// reinterprets the result.  Without arguments the format string is used verbatim.
func Textf(format string, args ...any) Text {
	if len(args) > 0 {
		return Text(fmt.Sprintf(format, args...))
	}
	return Text(format)
}

// HTML is content that is emitted verbatim, bypassing escaping.  This is the trust boundary of
// the package: anything converted to HTML is presumed safe, so never construct one from user
// input.  Use Text for that.
type HTML string

func (e HTML) AppendHTML(buf []byte) []byte { return append(buf, e...) }

// Raw marks a trusted, pre-escaped or intentionally unescaped string as HTML.  See the HTML
// type for the trust implications.
func Raw(content string) HTML { return HTML(content) }

// A Comment represents an HTML comment.  HTML5 has no way to escape "-->" inside a comment, so
// any occurrence in the body is neutralized when rendered rather than allowed to terminate the
// comment early.
type Comment string

func (e Comment) AppendHTML(buf []byte) []byte {
	buf = append(buf, `<!--`...)
	body := string(e)
	for {
		ofs := strings.Index(body, `-->`)
		if ofs < 0 {
			break
		}
		buf = append(buf, body[:ofs]...)
		buf = append(buf, `--&gt;`...)
		body = body[ofs+3:]
	}
	buf = append(buf, body...)
	return append(buf, `-->`...)
}

// A Script represents a script tag and its contents.  This must be used instead of the element
// catalog, since HTML5 has special rules about the content of a script (or style) element: the
// content is raw text and cannot be escaped.  Beware embedding "</script>" in the content,
// since there is no way to represent it according to HTML5; this will cause a panic.
type Script struct {
	Attrs   []Attr `json:"attrs"`
	Content string `json:"content"`
}

func (e Script) AppendHTML(buf []byte) []byte {
	buf = appendPreamble(buf, `script`, e.Attrs)
	buf = append(buf, '>')
	return appendRawText(buf, e.Content, `</script>`)
}

// A Style represents a style tag and its contents.  Like Script, its content is raw text under
// HTML5, and embedding "</style>" in the stylesheet will cause a panic.
type Style struct {
	Attrs   []Attr `json:"attrs"`
	Content string `json:"content"`
}

func (e Style) AppendHTML(buf []byte) []byte {
	buf = appendPreamble(buf, `style`, e.Attrs)
	buf = append(buf, '>')
	return appendRawText(buf, e.Content, `</style>`)
}

// appendRawText appends raw text content and then a closing tag.  If the closing tag occurs
// within the content, appendRawText panics because HTML5 provides no mechanism for escaping it.
func appendRawText(buf []byte, content, end string) []byte {
	if strings.Contains(content, end) {
		panic(fmt.Errorf(`content contains %q`, end))
	}
	buf = append(buf, content...)
	return append(buf, end...)
}

// EscapeText encodes a string for the text context between tags, replacing "&", "<" and ">"
// with entities.  It is total: any input, including control characters, yields a result, and
// the input round trips through a standard entity decoder.
func EscapeText(s string) string {
	return string(appendText(make([]byte, 0, len(s)), s))
}

// EscapeAttr encodes a string for a double quoted attribute value, replacing "&", "<" and `"`
// with entities.  Like EscapeText it is total over any input.
func EscapeAttr(s string) string {
	return string(appendAttrText(make([]byte, 0, len(s)), s))
}

// appendText escapes for the text context.  Each byte is classified exactly once in a single
// forward pass; substituted output is never rescanned, so every input is escaped exactly once
// no matter what it already contains.
func appendText(buf []byte, str string) []byte {
	for i := 0; i < len(str); i++ {
		switch c := str[i]; c {
		case '&':
			buf = append(buf, '&', 'a', 'm', 'p', ';')
		case '<':
			buf = append(buf, '&', 'l', 't', ';')
		case '>':
			buf = append(buf, '&', 'g', 't', ';')
		default:
			buf = append(buf, c)
		}
	}
	return buf
}

// appendAttrText escapes for a double quoted attribute value.  "<" is not strictly required
// inside a quoted value but is encoded as defense in depth.
func appendAttrText(buf []byte, str string) []byte {
	for i := 0; i < len(str); i++ {
		switch c := str[i]; c {
		case '&':
			buf = append(buf, '&', 'a', 'm', 'p', ';')
		case '<':
			buf = append(buf, '&', 'l', 't', ';')
		case '"':
			buf = append(buf, '&', 'q', 'u', 'o', 't', ';')
		default:
			buf = append(buf, c)
		}
	}
	return buf
}
