// Package pretty prints HTML trees for terminal inspection: indented like the core pretty
// printer, with ANSI colors for tags, attributes and comments.  Color is enabled automatically
// when the destination is a terminal and can be forced either way.  Escaping is delegated to
// the html package, so what you see is what the renderer would emit, plus whitespace and color.
package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	html "github.com/kestrel-web/html-go"
)

// Print writes a colorized rendering of the nodes to standard output.
func Print(nodes ...html.Node) error {
	return New().Fprint(os.Stdout, nodes...)
}

// Fprint writes a colorized rendering of the nodes to w using the default printer.
func Fprint(w io.Writer, nodes ...html.Node) error {
	return New().Fprint(w, nodes...)
}

// New constructs a printer and applies the provided options.
func New(options ...Option) *Printer {
	p := &Printer{indent: `  `}
	for _, option := range options {
		option(p)
	}
	return p
}

// Indent overrides the string used for each level of indentation.
func Indent(indent string) Option { return func(p *Printer) { p.indent = indent } }

// Color forces color on or off, overriding terminal detection.
func Color(on bool) Option {
	return func(p *Printer) {
		p.forced = true
		p.color = on
	}
}

// An Option affects the configuration of a new Printer.
type Option func(*Printer)

// A Printer writes indented, optionally colorized HTML.  A Printer is stateless between calls
// and safe for concurrent use.
type Printer struct {
	indent string
	color  bool
	forced bool
}

type palette struct {
	tag     func(...any) string
	name    func(...any) string
	value   func(...any) string
	comment func(...any) string
}

var plainPalette = palette{tag: fmt.Sprint, name: fmt.Sprint, value: fmt.Sprint, comment: fmt.Sprint}

// newColorPalette builds a palette with color explicitly enabled, since the global color
// detection in fatih/color would otherwise strip it when the destination is not a terminal --
// by the time this is called, Fprint has already decided.
func newColorPalette() palette {
	enabled := func(c *color.Color) func(...any) string {
		c.EnableColor()
		return c.SprintFunc()
	}
	return palette{
		tag:     enabled(color.New(color.FgBlue, color.Bold)),
		name:    enabled(color.New(color.FgCyan)),
		value:   enabled(color.New(color.FgGreen)),
		comment: enabled(color.New(color.FgHiBlack)),
	}
}

// Fprint writes an indented rendering of the nodes to w.  Color applies when forced on, or when
// w is a terminal and color was not forced off.
func (p *Printer) Fprint(w io.Writer, nodes ...html.Node) error {
	pal := plainPalette
	if p.colorFor(w) {
		pal = newColorPalette()
	}
	var b strings.Builder
	for _, node := range nodes {
		p.print(&b, node, pal, 0)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (p *Printer) colorFor(w io.Writer) bool {
	if p.forced {
		return p.color
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func (p *Printer) print(b *strings.Builder, node html.Node, pal palette, depth int) {
	switch n := node.(type) {
	case html.Group:
		for _, kid := range n {
			p.print(b, kid, pal, depth)
		}
	case *html.Element:
		p.printElement(b, n, pal, depth)
	case html.Text:
		p.printIndent(b, depth)
		b.WriteString(html.EscapeText(string(n)))
		b.WriteByte('\n')
	case html.Comment:
		p.printIndent(b, depth)
		b.WriteString(pal.comment(string(html.Append(nil, n))))
		b.WriteByte('\n')
	case html.Doctype:
		p.printIndent(b, depth)
		b.WriteString(pal.tag(string(html.Append(nil, n))))
		b.WriteByte('\n')
	case html.Script:
		p.printRawText(b, `script`, n.Attrs, n.Content, pal, depth)
	case html.Style:
		p.printRawText(b, `style`, n.Attrs, n.Content, pal, depth)
	default:
		// Raw HTML, static content and user defined nodes print as rendered.
		p.printIndent(b, depth)
		b.Write(html.Append(nil, node))
		b.WriteByte('\n')
	}
}

func (p *Printer) printElement(b *strings.Builder, e *html.Element, pal palette, depth int) {
	p.printIndent(b, depth)
	p.printOpenTag(b, e.TagName(), e.Attributes(), pal)
	if e.Void() {
		b.WriteByte('\n')
		return
	}
	kids := e.Children()
	if text, ok := inlineText(kids); ok {
		b.WriteString(text)
		p.printCloseTag(b, e.TagName(), pal)
		b.WriteByte('\n')
		return
	}
	b.WriteByte('\n')
	for _, kid := range kids {
		p.print(b, kid, pal, depth+1)
	}
	p.printIndent(b, depth)
	p.printCloseTag(b, e.TagName(), pal)
	b.WriteByte('\n')
}

func (p *Printer) printRawText(b *strings.Builder, tag string, attrs []html.Attr, content string, pal palette, depth int) {
	p.printIndent(b, depth)
	p.printOpenTag(b, tag, attrs, pal)
	if content != `` {
		b.WriteByte('\n')
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteByte('\n')
		}
		p.printIndent(b, depth)
	}
	p.printCloseTag(b, tag, pal)
	b.WriteByte('\n')
}

func (p *Printer) printOpenTag(b *strings.Builder, tag string, attrs []html.Attr, pal palette) {
	b.WriteByte('<')
	b.WriteString(pal.tag(tag))
	for _, attr := range attrs {
		if attr.Null() {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(pal.name(attr.Name()))
		if attr.Boolean() {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(pal.value(html.EscapeAttr(attr.Value())))
		b.WriteByte('"')
	}
	b.WriteByte('>')
}

func (p *Printer) printCloseTag(b *strings.Builder, tag string, pal palette) {
	b.WriteString(`</`)
	b.WriteString(pal.tag(tag))
	b.WriteByte('>')
}

func (p *Printer) printIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(p.indent)
	}
}

// inlineText reports whether an element's children are all character level nodes, in which case
// the element prints on a single line.
func inlineText(kids []html.Node) (string, bool) {
	if len(kids) == 0 {
		return ``, true
	}
	var b strings.Builder
	for _, kid := range kids {
		switch n := kid.(type) {
		case html.Text:
			b.WriteString(html.EscapeText(string(n)))
		case html.HTML:
			b.WriteString(string(n))
		default:
			return ``, false
		}
	}
	return b.String(), true
}
