package pretty

import (
	"strings"
	"testing"

	html "github.com/kestrel-web/html-go"
)

func TestPlainOutput(t *testing.T) {
	var b strings.Builder
	err := New(Color(false)).Fprint(&b,
		html.Div(html.Attrs(html.Class(`card`), html.Hidden(false)),
			html.H1(nil, html.Text(`Hi & Bye`)),
			html.Input(html.Name(`q`), html.Required(true)),
		),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		`<div class="card">`,
		`  <h1>Hi &amp; Bye</h1>`,
		`  <input name="q" required>`,
		`</div>`,
		``,
	}, "\n")
	if got := b.String(); got != want {
		t.Errorf("printed:\n%s\nwant:\n%s", got, want)
	}
}

func TestColorOutput(t *testing.T) {
	var b strings.Builder
	err := New(Color(true)).Fprint(&b, html.P(nil, html.Text(`x`)))
	if err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf(`forced color output %q carries no escape sequences`, out)
	}
	// Color must never reach the content itself, only the markup around it.
	if !strings.Contains(out, `x`) {
		t.Errorf(`content missing from %q`, out)
	}
}

func TestNotATerminalStaysPlain(t *testing.T) {
	var b strings.Builder
	if err := Fprint(&b, html.Comment(`note`)); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "<!--note-->\n" {
		t.Errorf(`printed %q`, got)
	}
}

func TestIndentOption(t *testing.T) {
	var b strings.Builder
	err := New(Color(false), Indent("\t")).Fprint(&b, html.Ul(nil, html.Li(nil, html.Text(`a`))))
	if err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "<ul>\n\t<li>a</li>\n</ul>\n" {
		t.Errorf(`printed %q`, got)
	}
}
