package html

import (
	stdhtml "html"
	"strings"
	"testing"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{`Empty`, ``, ``},
		{`Plain`, `hello`, `hello`},
		{`Angle`, `<b>`, `&lt;b&gt;`},
		{`Amp`, `fish & chips`, `fish &amp; chips`},
		{`AlreadyEscaped`, `&amp;`, `&amp;amp;`},
		{`Quote`, `"untouched"`, `"untouched"`},
		{`Control`, "a\x00b\nc", "a\x00b\nc"},
		{`Unicode`, `café <&> 日本`, `café &lt;&amp;&gt; 日本`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeText(tt.in); got != tt.out {
				t.Errorf(`EscapeText(%q) = %q, want %q`, tt.in, got, tt.out)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{`Empty`, ``, ``},
		{`Quote`, `say "hi"`, `say &quot;hi&quot;`},
		{`Amp`, `&`, `&amp;`},
		{`Angle`, `<`, `&lt;`},
		{`GtUntouched`, `>`, `>`},
		{`Mixed`, `"<&>"`, `&quot;&lt;&amp;>&quot;`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeAttr(tt.in); got != tt.out {
				t.Errorf(`EscapeAttr(%q) = %q, want %q`, tt.in, got, tt.out)
			}
		})
	}
}

// Escaping is total and round trips: no literal markup survives, and a standard entity decoder
// recovers the input byte for byte.
func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		``,
		`&&&&`,
		`&amp;&lt;&gt;`,
		`<<<<>>>>`,
		strings.Repeat(`<&">`, 100),
		"\x00\x01\x02",
		`plain old text`,
	}
	for _, in := range inputs {
		text := EscapeText(in)
		if strings.ContainsAny(text, `<>`) {
			t.Errorf(`EscapeText(%q) left a literal angle bracket: %q`, in, text)
		}
		if got := stdhtml.UnescapeString(text); got != in {
			t.Errorf(`text round trip of %q produced %q`, in, got)
		}
		attr := EscapeAttr(in)
		if strings.ContainsAny(attr, `"<`) {
			t.Errorf(`EscapeAttr(%q) left a quote or angle bracket: %q`, in, attr)
		}
		if got := stdhtml.UnescapeString(attr); got != in {
			t.Errorf(`attr round trip of %q produced %q`, in, got)
		}
	}
}
