package html

import (
	stdhtml "html"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	test(t, `EmptyDiv`, `<div></div>`, func() Node {
		return Div(nil)
	})
	test(t, `EscapedText`, `<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>`, func() Node {
		return P(nil, Textf(`%s`, `<script>alert(1)</script>`))
	})
	test(t, `EscapedAttr`, `<div title="&quot;quoted&quot;"></div>`, func() Node {
		return Div(Attrs(TitleAttr(`"quoted"`)))
	})
	test(t, `VoidInput`, `<input name="e" id="e">`, func() Node {
		return Input(Name(`e`), ID(`e`))
	})
	test(t, `Fragment`, `<p>Hello</p><p>World</p>`, func() Node {
		return Fragment(P(nil, Text(`Hello`)), P(nil, Text(`World`)))
	})
	test(t, `AbsentBoolean`, `<input type="text" name="q">`, func() Node {
		return Input(Type(`text`), Disabled(false), Name(`q`))
	})
	test(t, `PresentBoolean`, `<input type="checkbox" checked>`, func() Node {
		return Input(Type(`checkbox`), Checked(true))
	})
	test(t, `NullAttr`, `<a href="/x">x</a>`, func() Node {
		return A(Attrs(Href(`/x`), NullAttr), Text(`x`))
	})
	test(t, `AttrOrder`, `<img src="/a.png" alt="a" width="1" height="2">`, func() Node {
		return Img(Src(`/a.png`), Alt(`a`), Width(`1`), Height(`2`))
	})
	test(t, `Nested`, `<ul class="menu"><li>one</li><li>two</li></ul>`, func() Node {
		return Ul(Attrs(Class(`menu`)), Li(nil, Text(`one`)), Li(nil, Text(`two`)))
	})
	test(t, `Doctype`, `<!DOCTYPE html>`, func() Node {
		return HTML5
	})
	test(t, `Comment`, `<!--hello-->`, func() Node {
		return Comment(`hello`)
	})
	test(t, `CommentNeutralized`, `<!--a--&gt;b-->`, func() Node {
		return Comment(`a-->b`)
	})
	test(t, `Raw`, `<b>&amp;</b>`, func() Node {
		return Raw(`<b>&amp;</b>`)
	})
	test(t, `Script`, `<script src="/app.js">let a = 1 < 2;</script>`, func() Node {
		return Script{Attrs: Attrs(Src(`/app.js`)), Content: `let a = 1 < 2;`}
	})
	test(t, `Style`, `<style>p > a { color: red }</style>`, func() Node {
		return Style{Content: `p > a { color: red }`}
	})
	test(t, `Method`, `<form method="post" action="/login"></form>`, func() Node {
		return Form(Attrs(Method(POST), Action(`/login`)))
	})
	test(t, `MethodZero`, `<form method="get"></form>`, func() Node {
		return Form(Attrs(Method(FormMethod{})))
	})
	test(t, `Textf`, `<p>2 + 2 = 4</p>`, func() Node {
		return P(nil, Textf(`%d + %d = %d`, 2, 2, 4))
	})
	test(t, `TextfVerbatim`, `<p>100%</p>`, func() Node {
		return P(nil, Textf(`100%`))
	})
	test(t, `DataAttr`, `<div data-count="3"></div>`, func() Node {
		return Div(Attrs(Data(`count`, `%d`, 3)))
	})
	test(t, `AriaAttr`, `<button aria-label="Close"></button>`, func() Node {
		return Button(Attrs(Aria(`label`, `Close`)))
	})
}

func test(t *testing.T, name string, expect string, do func() Node) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		got := string(do().AppendHTML(nil))
		t.Log(`generated:`, got)
		if got != expect {
			t.Error(` expected:`, expect)
		}
	})
}

func TestFragmentFlattens(t *testing.T) {
	a := P(Attrs(ID(`a`)), Text(`A`))
	b := Div(nil, Text(`B`))
	joined := String(Fragment(a, b))
	concat := String(a) + String(b)
	if joined != concat {
		t.Errorf(`fragment output %q is not the concatenation %q`, joined, concat)
	}
	if strings.Contains(joined, `fragment`) {
		t.Errorf(`fragment leaked a wrapper into %q`, joined)
	}
}

func TestDeterminism(t *testing.T) {
	tree := Div(Attrs(Class(`card`)), H1(nil, Text(`Title & More`)), Input(Name(`q`), Required(true)))
	first := String(tree)
	for i := 0; i < 3; i++ {
		if got := String(tree); got != first {
			t.Fatalf(`render %d produced %q, first produced %q`, i, got, first)
		}
	}
}

func TestStatic(t *testing.T) {
	live := Ul(nil, Li(nil, Text(`one`)), Li(nil, Text(`two`)))
	frozen := Static(live)
	if got, want := String(frozen), String(live); got != want {
		t.Errorf(`static content %q differs from live content %q`, got, want)
	}
}

func TestVoidHasNoClosingTag(t *testing.T) {
	for _, do := range []func(...Attr) Node{Area, Base, Br, Col, Embed, Hr, Img, Input, Link, Meta, Param, Source, Track, Wbr} {
		node := do()
		out := String(node)
		if strings.Contains(out, `</`) {
			t.Errorf(`void element rendered a closing tag: %q`, out)
		}
		e := node.(*Element)
		if !e.Void() {
			t.Errorf(`%s is not marked void`, e.TagName())
		}
		if e.Children() != nil {
			t.Errorf(`%s has children`, e.TagName())
		}
	}
}

func TestScriptTerminatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error(`embedding </script> did not panic`)
		}
	}()
	_ = String(Script{Content: `document.write("</script>")`})
}

func TestAttrRoundTrip(t *testing.T) {
	// Embedding a hostile string as an attribute value and decoding the quoted fragment with a
	// standard entity decoder must yield the original string.
	inputs := []string{
		``,
		`plain`,
		`"quoted"`,
		`<script>&amp;</script>`,
		`a&b&&c`,
		"tabs\tand\x00nulls",
		`日本語 & more`,
	}
	for _, in := range inputs {
		out := String(Div(Attrs(TitleAttr(`%s`, in))))
		out = strings.TrimPrefix(out, `<div title="`)
		out = strings.TrimSuffix(out, `"></div>`)
		if strings.ContainsAny(out, `"<`) {
			t.Errorf(`escaped value %q still contains quote or angle bracket`, out)
		}
		if got := stdhtml.UnescapeString(out); got != in {
			t.Errorf(`round trip of %q produced %q`, in, got)
		}
	}
}
