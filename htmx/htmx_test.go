package htmx

import (
	"net/http/httptest"
	"testing"

	html "github.com/kestrel-web/html-go"
)

func TestAttrs(t *testing.T) {
	tests := []struct {
		name string
		node html.Node
		out  string
	}{
		{
			name: `Get`,
			node: html.Button(html.Attrs(Get(`/items/%d`, 3), Target(`#list`)), html.Text(`More`)),
			out:  `<button hx-get="/items/3" hx-target="#list">More</button>`,
		},
		{
			name: `PostWithSwap`,
			node: html.Form(html.Attrs(Post(`/todo`), Swap(`outerHTML`))),
			out:  `<form hx-post="/todo" hx-swap="outerHTML"></form>`,
		},
		{
			name: `BoostOn`,
			node: html.A(html.Attrs(html.Href(`/about`), Boost(true)), html.Text(`About`)),
			out:  `<a href="/about" hx-boost="true">About</a>`,
		},
		{
			name: `TriggerEscapes`,
			node: html.Div(html.Attrs(Trigger(`keyup changed delay:500ms`), Vals(`{"q":"a&b"}`))),
			out:  `<div hx-trigger="keyup changed delay:500ms" hx-vals="{&quot;q&quot;:&quot;a&amp;b&quot;}"></div>`,
		},
		{
			name: `On`,
			node: html.Button(html.Attrs(On(`click`, `this.disabled = true`))),
			out:  `<button hx-on:click="this.disabled = true"></button>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := html.String(tt.node)
			t.Log(`generated:`, got)
			if got != tt.out {
				t.Error(` expected:`, tt.out)
			}
		})
	}
}

func TestIsRequest(t *testing.T) {
	r := httptest.NewRequest(`GET`, `/`, nil)
	if IsRequest(r) {
		t.Error(`a plain request was mistaken for an htmx request`)
	}
	r.Header.Set(`HX-Request`, `true`)
	if !IsRequest(r) {
		t.Error(`an htmx request was not recognized`)
	}
}

func TestRender(t *testing.T) {
	list := NewPart(`list`, html.Ul(html.Attrs(html.ID(`list`)), html.Li(nil, html.Text(`one`))))
	count := NewPart(`count`, html.Span(html.Attrs(html.ID(`count`)), html.Text(`1`)))

	r := httptest.NewRequest(`GET`, `/`, nil)
	r.Header.Set(`HX-Target`, `count`)
	if got, want := html.String(Render(r, list, count)), html.String(count); got != want {
		t.Errorf(`rendered %q, want %q`, got, want)
	}

	r.Header.Set(`HX-Target`, `missing`)
	if got := html.String(Render(r, list, count)); got != `` {
		t.Errorf(`rendered %q for an unknown target`, got)
	}
}

func TestRenderPage(t *testing.T) {
	list := NewPart(`list`, html.Ul(html.Attrs(html.ID(`list`))))
	page := func(parts PartMap) html.Node {
		return html.Div(html.Attrs(html.ID(`page`)), parts[`list`])
	}

	r := httptest.NewRequest(`GET`, `/`, nil)
	if got := html.String(RenderPage(r, page, list)); got != `<div id="page"><ul id="list"></ul></div>` {
		t.Errorf(`full page render produced %q`, got)
	}

	r.Header.Set(`HX-Target`, `list`)
	if got := html.String(RenderPage(r, page, list)); got != `<ul id="list"></ul>` {
		t.Errorf(`partial render produced %q`, got)
	}
}
