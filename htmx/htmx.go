// Package htmx provides the fixed htmx attribute vocabulary as typed attribute constructors,
// plus helper functions for rendering partial pages in HTMX applications.
//
// The attribute set mirrors the htmx reference.  Like the core catalog, names are fixed at
// compile time and only values carry user input.
package htmx

import (
	"net/http"

	html "github.com/kestrel-web/html-go"
)

// Requests.

// Get issues a GET to the formatted URL when the element is triggered.
func Get(format string, args ...any) html.Attr { return html.Attribute(`hx-get`, format, args...) }

// Post issues a POST to the formatted URL when the element is triggered.
func Post(format string, args ...any) html.Attr { return html.Attribute(`hx-post`, format, args...) }

func Put(format string, args ...any) html.Attr    { return html.Attribute(`hx-put`, format, args...) }
func Patch(format string, args ...any) html.Attr  { return html.Attribute(`hx-patch`, format, args...) }
func Delete(format string, args ...any) html.Attr { return html.Attribute(`hx-delete`, format, args...) }

// Targeting and swapping.

// Target selects the element that receives the response, by CSS selector.
func Target(format string, args ...any) html.Attr {
	return html.Attribute(`hx-target`, format, args...)
}

// Swap controls how the response is swapped in, e.g. "innerHTML" or "outerHTML".
func Swap(format string, args ...any) html.Attr { return html.Attribute(`hx-swap`, format, args...) }

// SwapOOB marks content in a response for an out of band swap.
func SwapOOB(format string, args ...any) html.Attr {
	return html.Attribute(`hx-swap-oob`, format, args...)
}

func Select(format string, args ...any) html.Attr {
	return html.Attribute(`hx-select`, format, args...)
}

// Triggers and payload.

// Trigger overrides the event that triggers the request, e.g. "click" or "keyup delay:500ms".
func Trigger(format string, args ...any) html.Attr {
	return html.Attribute(`hx-trigger`, format, args...)
}

// Vals adds values to the request payload.  The value should be a JSON object literal.
func Vals(format string, args ...any) html.Attr { return html.Attribute(`hx-vals`, format, args...) }

func Include(format string, args ...any) html.Attr {
	return html.Attribute(`hx-include`, format, args...)
}
func Indicator(format string, args ...any) html.Attr {
	return html.Attribute(`hx-indicator`, format, args...)
}
func Confirm(format string, args ...any) html.Attr {
	return html.Attribute(`hx-confirm`, format, args...)
}
func Prompt(format string, args ...any) html.Attr {
	return html.Attribute(`hx-prompt`, format, args...)
}

// On attaches an inline htmx event handler, e.g. On("click", "alert(1)") for hx-on:click.  The
// event name is part of the fixed vocabulary; only the script value is escaped.
func On(event, script string) html.Attr { return html.Attribute(`hx-on:`+event, script) }

// Navigation.

// Boost progressively enhances anchors and forms to use AJAX.
func Boost(on bool) html.Attr { return html.Attribute(`hx-boost`, boolWord(on)) }

// PushURL pushes a URL into the history stack; "true" pushes the request URL.
func PushURL(format string, args ...any) html.Attr {
	return html.Attribute(`hx-push-url`, format, args...)
}

func ReplaceURL(format string, args ...any) html.Attr {
	return html.Attribute(`hx-replace-url`, format, args...)
}

// Ext enables one or more htmx extensions on the element.
func Ext(format string, args ...any) html.Attr { return html.Attribute(`hx-ext`, format, args...) }

// DisabledElt disables the selected elements for the duration of the request.
func DisabledElt(format string, args ...any) html.Attr {
	return html.Attribute(`hx-disabled-elt`, format, args...)
}

func boolWord(b bool) string {
	if b {
		return `true`
	}
	return `false`
}

// IsRequest reports whether the request was issued by htmx rather than a full page navigation.
func IsRequest(r *http.Request) bool { return r.Header.Get(`HX-Request`) == `true` }

// RenderPage renders a full page if the HX-Target header is not present, otherwise, it uses
// Render to render the targeted part of the page.
func RenderPage(r *http.Request, page func(PartMap) html.Node, parts ...Part) html.Node {
	h := r.Header.Get(`HX-Target`)
	if h != `` {
		return render(h, parts...)
	}
	table := make(PartMap, len(parts))
	for _, part := range parts {
		table[part.ID()] = part
	}
	return page(table)
}

// Render parses the HX-Target header and returns the part that matches.  This will return an
// empty html.Group if no parts match.
//
// Parts with an empty ID will not be included in the output.
func Render(r *http.Request, parts ...Part) html.Node {
	target := r.Header.Get(`HX-Target`)
	return render(target, parts...)
}

func render(target string, parts ...Part) html.Node {
	for _, part := range parts {
		if part.ID() == target {
			return part
		}
	}
	return html.Group{}
}

// The Part interface describes a part of a page with an ID that can be requested by an HTMX
// client.  NewPart implements this interface; the content of a part should carry a matching id
// attribute so htmx can target it again.
type Part interface {
	html.Node // Each part is HTML content.

	// ID returns the ID of the part, which can be used as a target in the HX-Target header.
	ID() string
}

// NewPart binds an ID to content, making it addressable through the HX-Target header.
func NewPart(id string, content ...html.Node) Part {
	return part{id, html.Group(content)}
}

type part struct {
	id      string
	content html.Group
}

func (p part) ID() string                   { return p.id }
func (p part) AppendHTML(buf []byte) []byte { return p.content.AppendHTML(buf) }

// PartMap is a map of parts by ID provided to a page function by RenderPage.
type PartMap map[string]Part
