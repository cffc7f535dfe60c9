// Package dataview provides a way to view Go values as tabular HTML if the values can be
// represented as JSON.  The generated markup is built from the typed element catalog, so keys
// and values from untrusted data are escaped like any other text.
package dataview

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/tidwall/gjson"

	html "github.com/kestrel-web/html-go"
)

// Stylesheet will return the structural CSS needed to render the dataview.  The options are
// currently ignored, but are present in case we need to add options like a class prefix in the
// future.
func Stylesheet(options ...Option) string {
	return stylesheet
}

const stylesheet = `
.object, .array, .table { display: grid; width: fit-content; }
.row { display: contents; }
.object { grid-template-columns: minmax(min-content, max-content) 1fr; }
`

// From converts a Go value into HTML, converting it into JSON first and parsing it with GJSON.
func From(data any, options ...Option) html.Node {
	js, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return FromJSON(js, options...)
}

// FromJSON converts a JSON document into HTML, parsing it with GJSON -- the provided JSON MUST
// be valid.
func FromJSON(js []byte, options ...Option) html.Node {
	return FromGJSON(gjson.ParseBytes(js), options...)
}

// FromGJSON converts a GJSON result into HTML.  This is the most efficient way to use dataview
// if you already have a GJSON result.
func FromGJSON(data gjson.Result, options ...Option) html.Node {
	cfg := &config{}
	for _, option := range options {
		option(cfg)
	}
	return cfg.asNode(data, ``)
}

// Hook registers a function that replaces how a value is rendered if the path to the value
// matches the provided pattern.
//
// Patterns are regex patterns that match paths like .persons.0.name or .persons.0.address.city.
// If a hook returns nil, the default rendering is used.
func Hook(rx *regexp.Regexp, hookFn func(path string, data gjson.Result) html.Node) Option {
	return func(cfg *config) {
		cfg.hooks = append(cfg.hooks, hook{rx, hookFn})
	}
}

// TableHook registers a function that converts an array containing at least one object into
// some other GJSON result if the path to the array matches the provided pattern.  TableHooks
// are applied before Hooks and use the same path syntax.
func TableHook(rx *regexp.Regexp, hookFn func(path string, data gjson.Result) gjson.Result) Option {
	return func(cfg *config) {
		cfg.tableHooks = append(cfg.tableHooks, tableHook{rx, hookFn})
	}
}

type Option func(*config)

type config struct {
	hooks      []hook
	tableHooks []tableHook
}

type hook struct {
	rx   *regexp.Regexp
	hook func(path string, data gjson.Result) html.Node
}

type tableHook struct {
	rx   *regexp.Regexp
	hook func(path string, data gjson.Result) gjson.Result
}

func (cfg *config) asNode(data gjson.Result, path string) html.Node {
	if isTabular(data) {
		for _, hook := range cfg.tableHooks {
			if hook.rx.MatchString(path) {
				data = hook.hook(path, data)
				if !isTabular(data) {
					goto notTabular
				}
			}
		}
		for _, hook := range cfg.hooks {
			if hook.rx.MatchString(path) {
				if node := hook.hook(path, data); node != nil {
					return node
				}
			}
		}
		return cfg.tableAsNode(data, path)
	}

notTabular:
	for _, hook := range cfg.hooks {
		if hook.rx.MatchString(path) {
			if node := hook.hook(path, data); node != nil {
				return node
			}
		}
	}
	return cfg.render(data, path)
}

func (cfg *config) render(data gjson.Result, path string) html.Node {
	switch data.Type {
	case gjson.Null:
		return html.Span(html.Attrs(html.Class(`null`)), html.Text(`null`))
	case gjson.False:
		return html.Span(html.Attrs(html.Class(`bool`)), html.Text(`false`))
	case gjson.True:
		return html.Span(html.Attrs(html.Class(`bool`)), html.Text(`true`))
	case gjson.Number:
		if len(data.Raw) > 0 {
			return html.Span(html.Attrs(html.Class(`number`)), html.Textf(`%s`, data.Raw))
		}
		return html.Span(html.Attrs(html.Class(`number`)), html.Textf(`%s`, data.String()))
	case gjson.String:
		return html.Text(data.String())
	default:
		switch {
		case data.IsArray():
			return cfg.arrayAsNode(data, path)
		case data.IsObject():
			return cfg.objectAsNode(data, path)
		default:
			panic(fmt.Errorf(`unknown gjson type %v at %q`, data.Type, path))
		}
	}
}

func (cfg *config) arrayAsNode(data gjson.Result, path string) html.Node {
	seq := data.Array()
	if len(seq) == 0 {
		return html.Div(html.Attrs(html.Class(`array empty`)), html.Text(`[]`))
	}
	values := make([]html.Node, 0, len(seq))
	path += "."
	for ix, value := range seq {
		values = append(values, html.Div(
			html.Attrs(html.Class(`value`)),
			cfg.asNode(value, path+strconv.Itoa(ix)),
		))
	}
	return html.Div(html.Attrs(html.Class(`array`)), values...)
}

func (cfg *config) tableAsNode(data gjson.Result, path string) html.Node {
	seq := data.Array()
	// Two passes: one to identify all of the keys of any embedded objects, and another to build
	// a table where each item has a row.
	//
	// If there are no embedded objects, we show a single column table with no heading.
	// Otherwise, we show a table with one column per key, with a heading row.
	//
	// This must tolerate mixtures of objects and slices or literals.
	var columns = struct {
		labels []string
		index  map[string]int
	}{
		make([]string, 0, 32),
		make(map[string]int, 32),
	}

	for _, value := range seq {
		if value.IsObject() {
			value.ForEach(func(key, _ gjson.Result) bool {
				if _, ok := columns.index[key.Str]; !ok {
					columns.index[key.Str] = len(columns.labels)
					columns.labels = append(columns.labels, key.Str)
				}
				return true
			})
		}
	}

	table := make([]html.Node, 0, len(columns.labels)+len(seq))
	for _, label := range columns.labels {
		table = append(table, html.Div(html.Attrs(html.Class(`header label`)), html.Text(label)))
	}
	path += "."
	for ix, value := range seq {
		var row []html.Node
		if value.IsObject() {
			row = make([]html.Node, 0, len(columns.labels))
			for _, label := range columns.labels {
				data := value.Get(label)
				if data.Exists() {
					row = append(row, html.Div(
						html.Attrs(html.Class(`value`)),
						cfg.asNode(data, path+label),
					))
				} else {
					row = append(row, html.Div(html.Attrs(html.Class(`value na`)), html.Text(`N/A`)))
				}
			}
		} else {
			row = []html.Node{html.Div(
				html.Attrs(html.Class(`value`), html.StyleAttr(`grid-column: 1/-1;`)), // full width
				cfg.asNode(value, path+strconv.Itoa(ix)),
			)}
		}
		table = append(table, html.Div(html.Attrs(html.Class(`row`)), row...))
	}

	return html.Div(html.Attrs(
		html.Class(`table`),
		html.StyleAttr(`grid-template-columns: repeat(%d, minmax(min-content, max-content));`, len(columns.labels)),
	), table...)
}

func (cfg *config) objectAsNode(data gjson.Result, path string) html.Node {
	// Objects render as a two column grid, one column for keys and one for values.
	pairs := make([]html.Node, 0, data.Get(`#`).Int()*2)
	path += "."
	data.ForEach(func(key, value gjson.Result) bool {
		pairs = append(pairs,
			html.Div(html.Attrs(html.Class(`key label`)), html.Text(key.Str)),
			html.Div(html.Attrs(html.Class(`value`)), cfg.asNode(value, path+key.Str)),
		)
		return true
	})
	return html.Div(html.Attrs(html.Class(`object`)), pairs...)
}

func isTabular(data gjson.Result) bool {
	if !data.IsArray() {
		return false
	}
	tabular := false
	data.ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			tabular = true
			return false
		}
		return true
	})
	return tabular
}
