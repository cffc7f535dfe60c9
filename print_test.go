package html

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func TestPrettyString(t *testing.T) {
	page := Fragment(
		HTML5,
		Html(Attrs(Lang(`en`)),
			Head(nil,
				Meta(Charset(`utf-8`)),
				Title(nil, Text(`Demo & Friends`)),
			),
			Body(nil,
				Div(Attrs(Class(`card`)),
					H1(nil, Text(`Hello`)),
					P(nil, Text(`a < b`)),
					Input(Name(`q`), Required(true)),
				),
				Comment(`end of card`),
			),
		),
	)
	want := strings.Join([]string{
		`<!DOCTYPE html>`,
		`<html lang="en">`,
		`  <head>`,
		`    <meta charset="utf-8">`,
		`    <title>Demo &amp; Friends</title>`,
		`  </head>`,
		`  <body>`,
		`    <div class="card">`,
		`      <h1>Hello</h1>`,
		`      <p>a &lt; b</p>`,
		`      <input name="q" required>`,
		`    </div>`,
		`    <!--end of card-->`,
		`  </body>`,
		`</html>`,
		``,
	}, "\n")
	diffPretty(t, want, PrettyString(page))
}

func TestPrettyRawText(t *testing.T) {
	want := strings.Join([]string{
		`<script defer>`,
		`console.log(1);`,
		`</script>`,
		``,
	}, "\n")
	diffPretty(t, want, PrettyString(Script{Attrs: Attrs(Defer(true)), Content: `console.log(1);`}))
}

// The pretty printer must agree with the renderer on everything but whitespace framing: same
// tags, same attribute escaping, same text escaping.
func TestPrettyMatchesRender(t *testing.T) {
	tree := Div(Attrs(TitleAttr(`"q" & <r>`)),
		Span(nil, Text(`a & b`)),
		Input(Name(`x`), Disabled(true)),
	)
	flat := String(tree)
	pretty := PrettyString(tree)
	squashed := strings.NewReplacer("\n", ``, `  `, ``).Replace(pretty)
	if squashed != flat {
		t.Errorf("pretty output disagrees with render:\n pretty: %q\n render: %q", squashed, flat)
	}
}

func diffPretty(t *testing.T, want, got string) {
	t.Helper()
	if got == want {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("pretty output mismatch (want -> got):\n%v", dmp.DiffPrettyText(diffs))
}
