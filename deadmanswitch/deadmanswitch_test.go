package deadmanswitch

import (
	"strings"
	"testing"

	html "github.com/kestrel-web/html-go"
)

func TestRendersScript(t *testing.T) {
	dms := New(ReloadOnReconnect())
	out := html.String(dms)
	t.Log(`generated:`, out)
	if !strings.HasPrefix(out, `<script>`) || !strings.HasSuffix(out, `</script>`) {
		t.Errorf(`switch did not render as a script tag: %q`, out)
	}
	if !strings.Contains(out, `"/dead-man-switch"`) {
		t.Errorf(`default path missing from %q`, out)
	}
	if !strings.Contains(out, `window.location.reload()`) {
		t.Errorf(`reconnect hook missing from %q`, out)
	}
}

func TestPathOption(t *testing.T) {
	dms := New(Path(`/live`))
	if dms.Path() != `/live` {
		t.Errorf(`path %q`, dms.Path())
	}
	if out := html.String(dms); !strings.Contains(out, `"/live"`) {
		t.Errorf(`custom path missing from %q`, out)
	}
}
