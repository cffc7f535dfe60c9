package serve

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	html "github.com/kestrel-web/html-go"
)

func TestNode(t *testing.T) {
	w := httptest.NewRecorder()
	Node(w, http.StatusOK, html.P(nil, html.Text(`fish & chips`)))
	rsp := w.Result()
	if got := rsp.Header.Get(`Content-Type`); got != html.ContentType {
		t.Errorf(`content type %q, want %q`, got, html.ContentType)
	}
	body := w.Body.String()
	if body != `<p>fish &amp; chips</p>` {
		t.Errorf(`body %q`, body)
	}
	if got := rsp.Header.Get(`Content-Length`); got == `` {
		t.Error(`missing content length`)
	}
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(`GET`, `/items`, nil)
	Error(w, r, StatusError(http.StatusNotFound, errors.New(`no item "<primary>"`)))
	if w.Code != http.StatusNotFound {
		t.Errorf(`status %d, want 404`, w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `404 Not Found`) {
		t.Errorf(`body %q lacks the status line`, body)
	}
	if strings.Contains(body, `<primary>`) {
		t.Errorf(`error text was not escaped: %q`, body)
	}
}

func TestMiddlewareLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Node(w, http.StatusOK, html.Div(nil))
	}))
	r := httptest.NewRequest(`GET`, `/ok`, nil)
	r = r.WithContext(logger.WithContext(r.Context()))
	h.ServeHTTP(httptest.NewRecorder(), r)

	log := buf.String()
	for _, field := range []string{`"status":200`, `"path":"/ok"`, `"method":"GET"`} {
		if !strings.Contains(log, field) {
			t.Errorf(`log %q lacks %q`, log, field)
		}
	}
}

func TestMiddlewareRecovers(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(`kaboom`)
	}))
	r := httptest.NewRequest(`GET`, `/boom`, nil)
	r = r.WithContext(logger.WithContext(r.Context()))
	h.ServeHTTP(httptest.NewRecorder(), r) // must not propagate the panic

	log := buf.String()
	if !strings.Contains(log, `kaboom`) {
		t.Errorf(`log %q lacks the panic message`, log)
	}
	if !strings.Contains(log, `stack`) {
		t.Errorf(`log %q lacks a stack trace`, log)
	}
}
