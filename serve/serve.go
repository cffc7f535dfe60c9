// Package serve turns HTML trees into HTTP responses and provides middleware for logging
// requests and recovering from panics using zerolog with a minimum of spam.  The core html
// package owns no I/O; this package is the boundary where its rendered bytes and content type
// meet net/http.
package serve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	html "github.com/kestrel-web/html-go"
)

// Node renders the provided nodes and writes them as a complete HTML response with the given
// status.  Rendering happens entirely in memory before the first byte is written, so a response
// is never partially escaped or truncated mid-tree by the renderer.
func Node(w http.ResponseWriter, httpStatus int, nodes ...html.Node) {
	msg := html.Bytes(nodes...)
	h := w.Header()
	h.Set(`Content-Type`, html.ContentType)
	h.Set(`Content-Length`, strconv.Itoa(len(msg)))
	w.WriteHeader(httpStatus)
	_, _ = w.Write(msg)
}

// Error writes an error response.  The status is taken from the error's HTTPStatus method if it
// has one, and 500 otherwise.  The error text is embedded as escaped text, so error messages
// that quote user input cannot inject markup.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if impl, ok := err.(interface{ HTTPStatus() int }); ok {
		status = impl.HTTPStatus()
	}
	From(r.Context()).Err(err).Int(`status`, status).Msg(`request failed`)
	Node(w, status,
		html.H1(nil, html.Textf(`%d %s`, status, http.StatusText(status))),
		html.P(nil, html.Textf(`%s`, err.Error())),
	)
}

// StatusError associates an HTTP status with an error so Error can surface it.
func StatusError(status int, err error) error { return statusError{status, err} }

type statusError struct {
	status int
	err    error
}

func (err statusError) Unwrap() error   { return err.err }
func (err statusError) Error() string   { return err.err.Error() }
func (err statusError) HTTPStatus() int { return err.status }

// Text writes a plain text response.
func Text(w http.ResponseWriter, httpStatus int, text string) {
	h := w.Header()
	h.Set(`Content-Type`, `text/plain`)
	h.Set(`Content-Length`, strconv.Itoa(len(text)))
	w.WriteHeader(httpStatus)
	_, _ = w.Write([]byte(text))
}

// JSON writes a JSON response.  This will panic if the data cannot be marshalled.
func JSON(w http.ResponseWriter, httpStatus int, data any) {
	msg, err := json.Marshal(data)
	if err != nil {
		panic(err) // should not happen.
	}
	h := w.Header()
	h.Set(`Content-Type`, `application/json`)
	h.Set(`Content-Length`, strconv.Itoa(len(msg)))
	w.WriteHeader(httpStatus)
	_, _ = w.Write(msg)
}

// From will return the logger from the provided context.  This is introduced into a request
// context by the Middleware.  We use the same context key as zerolog Ctx and WithContext to
// improve interoperability.
func From(ctx context.Context, injects ...func(zerolog.Context) zerolog.Context) *zerolog.Logger {
	log := zerolog.Ctx(ctx)

	if len(injects) == 0 || log == nil {
		return log
	}
	z := log.With()
	for _, inject := range injects {
		z = inject(z)
	}
	next := z.Logger()
	return &next
}

// Middleware returns a middleware that logs requests and recovers from panics.  The inject
// functions (if present) can extend the request log context with information, such as the user
// or request ID.  See the For function for a list of fields added to the log context.  Fields
// logged after the middleware completes:
//
//   - status: the HTTP status code of the response
//   - wrote: the number of bytes written to the response
//   - took: the number of milliseconds the request took to process
//   - panic: the panic message, if the request panicked
//   - stack: the stack trace, if the request panicked, as a list of strings where each string
//     is a function and line.
func Middleware(injects ...func(zerolog.Context) zerolog.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			log := For(r, injects...)
			r = r.WithContext(log.WithContext(r.Context()))
			defer logResponse(log, ww, r, start)
			next.ServeHTTP(ww, r)
		})
	}
}

// With returns a new context with the provided injectors applied to the log context.  If there
// are no injectors, then the context is returned unchanged.
func With(ctx context.Context, injects ...func(zerolog.Context) zerolog.Context) context.Context {
	if len(injects) == 0 {
		return ctx
	}
	log := zerolog.Ctx(ctx)
	z := log.With()
	for _, inject := range injects {
		z = inject(z)
	}
	return z.Logger().WithContext(ctx)
}

// For will return a logger for the provided request, applying any injectors to the log context.
// It will add the following fields to the log context:
//
//   - remote_addr: the remote address of the request
//   - method: the HTTP method of the request
//   - path: the path of the request
//
// NOTE: This is not necessary if you are using Middleware.
func For(r *http.Request, injects ...func(zerolog.Context) zerolog.Context) *zerolog.Logger {
	ctx := r.Context()
	prev := zerolog.Ctx(ctx)
	z := prev.With().
		Str(`remote_addr`, r.RemoteAddr).
		Str(`method`, r.Method).
		Str(`path`, r.URL.Path)
	for _, inject := range injects {
		z = inject(z)
	}
	log := z.Logger()
	return &log
}

func logResponse(log *zerolog.Logger, ww middleware.WrapResponseWriter, r *http.Request, start time.Time) {
	var evt *zerolog.Event
	if e := recover(); e != nil {
		if e == http.ErrAbortHandler {
			panic(e) // rethrow, http will handle it.
		}
		evt = logRecovery(log, e)
	} else {
		status := ww.Status()
		if status >= 500 {
			evt = log.Error()
		} else if status >= 400 {
			evt = log.Warn()
		} else {
			evt = log.Info()
		}
		evt = evt.Int(`status`, status).
			Int(`wrote`, ww.BytesWritten()).
			Int64(`took`, time.Since(start).Milliseconds())
	}
	evt.Msg(``)
}

func logRecovery(log *zerolog.Logger, e any) *zerolog.Event {
	evt := log.WithLevel(zerolog.PanicLevel)
	evt = addStackTrace(evt, 4)
	evt = evt.Str(`panic`, fmt.Sprint(e))
	return evt
}

func addStackTrace(evt *zerolog.Event, skip int) *zerolog.Event {
	var calls [64]uintptr
	n := runtime.Callers(skip+1, calls[:])
	stack := make([]string, 0, n)
	for _, pc := range calls[:n] {
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		_, line := fn.FileLine(pc)
		stack = append(stack, fmt.Sprintf(`%v:%v`, fn.Name(), line))
	}
	return evt.Strs(`stack`, stack)
}
