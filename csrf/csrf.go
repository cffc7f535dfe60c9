// Package csrf is a token provider for forms built with the html package.  It mints and checks
// keyed BLAKE2b MAC tokens bound to a session identifier and hands them over as a ready made
// hidden input node; the html package itself never generates or validates tokens, it only
// embeds the node it is given.
package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/blake2b"

	html "github.com/kestrel-web/html-go"
)

const nonceSize = 16

// New returns a token provider using the given key, which must be between 16 and 64 bytes.
func New(key []byte, options ...Option) (*Provider, error) {
	if len(key) < 16 {
		return nil, fmt.Errorf(`csrf key is %d bytes, need at least 16`, len(key))
	}
	if len(key) > 64 {
		return nil, fmt.Errorf(`csrf key is %d bytes, BLAKE2b allows at most 64`, len(key))
	}
	p := &Provider{key: append([]byte(nil), key...), field: `csrf_token`}
	for _, option := range options {
		option(p)
	}
	return p, nil
}

// FieldName overrides the name of the hidden input produced by Field.  The default is
// "csrf_token".
func FieldName(name string) Option { return func(p *Provider) { p.field = name } }

// An Option affects the configuration of a new Provider.
type Option func(*Provider)

// A Provider mints and checks CSRF tokens.  It is safe for concurrent use; the key is never
// mutated after New.
type Provider struct {
	key   []byte
	field string
}

// Token mints a token bound to the provided session identifier.  Each call produces a distinct
// token thanks to a random nonce.
func (p *Provider) Token(session string) string {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		panic(err) // the system random source is broken; nothing sensible to do.
	}
	return base64.RawURLEncoding.EncodeToString(append(nonce, p.mac(nonce, session)...))
}

// Verify reports whether the token was minted by this provider for the provided session
// identifier.  Comparison is constant time.
func (p *Provider) Verify(session, token string) bool {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) != nonceSize+blake2b.Size256 {
		return false
	}
	want := p.mac(raw[:nonceSize], session)
	return subtle.ConstantTimeCompare(raw[nonceSize:], want) == 1
}

// Field mints a token for the session and returns it as a hidden input node, ready to embed
// inside a form.
func (p *Provider) Field(session string) html.Node {
	return html.Input(
		html.InputType(html.HiddenInput),
		html.Name(`%s`, p.field),
		html.Value(`%s`, p.Token(session)),
	)
}

func (p *Provider) mac(nonce []byte, session string) []byte {
	h, err := blake2b.New256(p.key)
	if err != nil {
		panic(err) // unreachable, New bounds the key size.
	}
	h.Write(nonce)
	h.Write([]byte(session))
	return h.Sum(nil)
}
