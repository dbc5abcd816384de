package api

import "net/http"

// TokenSource supplies the persisted access token, or "" when the user is
// not logged in.
type TokenSource interface {
	Token() string
}

// authTransport attaches the access token as a bearer credential on every
// outgoing request. The token is read from the source per request, so a
// login or logout between requests takes effect immediately. No refresh,
// no retries.
type authTransport struct {
	tokens TokenSource
	base   http.RoundTripper
}

func newAuthTransport(tokens TokenSource, base http.RoundTripper) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{tokens: tokens, base: base}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			// Clone before mutating: RoundTrippers must not modify the
			// caller's request.
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return t.base.RoundTrip(req)
}
