package backend

import (
	"fmt"
	"net/http"

	"github.com/labreserve/switch-console/internal/core/ports"
)

const (
	headerAuthorization = "Authorization"
	headerCSRF          = "X-CSRFToken"
	headerRequestID     = "X-Request-ID"
)

// authTransport injects the session headers when a request is sent, so a
// token stored after the client was built is still used.
type authTransport struct {
	base       http.RoundTripper
	tokens     ports.TokenSource
	jar        http.CookieJar
	csrfCookie string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokens.Token(req.Context())
	if err != nil {
		return nil, fmt.Errorf("resolve session token: %w", err)
	}

	out := req.Clone(req.Context())
	if token != "" {
		out.Header.Set(headerAuthorization, "Token "+token)
	}
	if csrf := t.csrfToken(out); csrf != "" {
		out.Header.Set(headerCSRF, csrf)
	}
	return t.base.RoundTrip(out)
}

func (t *authTransport) csrfToken(req *http.Request) string {
	if t.csrfCookie == "" || t.jar == nil {
		return ""
	}
	for _, c := range t.jar.Cookies(req.URL) {
		if c.Name == t.csrfCookie {
			return c.Value
		}
	}
	return ""
}
