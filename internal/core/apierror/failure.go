// Package apierror turns raw backend failures into short, user-facing
// messages and records the raw detail for diagnostics.
package apierror

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Failure is a backend call that did not succeed. Status is zero when no
// response reached the client; Err is set only for transport failures.
type Failure struct {
	Status    int
	Body      map[string]any
	Raw       []byte
	Err       error
	RequestID string
	Method    string
	Path      string
}

// FromResponse builds a server-reported failure. The body is decoded when it
// is a JSON object; anything else is kept only as Raw.
func FromResponse(status int, raw []byte) *Failure {
	f := &Failure{Status: status, Raw: raw}
	var body map[string]any
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil {
		f.Body = body
	}
	return f
}

// FromTransport builds a failure for a request that got no response.
func FromTransport(err error) *Failure {
	return &Failure{Err: err}
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s %s: %v", f.Method, f.Path, f.Err)
	}
	return fmt.Sprintf("%s %s: status %d", f.Method, f.Path, f.Status)
}

func (f *Failure) Unwrap() error { return f.Err }

// ResultStatus is the status reported in a failed envelope. Transport
// failures report 500, like the web client did.
func (f *Failure) ResultStatus() int {
	if f == nil || f.Status == 0 {
		return http.StatusInternalServerError
	}
	return f.Status
}

// ServerMessage returns the first non-empty string among the body's detail,
// error and warning fields.
func (f *Failure) ServerMessage() string {
	if f == nil {
		return ""
	}
	for _, key := range []string{"detail", "error", "warning"} {
		if s, ok := f.Body[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
