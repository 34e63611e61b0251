package apierror

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

const (
	msgBadRequest    = "Invalid request. Please check your input and try again."
	msgUnauthorized  = "Authentication failed. Please log in again."
	msgForbidden     = "You do not have permission to perform this action."
	msgNotFound      = "The requested resource was not found."
	msgConflict      = "Conflict detected. The operation could not be completed."
	msgUnprocessable = "The request could not be processed. Please check your input."
	msgServerError   = "Server error. Please try again later or contact support."
)

// rule produces the message for one status class.
type rule func(f *Failure, context string) string

func fixed(msg string) rule {
	return func(*Failure, string) string { return msg }
}

func preferServer(fallback string) rule {
	return func(f *Failure, _ string) string { return Message(f, fallback) }
}

// rules is the status policy. Statuses absent from the table use
// contextFallback.
var rules = map[int]rule{
	http.StatusBadRequest:          preferServer(msgBadRequest),
	http.StatusUnauthorized:        fixed(msgUnauthorized),
	http.StatusForbidden:           fixed(msgForbidden),
	http.StatusNotFound:            fixed(msgNotFound),
	http.StatusConflict:            preferServer(msgConflict),
	http.StatusUnprocessableEntity: preferServer(msgUnprocessable),
	http.StatusInternalServerError: fixed(msgServerError),
}

func contextFallback(f *Failure, context string) string {
	return Message(f, Fallback(context))
}

// Fallback is the generic message for an operation, e.g.
// "Failed to fetch switches. Please try again.".
func Fallback(context string) string {
	return fmt.Sprintf("Failed to %s. Please try again.", context)
}

// Message extracts the most specific description available: the body's
// detail, error or warning, then the transport error, then fallback.
func Message(f *Failure, fallback string) string {
	if f == nil {
		return fallback
	}
	if s := f.ServerMessage(); s != "" {
		return s
	}
	if f.Err != nil {
		return f.Err.Error()
	}
	return fallback
}

// Classify maps a failure to the message shown to the user. context names
// the attempted operation in the form "fetch switches".
func Classify(f *Failure, context string) string {
	if f == nil {
		return Fallback(context)
	}
	if r, ok := rules[f.Status]; ok {
		return r(f, context)
	}
	return contextFallback(f, context)
}

// Log records the raw failure. It never changes what Classify returns.
func Log(log zerolog.Logger, f *Failure, context string) {
	if f == nil {
		return
	}
	ev := log.Error()
	if f.Status >= 400 && f.Status < 500 {
		ev = log.Warn()
	}
	ev = ev.Str("context", context).
		Int("status", f.Status).
		Str("request_id", f.RequestID).
		Str("method", f.Method).
		Str("path", f.Path)
	if f.Body != nil {
		ev = ev.Interface("body", f.Body)
	} else if len(f.Raw) > 0 {
		ev = ev.Bytes("raw_body", truncate(f.Raw, 512))
	}
	if f.Err != nil {
		ev = ev.Err(f.Err)
	}
	ev.Msg("backend call failed")
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
