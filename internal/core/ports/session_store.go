package ports

import "context"

// SessionStore is a durable key/value store for the local session. It has no
// expiry and no locking discipline beyond what a single write needs: the last
// writer wins. Get reports ok=false for a key that was never set.
type SessionStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Has(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// Pinger is implemented by stores and clients that can check their backing
// service. Readiness probes call it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TokenSource resolves the auth token at the moment a request is sent.
// An empty token means no Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
