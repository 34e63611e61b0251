package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/labreserve/switch-console/internal/core/apierror"
	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/ports"
)

type stubStore struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newStubStore() *stubStore {
	return &stubStore{data: make(map[string]string)}
}

func (s *stubStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", false, s.err
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *stubStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.data[key] = value
	return nil
}

func (s *stubStore) Has(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok, s.err
}

func (s *stubStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]string)
	return nil
}

func (s *stubStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// stubBackend answers every call with the configured response and records
// the requests it saw.
type stubBackend struct {
	status int
	body   string
	err    error
	panic  bool
	seen   []ports.BackendRequest
}

func (b *stubBackend) Dispatch(_ context.Context, req ports.BackendRequest) domain.Result[json.RawMessage] {
	b.seen = append(b.seen, req)
	if b.panic {
		panic("backend exploded")
	}
	if b.err != nil {
		f := apierror.FromTransport(b.err)
		return domain.Fail[json.RawMessage](apierror.Classify(f, req.Context), f.ResultStatus())
	}
	if b.status >= 200 && b.status < 300 {
		return domain.OK(json.RawMessage(b.body), b.status)
	}
	f := apierror.FromResponse(b.status, []byte(b.body))
	return domain.Fail[json.RawMessage](apierror.Classify(f, req.Context), f.ResultStatus())
}

func (b *stubBackend) last() ports.BackendRequest {
	return b.seen[len(b.seen)-1]
}

func bodyJSON(v any) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}
