package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/endpoint"
	"github.com/labreserve/switch-console/internal/infrastructure/backend"
)

func newAuth(backend *stubBackend) (*AuthService, *SessionManager, *stubStore) {
	store := newStubStore()
	sessions := NewSessionManager(store, zerolog.Nop())
	return NewAuthService(backend, sessions, zerolog.Nop()), sessions, store
}

func TestAuthService_Login_StoresSession(t *testing.T) {
	backend := &stubBackend{status: http.StatusOK, body: `{"token":"t1","user":{"id":"u1"},"is_staff":false}`}
	svc, sessions, store := newAuth(backend)
	ctx := context.Background()

	res := svc.Login(ctx, "alice", "pw")

	require.True(t, res.Success, res.Message)
	assert.Equal(t, "t1", store.data[domain.KeyToken])
	assert.Equal(t, "u1", store.data[domain.KeyUser])
	assert.Equal(t, "false", store.data[domain.KeyIsStaff])
	assert.True(t, svc.IsAuthenticated(ctx))
	assert.False(t, svc.IsAdmin(ctx))

	sess, err := sessions.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Session{Token: "t1", UserID: "u1"}, sess)

	req := backend.last()
	assert.Equal(t, endpoint.Login, req.Operation)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "login/", req.Path)
	assert.Equal(t, domain.Credentials{Username: "alice", Password: "pw"}, req.Body)
}

func TestAuthService_Login_UserShapes(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		wantUser  string
		wantAdmin bool
	}{
		{"bare numeric id", `{"token":"t","user":7}`, "7", false},
		{"string id", `{"token":"t","user":"42"}`, "42", false},
		{"object with numeric id", `{"token":"t","user":{"id":3,"is_staff":true}}`, "3", true},
		{"top-level staff wins", `{"token":"t","user":{"id":3,"is_staff":true},"is_staff":false}`, "3", false},
		{"no user", `{"token":"t","is_staff":true}`, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newAuth(&stubBackend{status: http.StatusAccepted, body: tc.body})
			res := svc.Login(context.Background(), "alice", "pw")

			require.True(t, res.Success)
			assert.Equal(t, tc.wantUser, res.Data.UserID)
			assert.Equal(t, tc.wantAdmin, res.Data.IsAdmin)
			assert.Equal(t, tc.wantAdmin, svc.IsAdmin(context.Background()))
		})
	}
}

func TestAuthService_Login_Failures(t *testing.T) {
	cases := []struct {
		name    string
		backend *stubBackend
		want    string
	}{
		{"invalid credentials", &stubBackend{status: 401, body: `{"detail":"Invalid credentials."}`}, "Authentication failed. Please log in again."},
		{"no token in success", &stubBackend{status: 200, body: `{"detail":"odd"}`}, "odd"},
		{"empty success", &stubBackend{status: 200, body: `{}`}, "Failed to log in. Please try again."},
		{"network error", &stubBackend{err: errors.New("connection refused")}, "connection refused"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, store := newAuth(tc.backend)

			res := svc.Login(context.Background(), "alice", "pw")

			assert.False(t, res.Success)
			assert.Equal(t, tc.want, res.Message)
			assert.Zero(t, store.len())
			assert.False(t, svc.IsAuthenticated(context.Background()))
		})
	}
}

func TestAuthService_Signup_RequiresCreated(t *testing.T) {
	body := `{"token":"t2","user":{"id":9,"username":"bob"}}`

	svc, _, store := newAuth(&stubBackend{status: http.StatusCreated, body: body})
	res := svc.Signup(context.Background(), "bob", "pw")
	require.True(t, res.Success)
	assert.Equal(t, "9", res.Data.UserID)
	assert.Equal(t, "t2", store.data[domain.KeyToken])

	svc, _, store = newAuth(&stubBackend{status: http.StatusOK, body: body})
	res = svc.Signup(context.Background(), "bob", "pw")
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to sign up. Please try again.", res.Message)
	assert.Zero(t, store.len())
}

func TestAuthService_Signup_UsernameTaken(t *testing.T) {
	svc, _, store := newAuth(&stubBackend{status: http.StatusBadRequest, body: `{"detail":"username taken"}`})
	store.data["theme"] = "dark"

	res := svc.Signup(context.Background(), "bob", "pw")

	assert.Equal(t, domain.Result[domain.Account]{Success: false, Message: "username taken", Status: 400}, res)
	assert.Equal(t, map[string]string{"theme": "dark"}, store.data)
}

func TestAuthService_Logout_AlwaysClears(t *testing.T) {
	cases := []struct {
		name        string
		backend     *stubBackend
		wantSuccess bool
	}{
		{"confirmed", &stubBackend{status: http.StatusOK, body: `{"detail":"Logout successful."}`}, true},
		{"non-200 success", &stubBackend{status: http.StatusNoContent}, false},
		{"server failure", &stubBackend{status: http.StatusBadRequest, body: `{"detail":"Invalid token."}`}, false},
		{"network error", &stubBackend{err: errors.New("connection reset")}, false},
		{"panic", &stubBackend{panic: true}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, sessions, store := newAuth(tc.backend)
			ctx := context.Background()
			require.NoError(t, sessions.Save(ctx, domain.Session{Token: "t1", UserID: "u1", IsAdmin: true}))

			res := svc.Logout(ctx)

			assert.Equal(t, tc.wantSuccess, res.Success)
			if !res.Success {
				assert.NotEmpty(t, res.Message)
			}
			assert.Zero(t, store.len())
			assert.False(t, svc.IsAuthenticated(ctx))
			assert.False(t, svc.IsAdmin(ctx))
		})
	}
}

func TestAuthService_Logout_ReturnsDetail(t *testing.T) {
	backend := &stubBackend{status: http.StatusOK, body: `{"detail":"Logout successful."}`}
	svc, _, _ := newAuth(backend)

	res := svc.Logout(context.Background())

	assert.Equal(t, "Logout successful.", res.Data)
	req := backend.last()
	assert.Equal(t, endpoint.Logout, req.Operation)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "logout/", req.Path)
	assert.Nil(t, req.Body)
}

// The reservation API only accepts GET on logout/ and deletes the token it
// was called with.
func TestAuthService_Logout_RevokesTokenOnGetOnlyBackend(t *testing.T) {
	var (
		mu      sync.Mutex
		revoked []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/logout/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = io.WriteString(w, `{"detail":"Method \"`+r.Method+`\" not allowed."}`)
			return
		}
		mu.Lock()
		revoked = append(revoked, strings.TrimPrefix(r.Header.Get("Authorization"), "Token "))
		mu.Unlock()
		_, _ = io.WriteString(w, `{"detail":"Logout successful."}`)
	}))
	defer srv.Close()

	store := newStubStore()
	sessions := NewSessionManager(store, zerolog.Nop())
	client, err := backend.New(backend.Options{BaseURL: srv.URL + "/api/"}, sessions, zerolog.Nop())
	require.NoError(t, err)
	svc := NewAuthService(client, sessions, zerolog.Nop())

	ctx := context.Background()
	require.NoError(t, sessions.Save(ctx, domain.Session{Token: "t1", UserID: "u1"}))

	res := svc.Logout(ctx)

	require.True(t, res.Success, res.Message)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Logout successful.", res.Data)
	assert.Equal(t, []string{"t1"}, revoked)
	assert.Zero(t, store.len())
}

func TestAuthService_Logout_ClearsEvenWhenCancelled(t *testing.T) {
	svc, sessions, store := newAuth(&stubBackend{err: context.Canceled})
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, sessions.Save(ctx, domain.Session{Token: "t1"}))
	cancel()

	res := svc.Logout(ctx)

	assert.False(t, res.Success)
	assert.Zero(t, store.len())
}
