package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labreserve/switch-console/internal/core/domain"
)

func TestSessionManager_TokenLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewSessionManager(newStubStore(), zerolog.Nop())

	assert.False(t, m.IsAuthenticated(ctx))

	require.NoError(t, m.Save(ctx, domain.Session{Token: "t1", UserID: "u1", IsAdmin: true}))
	assert.True(t, m.IsAuthenticated(ctx))
	assert.True(t, m.IsAdmin(ctx))

	token, err := m.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", token)

	require.NoError(t, m.Save(ctx, domain.Session{Token: "t2", UserID: "u1"}))
	token, _ = m.Token(ctx)
	assert.Equal(t, "t2", token)
	assert.False(t, m.IsAdmin(ctx))

	require.NoError(t, m.Clear(ctx))
	assert.False(t, m.IsAuthenticated(ctx))
	sess, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Session{}, sess)
}

func TestSessionManager_StoreErrorMeansLoggedOut(t *testing.T) {
	store := newStubStore()
	store.data[domain.KeyToken] = "t1"
	store.err = errors.New("disk gone")
	m := NewSessionManager(store, zerolog.Nop())

	assert.False(t, m.IsAuthenticated(context.Background()))
	assert.False(t, m.IsAdmin(context.Background()))
	_, err := m.Current(context.Background())
	assert.Error(t, err)
}

func TestSessionManager_PingWithoutPinger(t *testing.T) {
	m := NewSessionManager(newStubStore(), zerolog.Nop())
	assert.NoError(t, m.Ping(context.Background()))
}
