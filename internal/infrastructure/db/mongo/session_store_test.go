package mongo

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Runs against a live server only when MONGO_TEST_URI is set.
func TestSessionStore_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()
	client, db, err := Connect(ctx, Config{URI: uri, Database: "switch_console_test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	store := NewSessionStore(db, t.Name())
	require.NoError(t, store.Clear(ctx))

	has, err := store.Has(ctx, "token")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, store.Set(ctx, "token", "t1"))
	require.NoError(t, store.Set(ctx, "user", "u1"))

	v, ok, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t1", v)

	require.NoError(t, store.Clear(ctx))
	_, ok, err = store.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, store.Ping(ctx))
}

func TestNewSessionStore_DefaultNamespace(t *testing.T) {
	// the driver connects lazily, so no server is needed here
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	s := NewSessionStore(client.Database("switch_console_test"), "")

	assert.Equal(t, "default", s.namespace)
	assert.Equal(t, sessionCollection, s.coll.Name())
}
