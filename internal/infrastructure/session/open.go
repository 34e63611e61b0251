package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/ports"
	"github.com/labreserve/switch-console/internal/infrastructure/db/mongo"
	"github.com/labreserve/switch-console/internal/infrastructure/db/redis"
	"github.com/labreserve/switch-console/internal/pkg/config"
)

// Backend names accepted by SESSION_BACKEND.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Closer releases whatever connection a store holds.
type Closer func(context.Context) error

func noopCloser(context.Context) error { return nil }

// Open builds the store named by cfg.Session.Backend.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.SessionStore, Closer, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Session.Backend))
	log = log.With().Str("session_backend", backend).Logger()

	switch backend {
	case BackendFile, "":
		path := cfg.Session.File
		if path == "" {
			p, err := DefaultPath()
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		log.Debug().Str("path", path).Msg("session store ready")
		return NewFileStore(path), noopCloser, nil

	case BackendMemory:
		return NewMemoryStore(), noopCloser, nil

	case BackendRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("addr", cfg.Redis.Addr).Msg("session store ready")
		return redis.NewSessionStore(client, cfg.Session.Namespace), func(context.Context) error {
			return client.Close()
		}, nil

	case BackendMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("database", cfg.Mongo.Database).Msg("session store ready")
		return mongo.NewSessionStore(db, cfg.Session.Namespace), client.Disconnect, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownSessionBackend, cfg.Session.Backend)
}
