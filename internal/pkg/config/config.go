package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port         string `env:"PORT,          default=8080"`
	Env          string `env:"ENV,           default=development"`
	LogLevel     string `env:"LOG_LEVEL,     default=info"`
	LogPretty    bool   `env:"LOG_PRETTY,    default=false"`
	BatchWorkers int    `env:"BATCH_WORKERS, default=8"`

	Backend BackendConfig
	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	URL         string        `env:"BACKEND_URL,          default=http://localhost:8000/api/"`
	CSRF        bool          `env:"BACKEND_CSRF,         default=false"`
	CSRFCookie  string        `env:"BACKEND_CSRF_COOKIE,  default=csrftoken"`
	InsecureTLS bool          `env:"BACKEND_INSECURE_TLS, default=false"`
	Timeout     time.Duration `env:"BACKEND_TIMEOUT,      default=0s"`
}

// CSRFCookieName is the cookie echoed as X-CSRFToken, or "" when CSRF
// protection is off.
func (b BackendConfig) CSRFCookieName() string {
	if !b.CSRF {
		return ""
	}
	return b.CSRFCookie
}

// SessionConfig selects where the local session lives: file, memory, redis
// or mongo. File defaults to ~/.switchctl/session.json when empty.
type SessionConfig struct {
	Backend   string `env:"SESSION_BACKEND,   default=file"`
	File      string `env:"SESSION_FILE"`
	Namespace string `env:"SESSION_NAMESPACE, default=default"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=switch_console"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l. Tests pass envconfig.MapLookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
