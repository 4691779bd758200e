package shared

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	AppEnv   string `env:"APP_ENV, default=prod"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	HTTPAddr        string        `env:"HTTP_ADDR, default=:8080"`
	MetricsAddr     string        `env:"METRICS_ADDR"` // empty: /metrics only on the API listener
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT, default=15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	MySQLDSN string `env:"MYSQL_DSN, default=root:root@tcp(localhost:3306)/hotels?charset=utf8mb4"`

	RedisAddr       string        `env:"REDIS_ADDR"` // empty disables the session cache
	RedisPass       string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB, default=0"`
	SessionCacheTTL time.Duration `env:"SESSION_CACHE_TTL, default=60s"`

	JWTSecret string `env:"JWT_SECRET, required"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS, default=0"` // 0 disables
	RateLimitBurst int     `env:"RATE_LIMIT_BURST, default=20"`
}

func Load(ctx context.Context) (Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l; tests pass envconfig.MapLookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (Config, error) {
	var c Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &c, Lookuper: l}); err != nil {
		return Config{}, err
	}
	return c, nil
}
