package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-envconfig"

	"event_hotels/internal/adapters/observability"
	mysqlrepo "event_hotels/internal/storage/mysql"
)

type config struct {
	AppEnv   string `env:"APP_ENV, default=prod"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	MySQLDSN string `env:"MYSQL_DSN, required"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
}

func run(ctx context.Context) error {
	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	db, err := mysqlrepo.Open(ctx, cfg.MySQLDSN)
	if err != nil {
		return fmt.Errorf("open mysql: %w", err)
	}
	defer db.Close()

	applied, err := mysqlrepo.Migrate(ctx, db)
	if err != nil {
		return err
	}
	log.Info().Strs("files", applied).Msg("migrations applied")
	return nil
}
