// migrate aplica las migraciones SQL embebidas que falten en la base configurada.
//
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	"time"

	"github.com/jhoicas/restaurante-rb-api/internal/infrastructure/postgres"
	"github.com/jhoicas/restaurante-rb-api/pkg/config"
	"github.com/jhoicas/restaurante-rb-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("migrate")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	for _, name := range applied {
		log.Info().Str("migration", name).Msg("migración aplicada")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones incompletas")
	}
	if len(applied) == 0 {
		log.Info().Msg("el esquema ya estaba al día")
	}
}
