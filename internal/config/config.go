package config

import (
	"fmt"
	"path"
	"time"

	"github.com/eskrenkovic/product-catalog-go/internal/env"

	"go.uber.org/zap"
)

const (
	PortEnv            = "PORT"
	StoreBackendEnv    = "STORE_BACKEND"
	DatabaseUrlEnv     = "DATABASE_URL"
	RootPathEnv        = "ROOT_PATH"
	SeedDemoDataEnv    = "SEED_DEMO_DATA"
	ShutdownTimeoutEnv = "SHUTDOWN_TIMEOUT_SECONDS"
)

const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
)

type Config struct {
	Logger *zap.Logger

	Port            int
	StoreBackend    string
	DatabaseURL     string
	MigrationsPath  string
	SeedDemoData    bool
	ShutdownTimeout time.Duration
}

func Load() (Config, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return Config{}, err
	}

	backend := env.GetStringOrDefault(StoreBackendEnv, StoreBackendMemory)

	config := Config{
		Logger:          logger,
		Port:            env.GetIntOrDefault(PortEnv, 8080),
		StoreBackend:    backend,
		SeedDemoData:    env.GetBoolOrDefault(SeedDemoDataEnv, false),
		ShutdownTimeout: time.Duration(env.GetIntOrDefault(ShutdownTimeoutEnv, 15)) * time.Second,
	}

	switch backend {
	case StoreBackendMemory:
	case StoreBackendPostgres:
		dbURL, err := env.GetString(DatabaseUrlEnv)
		if err != nil {
			return Config{}, err
		}

		rootPath := env.GetStringOrDefault(RootPathEnv, ".")

		config.DatabaseURL = dbURL
		config.MigrationsPath = path.Join(rootPath, "db", "migrations")
	default:
		return Config{}, fmt.Errorf("unrecognized store backend: '%s'", backend)
	}

	return config, nil
}
