package main

import (
	"log/slog"
	"time"
)

type apiConfig struct {
	Port            uint16        `env:"APP_PORT" envDefault:"8080"`
	LogLevel        slog.Level    `env:"APP_LOG_LEVEL" envDefault:"INFO"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Postgres        postgresConfig
}

type postgresConfig struct {
	DSN             string `env:"PG_DSN"`
	ConnectAttempts int    `env:"PG_CONNECT_ATTEMPTS" envDefault:"10"`
}
