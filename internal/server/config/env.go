package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig lists the environment variables the server understands.
// PORT and MONGO_URL are kept for deployments that only set those.
type EnvConfig struct {
	Port                string        `env:"PORT"`
	EndpointAddrHTTP    string        `env:"HTTP_ADDR"`
	EndpointAddrGRPC    string        `env:"GRPC_HEALTH_ADDR"`
	DatabaseDSN         string        `env:"DATABASE_DSN"`
	MongoURL            string        `env:"MONGO_URL"`
	PasswordCost        int           `env:"PASSWORD_COST"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT"`
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
	LogLevel            string        `env:"LOG_LEVEL"`
}

// dotenvFile is loaded into the process environment if present. Variables
// already set in the environment win.
var dotenvFile = ".env"

// parseEnv overlays non-empty environment values. HTTP_ADDR takes
// precedence over PORT, DATABASE_DSN over MONGO_URL.
func parseEnv(config *Config) {
	_ = godotenv.Load(dotenvFile)

	var c EnvConfig
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	switch {
	case c.EndpointAddrHTTP != "":
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	case c.Port != "":
		config.EndpointAddrHTTP = ":" + c.Port
	}

	switch {
	case c.DatabaseDSN != "":
		config.DatabaseDSN = c.DatabaseDSN
	case c.MongoURL != "":
		config.DatabaseDSN = c.MongoURL
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.PasswordCost != 0 {
		config.PasswordCost = c.PasswordCost
	}
	if c.ShutdownTimeout != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout
	}
	if c.HealthCheckInterval != 0 {
		config.HealthCheckInterval = c.HealthCheckInterval
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
