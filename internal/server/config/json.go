package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userregistry/internal/flagx"
	"github.com/dmitrijs2005/userregistry/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// either "5s" strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP    string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC    string         `json:"endpoint_addr_grpc"`
	DatabaseDSN         string         `json:"database_dsn"`
	PasswordCost        int            `json:"password_cost"`
	ShutdownTimeout     timex.Duration `json:"shutdown_timeout"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c / -config. Keys that
// are absent from the file leave the current value untouched. A missing or
// malformed file panics.
func parseJson(config *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.PasswordCost != 0 {
		config.PasswordCost = c.PasswordCost
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.HealthCheckInterval.Duration != 0 {
		config.HealthCheckInterval = c.HealthCheckInterval.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
