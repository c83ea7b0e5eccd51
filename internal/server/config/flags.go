package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/userregistry/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     HTTP bind address (e.g., ":3000")
//	-g string     gRPC health bind address (empty disables)
//	-d string     store DSN
//	-k int        bcrypt cost
//	-t duration   graceful shutdown timeout
//	-i duration   store health-check interval
//	-l string     log level
//
// os.Args is filtered first so flags owned by other parsers (-c, test
// flags) do not cause errors here.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-k", "-t", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to run gRPC health server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.PasswordCost, "k", config.PasswordCost, "bcrypt cost")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "graceful shutdown timeout")
	fs.DurationVar(&config.HealthCheckInterval, "i", config.HealthCheckInterval, "store health-check interval")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
