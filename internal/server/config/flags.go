package config

import (
	"flag"
	"os"
	"time"

	"github.com/recipesearch/recipesearch/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-D string   database driver: pgx or sqlite
//	-d string   database DSN
//	-m int      max open database connections
//	-s string   session signing secret
//	-t int      session validity, minutes
//	-i int      expired session purge interval, minutes
//	-S string   session store: sql or redis
//	-r string   redis address
//	-n string   session cookie name
//	-k          mark the session cookie Secure
//	-o string   allowed CORS origins, comma separated
//	-l string   log level
//
// Duration flags are accepted as integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-a", "-D", "-d", "-m", "-s", "-t", "-i", "-S", "-r", "-n", "-o", "-l"},
		"-k")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "D", config.DatabaseDriver, "database driver (pgx|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.MaxOpenConns, "m", config.MaxOpenConns, "max open database connections")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session validity (in minutes)")
	purgeInterval := fs.Int("i", int(config.SessionPurgeInterval.Minutes()), "expired session purge interval (in minutes)")

	fs.StringVar(&config.SessionStore, "S", config.SessionStore, "session store (sql|redis)")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.CookieName, "n", config.CookieName, "session cookie name")
	fs.BoolVar(&config.CookieSecure, "k", config.CookieSecure, "secure session cookie")
	fs.StringVar(&config.AllowedOrigins, "o", config.AllowedOrigins, "allowed CORS origins")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
	config.SessionPurgeInterval = time.Duration(*purgeInterval) * time.Minute
}
