// Package config handles configuration for the recipe search server,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"strings"
	"time"

	"github.com/recipesearch/recipesearch/internal/common"
)

// Session store backends.
const (
	SessionStoreSQL   = "sql"
	SessionStoreRedis = "redis"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API.
//   - DatabaseDriver / DatabaseDSN: "pgx" (PostgreSQL) or "sqlite" plus its DSN.
//   - MaxOpenConns: upper bound of the shared connection pool.
//   - SecretKey: HMAC secret for signing session cookies (HS256). Do not use test defaults in prod.
//   - SessionValidityDuration: lifetime of a login session.
//   - SessionPurgeInterval: how often expired SQL sessions are deleted.
//   - SessionStore / RedisAddr: where sessions live ("sql" or "redis").
//   - CookieName / CookieSecure: session cookie settings.
//   - AllowedOrigins: comma separated CORS origins, "*" reflects any origin.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP        string
	DatabaseDriver          string
	DatabaseDSN             string
	MaxOpenConns            int
	SecretKey               string
	SessionValidityDuration time.Duration
	SessionPurgeInterval    time.Duration
	SessionStore            string
	RedisAddr               string
	CookieName              string
	CookieSecure            bool
	AllowedOrigins          string
	LogLevel                string
}

// LoadDefaults populates Config with development defaults that match the
// docker-compose deployment (SQLite file mounted at /data).
// NOTE: SecretKey must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "file:/data/skupno.db3?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	c.MaxOpenConns = 10
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 24 * time.Hour
	c.SessionPurgeInterval = 10 * time.Minute
	c.SessionStore = SessionStoreSQL
	c.RedisAddr = "127.0.0.1:6379"
	c.CookieName = common.DefaultSessionCookieName
	c.CookieSecure = false
	c.AllowedOrigins = "*"
	c.LogLevel = "info"
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
