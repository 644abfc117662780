package config

import (
	"encoding/json"
	"os"

	"github.com/recipesearch/recipesearch/internal/flagx"
	"github.com/recipesearch/recipesearch/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "30m" and integer nanoseconds are accepted.
// Pointer fields distinguish "absent" from zero values, so a partial file only
// overrides what it names.
type JsonConfig struct {
	EndpointAddrHTTP        *string         `json:"endpoint_addr_http"`
	DatabaseDriver          *string         `json:"database_driver"`
	DatabaseDSN             *string         `json:"database_dsn"`
	MaxOpenConns            *int            `json:"max_open_conns"`
	SecretKey               *string         `json:"secret_key"`
	SessionValidityDuration *timex.Duration `json:"session_validity_duration"`
	SessionPurgeInterval    *timex.Duration `json:"session_purge_interval"`
	SessionStore            *string         `json:"session_store"`
	RedisAddr               *string         `json:"redis_addr"`
	CookieName              *string         `json:"cookie_name"`
	CookieSecure            *bool           `json:"cookie_secure"`
	AllowedOrigins          *string         `json:"allowed_origins"`
	LogLevel                *string         `json:"log_level"`
}

// parseJson loads configuration values from the JSON file named by -c/-config
// (or RECIPES_CONFIG) into config. Without a file nothing changes.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIf(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIf(&config.DatabaseDriver, c.DatabaseDriver)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.MaxOpenConns, c.MaxOpenConns)
	setIf(&config.SecretKey, c.SecretKey)
	if c.SessionValidityDuration != nil {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	if c.SessionPurgeInterval != nil {
		config.SessionPurgeInterval = c.SessionPurgeInterval.Duration
	}
	setIf(&config.SessionStore, c.SessionStore)
	setIf(&config.RedisAddr, c.RedisAddr)
	setIf(&config.CookieName, c.CookieName)
	setIf(&config.CookieSecure, c.CookieSecure)
	setIf(&config.AllowedOrigins, c.AllowedOrigins)
	setIf(&config.LogLevel, c.LogLevel)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
