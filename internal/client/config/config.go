package config

import "time"

// Config holds runtime settings for the rental tracker client.
//
// Fields:
//   - ServerURL: scheme://host:port of the backend; the API base path is appended by the API client.
//   - DBPath: SQLite file holding the persisted session.
//   - LogLevel: debug, info, warn or error.
//   - RequestTimeout: per-request timeout; zero leaves the transport default in place.
type Config struct {
	ServerURL      string
	DBPath         string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.DBPath = "rental.db"
	c.LogLevel = "info"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given), the environment (including .env) and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
