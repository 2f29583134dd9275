package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/rentaltracker/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	envServerURL      = "RENTAL_SERVER_URL"
	envDBPath         = "RENTAL_DB_PATH"
	envLogLevel       = "RENTAL_LOG_LEVEL"
	envRequestTimeout = "RENTAL_REQUEST_TIMEOUT"
)

// parseEnv loads the dotenv file (explicit -e, else an optional ./.env) and
// overlays cfg with RENTAL_* variables. An explicitly named dotenv file that
// cannot be read, or a malformed timeout, panics.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v := os.Getenv(envServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(envDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
