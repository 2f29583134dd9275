// Package config loads runtime configuration for the rental tracker client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in
//     .yaml or .yml are decoded as YAML, everything else as JSON.
//  3. Environment variables, after loading a dotenv file (-e / -env-file,
//     or ./.env when present). Variables already set in the process win
//     over the dotenv file.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend server URL
//	-d string   path to the local SQLite session database
//	-l string   log level (debug, info, warn, error)
//	-t int      request timeout in seconds (0 = transport default)
//
// Environment
//
//	RENTAL_SERVER_URL, RENTAL_DB_PATH, RENTAL_LOG_LEVEL, RENTAL_REQUEST_TIMEOUT
//
// RENTAL_REQUEST_TIMEOUT accepts a Go duration ("5s").
//
// # File schema
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "db_path": "rental.db",
//	  "log_level": "info",
//	  "request_timeout": "10s"
//	}
package config
