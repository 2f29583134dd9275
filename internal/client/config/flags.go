package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/rentaltracker/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   backend server URL
//	-d string   session database path
//	-l string   log level
//	-t int      request timeout in seconds
//
// Only these flags are looked at (flagx.FilterArgs), so -c and -e do not
// trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend server URL")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
