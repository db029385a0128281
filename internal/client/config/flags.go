package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/setka-dev/setka/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-e string   base URL of a server hosting all three functions at
//	            /auth, /admin and /chat (the devserver layout)
//	-t int      request timeout in seconds
//	-s string   session file path
//	-l string   log file path
//
// os.Args is pre-filtered with flagx.FilterArgs so the config-file flags
// handled elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-t", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	base := fs.String("e", "", "base URL of the backend server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "session file path")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *base != "" {
		b := strings.TrimRight(*base, "/")
		cfg.AuthEndpoint = b + "/auth"
		cfg.AdminEndpoint = b + "/admin"
		cfg.ChatEndpoint = b + "/chat"
	}
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
