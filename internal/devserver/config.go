// Package devserver is a self-contained stand-in for the three remote
// functions the client talks to (auth, admin, chat). It keeps everything in
// memory and seeds the same accounts and conversations the client's mock data
// refers to, so a local session behaves like the hosted deployment.
package devserver

import (
	"flag"
	"os"
	"time"

	"github.com/setka-dev/setka/internal/flagx"
)

const (
	defaultAddr     = "127.0.0.1:8099"
	defaultTokenTTL = 24 * time.Hour

	// Development only. Override with -secret or SETKA_DEV_SECRET before
	// exposing the server to anything but localhost.
	defaultSecret = "setka-dev-secret"
)

type Config struct {
	Addr      string
	JWTSecret string
	TokenTTL  time.Duration
}

// LoadConfig resolves the server configuration from defaults, then
// environment, then flags, later sources winning.
func LoadConfig() *Config {
	cfg := &Config{Addr: defaultAddr, JWTSecret: defaultSecret, TokenTTL: defaultTokenTTL}

	if v := os.Getenv("SETKA_DEV_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SETKA_DEV_SECRET"); v != "" {
		cfg.JWTSecret = v
	}

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "listen address")
	fs.StringVar(&cfg.JWTSecret, "secret", cfg.JWTSecret, "token signing secret")
	fs.DurationVar(&cfg.TokenTTL, "ttl", cfg.TokenTTL, "token lifetime")
	fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-a", "-secret", "-ttl"}))

	return cfg
}
