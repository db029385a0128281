package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the Setka terminal client.
//
// The three endpoint URLs correspond to the backend functions the original
// deployment exposes (auth, admin moderation, chat). RequestTimeout is the
// per-request budget applied to every remote call.
type Config struct {
	AuthEndpoint   string
	AdminEndpoint  string
	ChatEndpoint   string
	RequestTimeout time.Duration
	SessionFile    string
	LogFile        string
}

// LoadDefaults populates c with settings suitable for a local devserver.
func (c *Config) LoadDefaults() {
	c.AuthEndpoint = "http://127.0.0.1:8099/auth"
	c.AdminEndpoint = "http://127.0.0.1:8099/admin"
	c.ChatEndpoint = "http://127.0.0.1:8099/chat"
	c.RequestTimeout = 10 * time.Second
	c.SessionFile = defaultStatePath("session.json")
	c.LogFile = defaultStatePath("client.log")
}

// defaultStatePath places client state under the user config dir, falling
// back to the working directory when it cannot be resolved.
func defaultStatePath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "setka-" + name
	}
	return filepath.Join(dir, "setka", name)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file was given) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
