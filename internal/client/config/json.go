package config

import (
	"encoding/json"
	"os"

	"github.com/setka-dev/setka/internal/flagx"
	"github.com/setka-dev/setka/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be written either as "10s" or as integer
// nanoseconds. Parsed values are copied onto the runtime Config.
type JSONConfig struct {
	AuthEndpoint   string         `json:"auth_endpoint"`
	AdminEndpoint  string         `json:"admin_endpoint"`
	ChatEndpoint   string         `json:"chat_endpoint"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionFile    string         `json:"session_file"`
	LogFile        string         `json:"log_file"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// Absent flags mean no JSON is loaded. Empty fields in the file leave the
// current value in place, so a partial config file is fine.
//
// Read or unmarshal errors panic: a config file that exists but cannot be
// used is a startup misconfiguration, not a runtime condition.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthEndpoint != "" {
		cfg.AuthEndpoint = jc.AuthEndpoint
	}
	if jc.AdminEndpoint != "" {
		cfg.AdminEndpoint = jc.AdminEndpoint
	}
	if jc.ChatEndpoint != "" {
		cfg.ChatEndpoint = jc.ChatEndpoint
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
}
