package proxy

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds the daemon's runtime configuration. Everything is sourced
// from the process environment at startup; there is no config file.
type Config struct {
	Port        int    `koanf:"port"`
	APIKey      string `koanf:"api_key"`
	UpstreamURL string `koanf:"upstream_url"`
}

const defaultPort = 3000

// LoadConfig layers environment variables over built-in defaults:
//
//	PORT         listen port (default 3000)
//	API_KEY      upstream api_key; no default. A missing key is not a
//	               startup error: every proxy call then fails at upstream
//	               auth and surfaces the generic error shape.
//	UPSTREAM_URL upstream API root override, mainly for tests
func LoadConfig() (Config, error) {
	k := koanf.New(".")

	defaults := Config{Port: defaultPort}
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Port == 0 {
		// PORT set but empty decodes to zero; fall back to the default.
		cfg.Port = defaultPort
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

// envTransform admits only the variables the daemon owns; everything else in
// the environment is ignored.
func envTransform(name string) string {
	switch name {
	case "PORT", "API_KEY", "UPSTREAM_URL":
		return strings.ToLower(name)
	}
	return ""
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
