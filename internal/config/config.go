package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Session   SessionConfig   `yaml:"session"`
	MCP       MCPConfig       `yaml:"mcp"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// StaticDir optionally serves a built frontend from disk.
	StaticDir string `yaml:"static_dir"`
	// AllowedOrigins are the frontend origins granted credentialed CORS.
	// Empty means same-origin only: no CORS headers are emitted.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type UpstreamConfig struct {
	// BaseURL of the external GoGym API, including the version prefix,
	// e.g. "https://api.gogym.example/api/v1".
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout for upstream calls.
func (u UpstreamConfig) Timeout() time.Duration {
	if u.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(u.TimeoutSeconds) * time.Second
}

type SessionConfig struct {
	DBPath        string `yaml:"db_path"`
	CookieName    string `yaml:"cookie_name"`
	SecureCookies bool   `yaml:"secure_cookies"`
	TTLHours      int    `yaml:"ttl_hours"`
}

// TTL returns how long a session may live before the sweep removes it.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLHours <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(s.TTLHours) * time.Hour
}

type MCPConfig struct {
	// ServiceToken authenticates the MCP datasource against the upstream
	// API. MCP tools are disabled when empty.
	ServiceToken string `yaml:"service_token"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix GOGYM_ and underscore-separated paths:
//
//	GOGYM_SERVER_HOST, GOGYM_SERVER_PORT, GOGYM_SERVER_STATIC_DIR,
//	GOGYM_UPSTREAM_BASE_URL, GOGYM_UPSTREAM_TIMEOUT_SECONDS,
//	GOGYM_SESSION_DB_PATH, GOGYM_SESSION_COOKIE_NAME,
//	GOGYM_SESSION_TTL_HOURS, GOGYM_MCP_SERVICE_TOKEN
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GOGYM_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("GOGYM_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("GOGYM_SERVER_STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := os.Getenv("GOGYM_SERVER_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.AllowedOrigins = origins
	}
	if v := os.Getenv("GOGYM_UPSTREAM_BASE_URL"); v != "" {
		cfg.Upstream.BaseURL = v
	}
	if v := os.Getenv("GOGYM_UPSTREAM_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.Upstream.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("GOGYM_SESSION_DB_PATH"); v != "" {
		cfg.Session.DBPath = v
	}
	if v := os.Getenv("GOGYM_SESSION_COOKIE_NAME"); v != "" {
		cfg.Session.CookieName = v
	}
	if v := os.Getenv("GOGYM_SESSION_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil {
			cfg.Session.TTLHours = hours
		}
	}
	if v := os.Getenv("GOGYM_MCP_SERVICE_TOKEN"); v != "" {
		cfg.MCP.ServiceToken = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "gogym_session"
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if c.Session.DBPath == "" {
		return fmt.Errorf("session.db_path is required")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
