package config

// Config is the full f1data configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig describes the remote OpenF1 service.
type APIConfig struct {
	// BaseURL is the root of the OpenF1 REST API, without a trailing slash.
	BaseURL string `yaml:"baseUrl"`
	// TimeoutSeconds bounds each outbound request.
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// ServerConfig holds the optional network transport settings.
// The stdio transport is always available and needs no configuration.
type ServerConfig struct {
	// HTTPAddr enables the HTTP/WebSocket transports when non-empty,
	// e.g. "127.0.0.1:8720". Empty means stdio only.
	HTTPAddr string `yaml:"httpAddr"`
}

// LogConfig controls diagnostic logging. Logs always go to stderr;
// stdout carries protocol messages.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in defaults, used when no config file exists.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:        "https://api.openf1.org/v1",
			TimeoutSeconds: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
