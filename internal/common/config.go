package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration. It is constructed once at
// process start and passed into each gateway/client constructor; nothing
// mutates it afterwards.
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Server      ServerConfig     `toml:"server"`
	Logging     LoggingConfig    `toml:"logging"`
	MarketData  MarketDataConfig `toml:"marketdata"`
	News        NewsConfig       `toml:"news"`
	Claude      ClaudeConfig     `toml:"claude"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// MarketDataConfig contains EODHD market data provider configuration.
type MarketDataConfig struct {
	APIKey    string `toml:"api_key"`    // EODHD API key (required)
	BaseURL   string `toml:"base_url"`   // API base URL (default: https://eodhd.com/api)
	Timeout   string `toml:"timeout"`    // HTTP timeout as duration string (default: "30s")
	RateLimit int    `toml:"rate_limit"` // Requests per second (default: 10)
}

// NewsConfig contains Finnhub news provider configuration.
type NewsConfig struct {
	APIKey     string `toml:"api_key"`     // Finnhub API key (required)
	BaseURL    string `toml:"base_url"`    // API base URL (default: https://finnhub.io/api/v1)
	Timeout    string `toml:"timeout"`     // HTTP timeout as duration string (default: "30s")
	RateLimit  int    `toml:"rate_limit"`  // Requests per second (default: 10)
	WindowDays int    `toml:"window_days"` // Company news lookback window in days (default: 7)
}

// ClaudeConfig contains Anthropic Claude API configuration.
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`     // Anthropic API key (required)
	Model       string  `toml:"model"`       // Model name (default: "claude-sonnet-4-5-20250929")
	MaxTokens   int     `toml:"max_tokens"`  // Maximum tokens in response (default: 2048)
	Timeout     string  `toml:"timeout"`     // Per-call timeout as duration string (default: "2m")
	Temperature float32 `toml:"temperature"` // Completion temperature (default: 0.7)
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings are exposed in finagent.toml; everything here can
// be overridden by file, environment, or CLI flags in that order.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout", "file"},
		},
		MarketData: MarketDataConfig{
			BaseURL:   "https://eodhd.com/api",
			Timeout:   "30s",
			RateLimit: 10,
		},
		News: NewsConfig{
			BaseURL:    "https://finnhub.io/api/v1",
			Timeout:    "30s",
			RateLimit:  10,
			WindowDays: 7,
		},
		Claude: ClaudeConfig{
			Model:       "claude-sonnet-4-5-20250929",
			MaxTokens:   2048,
			Timeout:     "2m",
			Temperature: 0.7,
		},
	}
}

// LoadFromFiles loads configuration with priority: defaults -> file1 -> file2
// -> ... -> env. Later files override earlier ones; environment variables
// override all files. Missing paths are an error, but zero paths is valid and
// yields defaults plus env overrides.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
// FINAGENT_* variables take precedence over the bare provider key variables.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FINAGENT_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("FINAGENT_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("FINAGENT_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if level := os.Getenv("FINAGENT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("FINAGENT_LOG_OUTPUT"); output != "" {
		parts := strings.Split(output, ",")
		outputs := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Provider keys: FINAGENT_* first, bare provider variables as fallback.
	if key := os.Getenv("FINAGENT_EODHD_API_KEY"); key != "" {
		config.MarketData.APIKey = key
	} else if key := os.Getenv("EODHD_API_KEY"); key != "" {
		config.MarketData.APIKey = key
	}
	if key := os.Getenv("FINAGENT_FINNHUB_API_KEY"); key != "" {
		config.News.APIKey = key
	} else if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		config.News.APIKey = key
	}
	if key := os.Getenv("FINAGENT_ANTHROPIC_API_KEY"); key != "" {
		config.Claude.APIKey = key
	} else if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		config.Claude.APIKey = key
	}

	if model := os.Getenv("FINAGENT_CLAUDE_MODEL"); model != "" {
		config.Claude.Model = model
	}
	if maxTokens := os.Getenv("FINAGENT_CLAUDE_MAX_TOKENS"); maxTokens != "" {
		if mt, err := strconv.Atoi(maxTokens); err == nil && mt > 0 {
			config.Claude.MaxTokens = mt
		}
	}
	if temp := os.Getenv("FINAGENT_CLAUDE_TEMPERATURE"); temp != "" {
		if t, err := strconv.ParseFloat(temp, 32); err == nil {
			config.Claude.Temperature = float32(t)
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority).
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks that all required provider keys are present. A missing key
// is a fatal startup error, not a per-request failure.
func (c *Config) Validate() error {
	var missing []string
	if c.MarketData.APIKey == "" {
		missing = append(missing, "marketdata.api_key (EODHD_API_KEY)")
	}
	if c.News.APIKey == "" {
		missing = append(missing, "news.api_key (FINNHUB_API_KEY)")
	}
	if c.Claude.APIKey == "" {
		missing = append(missing, "claude.api_key (ANTHROPIC_API_KEY)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}
