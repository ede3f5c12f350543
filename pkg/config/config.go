package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nleiva/contentscale/pkg/backend"
)

const (
	// Default configuration values
	DefaultModel    = "gpt-4"
	DefaultPort     = 3000
	DefaultProvider = backend.ProviderNameOpenAI
	DefaultTimeout  = 30 // seconds
	DefaultLogLevel = "info"

	DefaultGenerationDelay    = 1500 * time.Millisecond
	DefaultReplyDelay         = 1000 * time.Millisecond
	DefaultExtractionDelay    = 1500 * time.Millisecond
	DefaultMockTranslateDelay = 300 * time.Millisecond

	// FileEnv names the optional YAML file read before the environment.
	FileEnv = "CONTENTSCALE_CONFIG"
)

// Config holds all application configuration. Credentials only come from
// the environment.
type Config struct {
	LLM         backend.ProviderConfig `yaml:"llm"`
	Translate   Translate              `yaml:"translate"`
	Redis       Redis                  `yaml:"redis"`
	Delays      Delays                 `yaml:"delays"`
	Port        int                    `yaml:"port"`
	LogLevel    string                 `yaml:"log_level"`
	ActivityLog string                 `yaml:"activity_log"` // JSON lines file, empty disables
}

// Translate configures the translation endpoint.
type Translate struct {
	APIKey   string `yaml:"-"`
	Endpoint string `yaml:"endpoint"`
}

// Redis configures the optional translation cache. An empty Addr keeps the
// caches in memory.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"-"`
	Prefix   string `yaml:"prefix"`
}

// Delays are the simulated latencies of the demo flows.
type Delays struct {
	Generation    time.Duration `yaml:"generation"`
	Reply         time.Duration `yaml:"reply"`
	Extraction    time.Duration `yaml:"extraction"`
	MockTranslate time.Duration `yaml:"mock_translate"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LLM: backend.ProviderConfig{
			Name:    DefaultProvider,
			Model:   DefaultModel,
			Timeout: DefaultTimeout,
		},
		Redis: Redis{Prefix: "contentscale:"},
		Delays: Delays{
			Generation:    DefaultGenerationDelay,
			Reply:         DefaultReplyDelay,
			Extraction:    DefaultExtractionDelay,
			MockTranslate: DefaultMockTranslateDelay,
		},
		Port:     DefaultPort,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks the configuration for correctness. Missing API keys are
// valid: the affected features run on mock data.
func (c *Config) Validate() error {
	if _, err := backend.ParseProviderName(string(c.LLM.Name)); err != nil {
		return err
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM timeout must be positive, got %d", c.LLM.Timeout)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1-65535, got %d", c.Port)
	}
	for name, d := range map[string]time.Duration{
		"generation":     c.Delays.Generation,
		"reply":          c.Delays.Reply,
		"extraction":     c.Delays.Extraction,
		"mock translate": c.Delays.MockTranslate,
	} {
		if d < 0 {
			return fmt.Errorf("%s delay cannot be negative, got %v", name, d)
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// LoadFile overlays the YAML document at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// LoadFromEnv builds the configuration from defaults, the optional file
// named by CONTENTSCALE_CONFIG and environment variables, in that order. It
// writes warnings to w for any invalid environment variable values
// encountered.
func LoadFromEnv(w io.Writer) (*Config, error) {
	cfg := Default()

	if path := os.Getenv(FileEnv); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	loadLLMConfig(cfg, w)
	cfg.Translate.APIKey = os.Getenv("GOOGLE_TRANSLATE_API_KEY")
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")

	loadDuration(w, "GENERATION_DELAY", &cfg.Delays.Generation)
	loadDuration(w, "REPLY_DELAY", &cfg.Delays.Reply)
	loadDuration(w, "EXTRACTION_DELAY", &cfg.Delays.Extraction)
	loadDuration(w, "MOCK_TRANSLATE_DELAY", &cfg.Delays.MockTranslate)

	cfg.Port = loadPort(w, cfg.Port)

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if _, err := parseLevel(v); err != nil {
			fmt.Fprintf(w, "Warning: Invalid LOG_LEVEL value '%s', using %s\n", v, cfg.LogLevel)
		} else {
			cfg.LogLevel = v
		}
	}
	if v := os.Getenv("ACTIVITY_LOG"); v != "" {
		cfg.ActivityLog = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadLLMConfig applies provider, model and credential variables
func loadLLMConfig(cfg *Config, w io.Writer) {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		name, err := backend.ParseProviderName(strings.ToLower(v))
		if err != nil {
			fmt.Fprintf(w, "Warning: %v, using %s\n", err, cfg.LLM.Name)
		} else {
			cfg.LLM.Name = name
		}
	}
	if v := os.Getenv("MODEL"); v != "" {
		cfg.LLM.Model = v
	}

	cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.LLM.Name == backend.ProviderNameAnthropic {
		if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
			cfg.LLM.APIKey = key
		}
	}
}

// loadDuration reads a Go duration such as "1500ms" into dst
func loadDuration(w io.Writer, name string, dst *time.Duration) {
	raw := os.Getenv(name)
	if raw == "" {
		return
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Fprintf(w, "Warning: Invalid %s value '%s': %v, using default %v\n", name, raw, err, *dst)
		return
	}
	if d < 0 {
		fmt.Fprintf(w, "Warning: %s cannot be negative, got %v, using default %v\n", name, d, *dst)
		return
	}
	*dst = d
}

// loadPort reads and validates the PORT environment variable
func loadPort(w io.Writer, current int) int {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		return current
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		fmt.Fprintf(w, "Warning: Invalid PORT value '%s': %v, using default %d\n",
			portStr, err, current)
		return current
	}

	if port <= 0 || port > 65535 {
		fmt.Fprintf(w, "Warning: PORT must be between 1-65535, got %d, using default %d\n",
			port, current)
		return current
	}

	return port
}
