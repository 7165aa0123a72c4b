package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strategyalign/internal/domain"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	envKey       = "ALIGN_ENV"
	portEnvKey   = "ALIGN_PORT"
	gptKeyEnvKey = "OPENAI_API_KEY"
)

type Config struct {
	Engine domain.EngineConfig `yaml:"engine"`
	Api    ApiConfig           `yaml:"api"`
	Gpt    GptConfig           `yaml:"gpt"`
}

type ApiConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	// MaxUploadBytes caps multipart CSV uploads
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

type GptConfig struct {
	// commentary is disabled when empty
	ApiKey string `yaml:"api_key"`
}

func DefaultConfig() Config {
	return Config{
		Engine: domain.DefaultEngineConfig(),
		Api: ApiConfig{
			Port:           3009,
			AllowedOrigins: []string{"*"},
			MaxUploadBytes: 10 << 20,
		},
	}
}

// ConfigPath picks the config file for the current ALIGN_ENV
func ConfigPath() string {
	switch strings.ToLower(os.Getenv(envKey)) {
	case "dev":
		return "config-dev.yaml"
	case "test":
		return "config-test.yaml"
	default:
		return "config.yaml"
	}
}

// LoadConfig reads path over the defaults. An empty path uses ConfigPath,
// and a missing default file is not an error. Env overrides apply last.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = ConfigPath()
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if port := os.Getenv(portEnvKey); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%s: %w", portEnvKey, port, err)
		}
		c.Api.Port = p
	}
	if key := os.Getenv(gptKeyEnvKey); key != "" {
		c.Gpt.ApiKey = key
	}
	return nil
}

func (c *Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if c.Api.Port <= 0 || c.Api.Port > 65535 {
		return fmt.Errorf("invalid api port %d", c.Api.Port)
	}
	if c.Api.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive, got %d", c.Api.MaxUploadBytes)
	}
	return nil
}

func PrettyJSON(i interface{}) string {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	return string(bytes)
}
