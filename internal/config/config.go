package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Transport modes.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Assistant providers.
const (
	ProviderGemini = "gemini"
	ProviderStatic = "static"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Transport TransportConfig `yaml:"transport"`
	Assist    AssistConfig    `yaml:"assist"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"`
}

// AssistConfig selects the lookup and guidance collaborator. An empty API
// key forces the static provider.
type AssistConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// Load builds the configuration from, lowest precedence first: defaults, a
// .env file in the working directory, an optional YAML file and the process
// environment.
func Load() (Config, error) {
	dotenv, err := readDotEnv(".env")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "sala.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Transport: TransportConfig{
			Mode: TransportHTTP,
		},
		Assist: AssistConfig{
			Provider: ProviderGemini,
		},
	}

	if err := applyEnv(&cfg, func(key string) string { return dotenv[key] }); err != nil {
		return Config{}, fmt.Errorf(".env: %w", err)
	}

	path := os.Getenv("SALA_CONFIG_PATH")
	if path == "" {
		path = dotenv["SALA_CONFIG_PATH"]
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return Config{}, err
	}

	cfg.Transport.Mode = strings.ToLower(strings.TrimSpace(cfg.Transport.Mode))
	cfg.Assist.Provider = strings.ToLower(strings.TrimSpace(cfg.Assist.Provider))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides cfg with every non-empty variable lookup returns.
func applyEnv(cfg *Config, lookup func(string) string) error {
	if host := lookup("SALA_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := lookup("SALA_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid SALA_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := lookup("SALA_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := lookup("SALA_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := lookup("SALA_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if mode := lookup("SALA_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if provider := lookup("SALA_ASSIST_PROVIDER"); provider != "" {
		cfg.Assist.Provider = provider
	}
	if model := lookup("SALA_GEMINI_MODEL"); model != "" {
		cfg.Assist.Model = model
	}
	if key := lookup("GEMINI_API_KEY"); key != "" {
		cfg.Assist.APIKey = key
	} else if key := lookup("API_KEY"); key != "" {
		cfg.Assist.APIKey = key
	}
	return nil
}

// UseGemini reports whether the Gemini collaborator should be wired.
func (c Config) UseGemini() bool {
	return c.Assist.Provider == ProviderGemini && c.Assist.APIKey != ""
}

func (c Config) validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Transport.Mode {
	case TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	switch c.Assist.Provider {
	case ProviderGemini, ProviderStatic:
	default:
		return fmt.Errorf("invalid assist provider %q", c.Assist.Provider)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// readDotEnv parses path into a variable map without touching the process
// environment. A missing file yields an empty map.
func readDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return vars, nil
}
