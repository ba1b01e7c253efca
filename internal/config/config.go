package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultListenAddr = ":8080"
	DefaultRedisTTL   = 30 * time.Minute
)

// TomlConfig mirrors the config file layout.
type TomlConfig struct {
	Server struct {
		ListenAddr string `toml:"listen_addr"`
	} `toml:"server"`

	AI struct {
		ModuleName string `toml:"module_name"`
		APIKey     string `toml:"api_key"`
		BaseURL    string `toml:"base_url"` // for OpenAI-compatible gateways
		Model      string `toml:"model"`
	} `toml:"ai"`

	LRCLib struct {
		BaseURL string `toml:"base_url"`
	} `toml:"lrclib"`

	Redis struct {
		Addr     string `toml:"addr"`
		Password string `toml:"password"`
		DB       int    `toml:"db"`
		TTL      string `toml:"ttl"`
	} `toml:"redis"`
}

// ServerConfig is the HTTP listener configuration.
type ServerConfig struct {
	ListenAddr string
}

// AIConfig selects and authenticates the LLM backend.
type AIConfig struct {
	ModuleName string
	APIKey     string
	BaseURL    string
	Model      string
}

// LRCLibConfig points at the lyrics database API.
type LRCLibConfig struct {
	BaseURL string
}

// RedisConfig enables the optional lyrics-text cache when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Config is the assembled application configuration.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	LRCLib LRCLibConfig
	Redis  RedisConfig
}

func getConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "vietsong", "config.toml")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Printf("WARN: Cannot get user home directory: %v", err)
		return "config.toml"
	}

	return filepath.Join(homeDir, ".config", "vietsong", "config.toml")
}

func loadTomlConfig() (*TomlConfig, error) {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Printf("INFO: Config file not found at %s, using defaults", configPath)
		return &TomlConfig{}, nil
	}

	var config TomlConfig
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, err
	}

	log.Printf("INFO: Loaded config from %s", configPath)
	return &config, nil
}

// Load reads the config file and overlays it onto compiled-in defaults.
func Load() *Config {
	tomlConfig, err := loadTomlConfig()
	if err != nil {
		log.Printf("ERROR: Failed to load config file: %v", err)
		log.Printf("INFO: Using default configuration")
		tomlConfig = &TomlConfig{}
	}

	config := &Config{
		Server: ServerConfig{ListenAddr: DefaultListenAddr},
		AI: AIConfig{
			ModuleName: "openai",
		},
		Redis: RedisConfig{TTL: DefaultRedisTTL},
	}

	if tomlConfig.Server.ListenAddr != "" {
		config.Server.ListenAddr = tomlConfig.Server.ListenAddr
	}

	if tomlConfig.AI.ModuleName != "" {
		config.AI.ModuleName = tomlConfig.AI.ModuleName
	}
	config.AI.APIKey = tomlConfig.AI.APIKey
	config.AI.BaseURL = tomlConfig.AI.BaseURL
	config.AI.Model = tomlConfig.AI.Model

	config.LRCLib.BaseURL = tomlConfig.LRCLib.BaseURL

	config.Redis.Addr = tomlConfig.Redis.Addr
	config.Redis.Password = tomlConfig.Redis.Password
	config.Redis.DB = tomlConfig.Redis.DB
	if tomlConfig.Redis.TTL != "" {
		if ttl, err := time.ParseDuration(tomlConfig.Redis.TTL); err == nil {
			config.Redis.TTL = ttl
		} else {
			log.Printf("WARN: Invalid redis ttl '%s', using default", tomlConfig.Redis.TTL)
		}
	}

	if config.AI.APIKey == "" {
		log.Println("WARN: No AI API key configured; the LLM lyrics fallback and story generation are disabled.")
		log.Printf("WARN: Set ai.api_key in %s to enable them.", getConfigPath())
	}

	return config
}
