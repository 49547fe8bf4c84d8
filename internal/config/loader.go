package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// TOMLConfig represents the TOML configuration file structure
type TOMLConfig struct {
	HTTP    TOMLHTTPConfig    `toml:"http"`
	MongoDB TOMLMongoDBConfig `toml:"mongodb"`
	DevMode bool              `toml:"dev_mode"`
}

// TOMLHTTPConfig represents HTTP configuration in TOML
type TOMLHTTPConfig struct {
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// TOMLMongoDBConfig represents MongoDB configuration in TOML
type TOMLMongoDBConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// ConfigPaths are the standard locations searched for a config file
var ConfigPaths = []string{
	"./config.toml",
	"./config/config.toml",
	"/etc/supervision/config.toml",
}

// LoadFromFile loads configuration from a TOML file
func LoadFromFile(path string) (*Config, error) {
	var tomlCfg TOMLConfig

	if _, err := toml.DecodeFile(path, &tomlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return tomlConfigToConfig(&tomlCfg), nil
}

// LoadWithFile loads configuration from file first, then overrides with env vars
func LoadWithFile() (*Config, error) {
	// Start with defaults from environment
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	// Check for explicit config file path
	configPath := os.Getenv("SUPERVISION_CONFIG")
	if configPath == "" {
		for _, path := range ConfigPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
	}

	// If no config file found, just use env vars
	if configPath == "" {
		return cfg, nil
	}

	fileCfg, err := LoadFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	// Merge: file config as base, env vars override
	return mergeConfigs(fileCfg, cfg), nil
}

func tomlConfigToConfig(tc *TOMLConfig) *Config {
	return &Config{
		HTTP: HTTPConfig{
			Port:        tc.HTTP.Port,
			CORSOrigins: tc.HTTP.CORSOrigins,
		},
		MongoDB: MongoDBConfig{
			URI:      tc.MongoDB.URI,
			Database: tc.MongoDB.Database,
		},
		DevMode: tc.DevMode,
	}
}

// mergeConfigs overlays env values onto the file config. Only variables
// that are actually set in the environment override the file; otherwise
// Load()'s defaults would clobber every file value.
func mergeConfigs(base, envCfg *Config) *Config {
	merged := *base

	if _, ok := os.LookupEnv("HTTP_PORT"); ok {
		merged.HTTP.Port = envCfg.HTTP.Port
	}
	if _, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		merged.HTTP.CORSOrigins = envCfg.HTTP.CORSOrigins
	}
	if _, ok := os.LookupEnv("MONGODB_URI"); ok {
		merged.MongoDB.URI = envCfg.MongoDB.URI
	}
	if _, ok := os.LookupEnv("MONGODB_DATABASE"); ok {
		merged.MongoDB.Database = envCfg.MongoDB.Database
	}
	if _, ok := os.LookupEnv("SUPERVISION_DEV"); ok {
		merged.DevMode = envCfg.DevMode
	}

	// File values may be partial; fall back to defaults for gaps
	if merged.HTTP.Port == 0 {
		merged.HTTP.Port = envCfg.HTTP.Port
	}
	if merged.MongoDB.URI == "" {
		merged.MongoDB.URI = envCfg.MongoDB.URI
	}
	if merged.MongoDB.Database == "" {
		merged.MongoDB.Database = envCfg.MongoDB.Database
	}
	if len(merged.HTTP.CORSOrigins) == 0 {
		merged.HTTP.CORSOrigins = envCfg.HTTP.CORSOrigins
	}

	return &merged
}
