// Package config resolves where the catalog database and the users file live.
//
// Sources, lowest precedence first:
//  1. built-in defaults
//  2. an optional YAML config file
//  3. an optional .env file
//  4. process environment (BOOKVAULT_DB, BOOKVAULT_USERS)
//
// Command-line flags are applied on top by internal/cli.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults, relative to the working directory.
const (
	DefaultDatabase  = "ebookstore.db"
	DefaultUsersFile = "users.txt"
	DefaultEnvFile   = ".env"
)

// Environment variable names.
const (
	EnvDatabase  = "BOOKVAULT_DB"
	EnvUsersFile = "BOOKVAULT_USERS"
)

// Config holds resolved file locations.
type Config struct {
	Database  string `yaml:"database"`
	UsersFile string `yaml:"users_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Database: DefaultDatabase, UsersFile: DefaultUsersFile}
}

// Load resolves the configuration.
//
// configPath may be empty; if set, the file must exist. envFile may be empty
// or missing on disk, in which case it is ignored.
func Load(configPath, envFile string) (Config, error) {
	cfg := Default()

	if configPath != "" {
		if err := cfg.mergeFile(configPath); err != nil {
			return Config{}, err
		}
	}

	dotenv, err := readEnvFile(envFile)
	if err != nil {
		return Config{}, err
	}

	cfg.Database = firstNonEmpty(os.Getenv(EnvDatabase), dotenv[EnvDatabase], cfg.Database)
	cfg.UsersFile = firstNonEmpty(os.Getenv(EnvUsersFile), dotenv[EnvUsersFile], cfg.UsersFile)

	return cfg, nil
}

// mergeFile overlays non-empty values from a YAML file.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	c.Database = firstNonEmpty(fileCfg.Database, c.Database)
	c.UsersFile = firstNonEmpty(fileCfg.UsersFile, c.UsersFile)
	return nil
}

// readEnvFile parses a .env file without touching the process environment.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
