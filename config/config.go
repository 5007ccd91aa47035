// Copyright 2018 The ezgliding authors. All rights reserverd.

// Package config loads flightboard settings from a YAML file, the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ezgliding/flightboard"
)

// DefaultPath is where the config file is looked up when none is given.
const DefaultPath = "/etc/ezgliding/conf.d/flightboard.conf"

// Config holds the settings of a flightboard run.
type Config struct {
	SourceURL string        `yaml:"source_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	LogLevel  string        `yaml:"log_level"`
	LogFile   string        `yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		SourceURL: flightboard.DefaultSourceURL,
		Timeout:   30 * time.Second,
		UserAgent: flightboard.DefaultUserAgent,
		LogLevel:  "info",
		LogFile:   "flightboard.log",
	}
}

// Load reads path over the defaults, then applies the environment. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	c.SourceURL = getEnv("FLIGHTBOARD_SOURCE_URL", c.SourceURL)
	c.UserAgent = getEnv("FLIGHTBOARD_USER_AGENT", c.UserAgent)
	c.LogLevel = getEnv("FLIGHTBOARD_LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("FLIGHTBOARD_LOG_FILE", c.LogFile)
	if v := os.Getenv("FLIGHTBOARD_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FLIGHTBOARD_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	return nil
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	if c.SourceURL == "" {
		return errors.New("config: source_url is empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: negative timeout %v", c.Timeout)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
