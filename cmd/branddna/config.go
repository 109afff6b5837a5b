package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the daemon's environment knobs. Environment variables
// take precedence over the file; the file takes precedence over built-in
// defaults.
type fileConfig struct {
	Port            string `yaml:"port"`
	DBPath          string `yaml:"db_path"`
	CacheTTLHours   int    `yaml:"cache_ttl_hours"`
	LogLevel        string `yaml:"log_level"`
	VisionModel     string `yaml:"vision_model"`
	ChromeRemoteURL string `yaml:"chrome_remote_url"`
}

func (c *fileConfig) defaults() {
	if c.Port == "" {
		c.Port = "8086"
	}
	if c.DBPath == "" {
		c.DBPath = "db/branddna.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// loadFileConfig reads the YAML config at path. A missing file with an
// explicit path is an error; an empty path just yields the defaults.
func loadFileConfig(path string) (*fileConfig, error) {
	var c fileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("config: parse: %w", err)
		}
	}
	c.defaults()
	return &c, nil
}
