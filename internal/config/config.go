// Package config loads the backend configuration from a config file and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address      string `mapstructure:"address"`
	Mode         string `mapstructure:"mode"` // gin mode: debug or release
	AllowOrigins string `mapstructure:"allow_origins"`
	EnablePprof  bool   `mapstructure:"enable_pprof"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DigestConfig struct {
	Timezone        string `mapstructure:"timezone"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
}

type LogConfig struct {
	Format string `mapstructure:"format"` // "human" or "json"
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Digest   DigestConfig   `mapstructure:"digest"`
	Log      LogConfig      `mapstructure:"log"`
}

// Load reads config.yaml from dir if one exists and applies environment
// overrides with the HEMATWOI_ prefix, e.g. HEMATWOI_SERVER_ADDRESS.
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("HEMATWOI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.allow_origins", "")
	v.SetDefault("server.enable_pprof", false)
	v.SetDefault("database.path", "data/hematwoi.db")
	v.SetDefault("digest.timezone", "Asia/Jakarta")
	v.SetDefault("digest.cache_ttl_seconds", 90)
	v.SetDefault("log.format", "")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, the defaults cover everything
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	return &config, nil
}

// Location loads the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Digest.Timezone)
}

// CacheTTL returns the digest cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Digest.CacheTTLSeconds) * time.Second
}
