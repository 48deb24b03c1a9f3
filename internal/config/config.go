// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Auction     AuctionConfig     `mapstructure:"auction"`
	Wallet      WalletConfig      `mapstructure:"wallet"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	Fanout      FanoutConfig      `mapstructure:"fanout"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// AuctionConfig holds the bidding rule parameters. MinIncrement and the
// anti-snipe window/extension are fixed per deployment.
type AuctionConfig struct {
	MinIncrement   int64         `mapstructure:"min_increment"`
	SnipeWindow    time.Duration `mapstructure:"snipe_window"`
	SnipeExtension time.Duration `mapstructure:"snipe_extension"`
	MaxBidRetries  int           `mapstructure:"max_bid_retries"`
	SweepInterval  time.Duration `mapstructure:"sweep_interval"`
}

// WalletConfig holds balance-related configuration.
type WalletConfig struct {
	StartingBalance int64 `mapstructure:"starting_balance"`
}

// LeaderboardConfig holds read-path configuration.
type LeaderboardConfig struct {
	DefaultTop int `mapstructure:"default_top"`
}

// FanoutConfig holds event delivery configuration.
type FanoutConfig struct {
	SubscriberBuffer int `mapstructure:"subscriber_buffer"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the given directory; env vars override
// file values using underscore-separated uppercase keys (SERVER_PORT,
// AUCTION_MIN_INCREMENT, ...). A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration without touching the filesystem.
// Used by tests and as a fallback when no config file exists.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// The defaults are compiled in; failing to decode them is a bug.
		panic(fmt.Sprintf("config: failed to unmarshal defaults: %v", err))
	}
	return &cfg
}

// setDefaults sets default configuration values. The 1-coin increment and
// 3-minute anti-snipe values match the marketplace's published bidding rules.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)

	v.SetDefault("auction.min_increment", 1)
	v.SetDefault("auction.snipe_window", "3m")
	v.SetDefault("auction.snipe_extension", "3m")
	v.SetDefault("auction.max_bid_retries", 3)
	v.SetDefault("auction.sweep_interval", "15s")

	v.SetDefault("wallet.starting_balance", 0)

	v.SetDefault("leaderboard.default_top", 10)

	v.SetDefault("fanout.subscriber_buffer", 16)
}
