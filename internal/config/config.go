package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	CORS        CORSConfig        `mapstructure:"cors"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LeaderboardConfig struct {
	TopLimit          int    `mapstructure:"top_limit"`
	DefaultDifficulty string `mapstructure:"default_difficulty"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LEADERBOARD")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Database
	viper.BindEnv("database.path", "DATABASE_PATH")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("database.path is required")
	}

	// 未配置时回落到原有的榜单行为
	if cfg.Leaderboard.TopLimit <= 0 {
		cfg.Leaderboard.TopLimit = 10
	}
	if cfg.Leaderboard.DefaultDifficulty == "" {
		cfg.Leaderboard.DefaultDifficulty = "beginner"
	}

	return &cfg, nil
}
