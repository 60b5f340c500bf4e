package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Rabbit RabbitConfig
	Engine EngineConfig
}

type ServerConfig struct {
	Addr string
	Mode string
}

type MongoConfig struct {
	URI      string
	Database string
}

// RabbitConfig is optional; with an empty URI lifecycle events are not
// published.
type RabbitConfig struct {
	URI      string
	Exchange string
}

type EngineConfig struct {
	// LeaderboardSize bounds the top-N leaderboard returned on submit.
	LeaderboardSize int `mapstructure:"leaderboard_size"`
	// PassMarkPercent is the threshold for the submissions pass rate.
	PassMarkPercent float64 `mapstructure:"pass_mark_percent"`
}

// Load reads config.yaml when present and lets environment variables
// (SERVER_ADDR, MONGO_URI, RABBIT_EXCHANGE, ...) override it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "quiz_platform")
	v.SetDefault("rabbit.uri", "")
	v.SetDefault("rabbit.exchange", "quiz.events")
	v.SetDefault("engine.leaderboard_size", 5)
	v.SetDefault("engine.pass_mark_percent", 50.0)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
