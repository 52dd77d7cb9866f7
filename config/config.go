// server/config/config.go
package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// --- Sub-structs, mirroring the YAML layout ---

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MongoConfig struct {
	URI     string        `mapstructure:"uri"`
	DBName  string        `mapstructure:"dbName"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// --- Root config ---

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Log    LogConfig    `mapstructure:"log"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

// LoadConfig reads config.yaml from path (optional) and overrides it with
// environment variables. A .env file in the working directory is loaded
// first when present.
func LoadConfig(path string) (config Config, err error) {
	// .env is a development convenience; a missing file is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8000")
	v.SetDefault("mongo.timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("seed.enabled", false)

	v.AutomaticEnv()
	v.BindEnv("server.port", "PORT")
	v.BindEnv("mongo.uri", "DATABASE_URL")
	v.BindEnv("mongo.dbName", "DATABASE_NAME")
	v.BindEnv("mongo.timeout", "DATABASE_TIMEOUT")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("seed.enabled", "SEED_REFERENCE_DATA")

	// Without config.yaml only defaults and env vars are used.
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
