package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig configures the MySQL connection.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// JWTConfig configures token signing.
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig configures the SMTP sender for password resets.
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

var (
	// GlobalConfig is the loaded configuration instance.
	GlobalConfig *Config
)

// LoadConfig loads configuration with the following precedence:
// external config file > embedded defaults, with CHAUFFEUR_*
// environment variables overriding both.
// configPath is an optional explicit config file path.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. Embedded defaults first.
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}
	log.Println("loaded embedded default config")

	// 2. Optional external config file to override defaults.
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("warning: cannot read config file %s: %v", configPath, err)
		} else {
			log.Printf("merged external config file: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/chauffeur")
		externalViper.AddConfigPath("$HOME/.chauffeur")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("warning: merging external config failed: %v", err)
			} else {
				log.Printf("merged external config file: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. Environment variable overrides.
	v.SetEnvPrefix("CHAUFFEUR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour

	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig loads the config and panics on failure.
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	return cfg
}

// GetConfig returns the global configuration.
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("config not initialized, call LoadConfig first")
	}
	return GlobalConfig
}

// PrintConfig logs the current configuration, hiding credentials.
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("configuration:")
	log.Printf("  server: %s (mode: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  database: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  email: %v", GlobalConfig.Email.Enabled)
}
