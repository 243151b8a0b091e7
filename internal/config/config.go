package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds application level configuration loaded from a YAML file
// with environment variable overrides.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	MySQL  MySQLConfig  `yaml:"mysql"`
	Redis  RedisConfig  `yaml:"redis"`
	SMTP   SMTPConfig   `yaml:"smtp"`
	JWT    JWTConfig    `yaml:"jwt"`
}

type ServerConfig struct {
	Port        string `yaml:"port"`
	SwaggerHost string `yaml:"swagger_host"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type MySQLConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SMTPConfig configures the outbound mail transport.
type SMTPConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	From           string `yaml:"from"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxRetries     int    `yaml:"max_retries"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// Load builds Config from an optional YAML file and environment overrides.
// An empty path falls back to the default search locations.
func Load(configFile string) *Config {
	c := &Config{
		Server: ServerConfig{Port: "8080"},
		Log:    LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		MySQL:  MySQLConfig{DSN: "user:password@tcp(localhost:3306)/lionreport?charset=utf8mb4&parseTime=True&loc=Local"},
		Redis:  RedisConfig{Addr: "localhost:6379"},
		SMTP:   SMTPConfig{Host: "localhost", Port: 587, From: "noreply@example.com", TimeoutSeconds: 15, MaxRetries: 3},
		JWT:    JWTConfig{Secret: "change-me"},
	}

	paths := []string{"etc/config.yaml", "/etc/lionreport/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Server.Port, "SERVER_PORT")
	envOverride(&c.Server.SwaggerHost, "SWAGGER_HOST")
	envOverride(&c.MySQL.DSN, "MYSQL_DSN")
	envOverride(&c.Redis.Addr, "REDIS_ADDR")
	envOverride(&c.Redis.Password, "REDIS_PASSWORD")
	envOverrideInt(&c.Redis.DB, "REDIS_DB")
	envOverride(&c.SMTP.Host, "SMTP_HOST")
	envOverrideInt(&c.SMTP.Port, "SMTP_PORT")
	envOverride(&c.SMTP.Username, "SMTP_USERNAME")
	envOverride(&c.SMTP.Password, "SMTP_PASSWORD")
	envOverride(&c.SMTP.From, "SMTP_FROM")
	envOverride(&c.JWT.Secret, "JWT_SECRET")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")

	return c
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Server.Port)
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}
