package config

import (
	"encoding/json"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Redis    RedisConfig    `json:"redis"`
	Unsplash UnsplashConfig `json:"unsplash"`
	Session  SessionConfig  `json:"session"`
	Workflow WorkflowConfig `json:"workflow"`
}

type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	SSLMode  string `json:"sslmode"`
}

type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

type UnsplashConfig struct {
	BaseURL        string `json:"base_url"`
	AccessKey      string `json:"access_key"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	CacheSize      int    `json:"cache_size"`
}

type SessionConfig struct {
	TTLMinutes        int `json:"ttl_minutes"`
	CatalogTTLSeconds int `json:"catalog_ttl_seconds"`
}

type WorkflowConfig struct {
	SubmitTimeoutSeconds int `json:"submit_timeout_seconds"`
}

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	config.applyEnvOverrides()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Unsplash.BaseURL == "" {
		c.Unsplash.BaseURL = "https://api.unsplash.com"
	}
	if c.Unsplash.TimeoutSeconds <= 0 {
		c.Unsplash.TimeoutSeconds = 10
	}
	if c.Unsplash.CacheSize <= 0 {
		c.Unsplash.CacheSize = 256
	}
	if c.Session.TTLMinutes <= 0 {
		c.Session.TTLMinutes = 120
	}
	if c.Session.CatalogTTLSeconds <= 0 {
		c.Session.CatalogTTLSeconds = 60
	}
	if c.Workflow.SubmitTimeoutSeconds <= 0 {
		c.Workflow.SubmitTimeoutSeconds = 15
	}
}

// Secrets can be injected without touching the config file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("UNSPLASH_ACCESS_KEY"); v != "" {
		c.Unsplash.AccessKey = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

func (c *DatabaseConfig) GetDSN() string {
	return "host=" + c.Host +
		" port=" + strconv.Itoa(c.Port) +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.DBName +
		" sslmode=" + c.SSLMode
}

func (c *UnsplashConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

func (c *SessionConfig) CatalogTTL() time.Duration {
	return time.Duration(c.CatalogTTLSeconds) * time.Second
}

func (c *WorkflowConfig) SubmitTimeout() time.Duration {
	return time.Duration(c.SubmitTimeoutSeconds) * time.Second
}
