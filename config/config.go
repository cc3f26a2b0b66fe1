package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig   `yaml:"logging"`
	Server      ServerConfig    `yaml:"server"`
	GeminiModel string          `yaml:"gemini_model"`
	Storage     StorageConfig   `yaml:"storage"`
	EventBus    EventBusConfig  `yaml:"event_bus"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
	Analytics   AnalyticsConfig `yaml:"analytics"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// StorageConfig selects the key-value backend once at startup.
// Supported backends: memory (default), redis, mongo.
type StorageConfig struct {
	Backend     string `yaml:"backend"`
	MongoDBName string `yaml:"mongo_db_name"`
}

// EventBusConfig selects the analytics event transport.
// Supported backends: memory (default), kafka.
type EventBusConfig struct {
	Backend string `yaml:"backend"`
}

// RateLimitConfig defines per-client generation quotas.
// Values <= 0 fall back to the product defaults (3/min, 30/day).
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

type AnalyticsConfig struct {
	// RetentionDays caps the time-series history kept in the aggregate.
	RetentionDays int `yaml:"retention_days"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-1.5-flash"
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		c.RateLimit.RequestsPerMinute = 3
	}
	if c.RateLimit.RequestsPerDay <= 0 {
		c.RateLimit.RequestsPerDay = 30
	}
	if c.Analytics.RetentionDays <= 0 {
		c.Analytics.RetentionDays = 30
	}
	if c.Storage.MongoDBName == "" {
		c.Storage.MongoDBName = "replypilot"
	}
}

// GeminiAPIKey returns the Gemini API key from env GEMINI_API_KEY.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// RedisURL returns the Redis connection URL from env REDIS_URL.
func RedisURL() string {
	v := os.Getenv("REDIS_URL")
	if v == "" {
		return "redis://localhost:6379"
	}
	return v
}

// MongoURI returns the MongoDB connection URI from env MONGO_URI.
func MongoURI() string {
	v := os.Getenv("MONGO_URI")
	if v == "" {
		return "mongodb://localhost:27017/replypilot"
	}
	return v
}

// KafkaBrokers returns Kafka bootstrap servers from env KAFKA_BOOTSTRAP_SERVERS.
func KafkaBrokers() string {
	return os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
