package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Polygon  PolygonConfig
	Snapshot SnapshotConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
	Host string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers        []string
	SnapshotTopic  string
	PortfolioTopic string
	GroupID        string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	CacheTTL time.Duration
}

// PolygonConfig holds market-data ingestion configuration
type PolygonConfig struct {
	APIKey            string
	RequestsPerMinute int
	BackfillDays      int
}

// SnapshotConfig holds valuation run scheduling configuration
type SnapshotConfig struct {
	Interval time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "portfoliovaluation"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Brokers:        strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			SnapshotTopic:  getEnv("KAFKA_SNAPSHOT_TOPIC", "portfolio-snapshots-recorded"),
			PortfolioTopic: getEnv("KAFKA_PORTFOLIO_TOPIC", "portfolio-snapshots"),
			GroupID:        getEnv("KAFKA_GROUP_ID", "portfolio-valuation"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			CacheTTL: getEnvDuration("REDIS_CACHE_TTL", 10*time.Second),
		},
		Polygon: PolygonConfig{
			APIKey:            getEnv("POLYGON_API_KEY", ""),
			RequestsPerMinute: getEnvInt("POLYGON_REQUESTS_PER_MINUTE", 5),
			BackfillDays:      getEnvInt("POLYGON_BACKFILL_DAYS", 30),
		},
		Snapshot: SnapshotConfig{
			Interval: getEnvDuration("SNAPSHOT_INTERVAL", time.Hour),
		},
	}
}

// ConnectionString returns the PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.DBName + "?sslmode=" + d.SSLMode
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
