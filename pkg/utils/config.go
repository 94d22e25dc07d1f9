package utils

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var errMissingJWTSecret = errors.New("JWT_SECRET is required")

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	RabbitMQ  RabbitMQConfig
	Email     EmailConfig
	Scheduler SchedulerConfig
	Catalog   CatalogConfig
}

type AppConfig struct {
	Name     string
	Version  string
	Port     string
	Debug    bool
	LogPath  string
	SeedData bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// RedisConfig kosong Addr = redis dimatikan (cache + lock jatuh ke mode lokal)
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type RabbitMQConfig struct {
	URL   string
	Queue string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type SchedulerConfig struct {
	StatusSyncInterval time.Duration
}

type CatalogConfig struct {
	Fallback bool
}

func LoadConfig() (*Config, error) {
	// .env optional, env vars dari OS tetap dipakai
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("APP_NAME", "moviebooking")
	viper.SetDefault("APP_VERSION", "1.0.0")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SEED_DATA", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL", "30s")
	viper.SetDefault("RABBITMQ_QUEUE", "moviebooking")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("STATUS_SYNC_INTERVAL", "5m")
	viper.SetDefault("CATALOG_FALLBACK", false)

	config := &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Version:  viper.GetString("APP_VERSION"),
			Port:     viper.GetString("PORT"),
			Debug:    viper.GetBool("DEBUG"),
			LogPath:  viper.GetString("LOG_PATH"),
			SeedData: viper.GetBool("SEED_DATA"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			CacheTTL: viper.GetDuration("CACHE_TTL"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:   viper.GetString("RABBITMQ_URL"),
			Queue: viper.GetString("RABBITMQ_QUEUE"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Scheduler: SchedulerConfig{
			StatusSyncInterval: viper.GetDuration("STATUS_SYNC_INTERVAL"),
		},
		Catalog: CatalogConfig{
			Fallback: viper.GetBool("CATALOG_FALLBACK"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errMissingJWTSecret
	}

	return config, nil
}
