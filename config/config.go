package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream scheduling API.
	SchedulingAPIURL string `mapstructure:"SCHEDULING_API_URL"`
	SchedulingAPIKey string `mapstructure:"SCHEDULING_API_KEY"`
	ServiceID        string `mapstructure:"SERVICE_ID"`
	StaffID          string `mapstructure:"STAFF_ID"`
	DefaultResource  string `mapstructure:"DEFAULT_RESOURCE"`

	// Slot duration requested from upstream, in minutes.
	SlotDurationMin int `mapstructure:"SLOT_DURATION_MIN"`

	// Calendar rendering zone. The same-day check in the merger is pinned to
	// this zone, never to the host default.
	CalendarTimezone string `mapstructure:"CALENDAR_TIMEZONE"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SCHEDULING_API_URL", "https://api.scheduler.example.com/v1/availability")
	viper.SetDefault("SCHEDULING_API_KEY", "")
	viper.SetDefault("SERVICE_ID", "")
	viper.SetDefault("STAFF_ID", "")
	viper.SetDefault("DEFAULT_RESOURCE", "")
	viper.SetDefault("SLOT_DURATION_MIN", 60)
	viper.SetDefault("CALENDAR_TIMEZONE", "UTC")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// CalendarLocation resolves the configured calendar timezone. Falls back to
// UTC if the value is empty or unknown rather than inheriting the host zone.
func CalendarLocation() *time.Location {
	if AppConfig.CalendarTimezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(AppConfig.CalendarTimezone)
	if err != nil {
		log.Printf("Unknown CALENDAR_TIMEZONE %q, falling back to UTC", AppConfig.CalendarTimezone)
		return time.UTC
	}
	return loc
}
