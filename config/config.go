package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (availability cache).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Upstream reservation service.
	ReservationBaseURL string `mapstructure:"RESERVATION_BASE_URL"`
	DirectoryBaseURL   string `mapstructure:"DIRECTORY_BASE_URL"`
	UpstreamTimeoutSec int    `mapstructure:"UPSTREAM_TIMEOUT_SEC"`
	SeatsCacheTTLSec   int    `mapstructure:"SEATS_CACHE_TTL_SEC"`
	FloorsCacheTTLSec  int    `mapstructure:"FLOORS_CACHE_TTL_SEC"`

	// Optimizer tuning. The defaults were chosen empirically; they are
	// surfaced here so deployments can adjust without a rebuild.
	MaxBookingMinutes  int     `mapstructure:"MAX_BOOKING_MINUTES"`
	MaxGapMinutes      int     `mapstructure:"MAX_GAP_MINUTES"`
	CoverageMinPercent float64 `mapstructure:"COVERAGE_MIN_PERCENT"`
	MaxOptions         int     `mapstructure:"MAX_OPTIONS"`

	// Executor pacing between consecutive reservation calls.
	BookingPacingMs int `mapstructure:"BOOKING_PACING_MS"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("RESERVATION_BASE_URL", "https://reservation.affluences.com/api")
	viper.SetDefault("DIRECTORY_BASE_URL", "https://api.affluences.com/app/v3")
	viper.SetDefault("UPSTREAM_TIMEOUT_SEC", 10)
	viper.SetDefault("SEATS_CACHE_TTL_SEC", 30)
	viper.SetDefault("FLOORS_CACHE_TTL_SEC", 300)
	viper.SetDefault("MAX_BOOKING_MINUTES", 240)
	viper.SetDefault("MAX_GAP_MINUTES", 60)
	viper.SetDefault("COVERAGE_MIN_PERCENT", 80)
	viper.SetDefault("MAX_OPTIONS", 5)
	viper.SetDefault("BOOKING_PACING_MS", 1000)

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
