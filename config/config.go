package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Mercado Pago gateway.
	MPAccessToken     string `mapstructure:"MP_ACCESS_TOKEN"`
	MPBaseURL         string `mapstructure:"MP_BASE_URL"`
	MPWebhookSecret   string `mapstructure:"MP_WEBHOOK_SECRET"`
	MPNotificationURL string `mapstructure:"MP_NOTIFICATION_URL"`

	// Subscription plan pricing (BRL).
	MonthlyPlanPrice float64 `mapstructure:"MONTHLY_PLAN_PRICE"`
	AnnualPlanPrice  float64 `mapstructure:"ANNUAL_PLAN_PRICE"`

	// Booking engine.
	SlotGranularityMin     int `mapstructure:"SLOT_GRANULARITY_MIN"`
	PendingHoldTTLMin      int `mapstructure:"PENDING_HOLD_TTL_MIN"`
	ExpirySweepIntervalMin int `mapstructure:"EXPIRY_SWEEP_INTERVAL_MIN"`
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
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "barberbook")
	viper.SetDefault("MP_BASE_URL", "https://api.mercadopago.com")
	viper.SetDefault("MP_ACCESS_TOKEN", "")
	viper.SetDefault("MP_WEBHOOK_SECRET", "")
	viper.SetDefault("MP_NOTIFICATION_URL", "")
	viper.SetDefault("MONTHLY_PLAN_PRICE", 99.90)
	viper.SetDefault("ANNUAL_PLAN_PRICE", 700.00)
	viper.SetDefault("SLOT_GRANULARITY_MIN", 30)
	viper.SetDefault("PENDING_HOLD_TTL_MIN", 30)
	viper.SetDefault("EXPIRY_SWEEP_INTERVAL_MIN", 15)

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
