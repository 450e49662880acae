package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable via STORAGE_BACKEND.
const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

type Config struct {
	// Server Settings
	AppPort string
	Host    string
	Env     string

	// Storage backend: memory (demo, non-persistent) or mysql
	StorageBackend string
	DBHost         string
	DBPort         int
	DBUser         string
	DBPassword     string
	DBName         string

	// JWT Settings
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Bootstrap admin account
	AdminEmail    string
	AdminPassword string

	// CORS Settings
	CORSAllowOrigins []string

	// Rate limiting on /api
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// LoadConfig reads .env, an optional config.yaml, and the environment.
// Environment variables win over file values.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	viper.SetConfigFile("config.yaml")
	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config.yaml found, relying on environment")
	}
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORAGE_BACKEND", StorageMySQL)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "jalai")
	viper.SetDefault("DB_NAME", "jalai")
	viper.SetDefault("JWT_ACCESS_EXPIRES_IN", "15m")
	viper.SetDefault("JWT_REFRESH_EXPIRES_IN", "168h")
	viper.SetDefault("ADMIN_EMAIL", "admin@jalai.com")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT_MAX", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW", "15m")

	config := &Config{
		AppPort: viper.GetString("PORT"),
		Host:    viper.GetString("HOST"),
		Env:     viper.GetString("APP_ENV"),

		StorageBackend: viper.GetString("STORAGE_BACKEND"),
		DBHost:         viper.GetString("DB_HOST"),
		DBPort:         viper.GetInt("DB_PORT"),
		DBUser:         viper.GetString("DB_USER"),
		DBPassword:     viper.GetString("DB_PASSWORD"),
		DBName:         viper.GetString("DB_NAME"),

		JWTSecret:        viper.GetString("JWT_SECRET"),
		JWTAccessExpiry:  viper.GetDuration("JWT_ACCESS_EXPIRES_IN"),
		JWTRefreshExpiry: viper.GetDuration("JWT_REFRESH_EXPIRES_IN"),

		AdminEmail:    viper.GetString("ADMIN_EMAIL"),
		AdminPassword: viper.GetString("ADMIN_PASSWORD"),

		CORSAllowOrigins: strings.Split(viper.GetString("CORS_ALLOW_ORIGINS"), ","),

		RateLimitMax:    viper.GetInt("RATE_LIMIT_MAX"),
		RateLimitWindow: viper.GetDuration("RATE_LIMIT_WINDOW"),
	}

	if config.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	return config
}
