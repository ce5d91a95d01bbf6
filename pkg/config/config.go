package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// EnableDBCheck pings the database on startup. Left off by default so the
	// app can come up and serve demo data when the store is unreachable.
	EnableDBCheck bool

	// Hosted chat model. The assistant counts as configured only when both
	// OpenAIEndpoint and OpenAIDeployment are set.
	OpenAIEndpoint   string
	OpenAIDeployment string
	OpenAIAPIKey     string
	OpenAIAPIVersion string
	OpenAITimeout    time.Duration

	// Demo identities used where the original system has no authentication.
	DefaultUserID     int
	DefaultReviewerID int

	ChatRateLimitPerMin int64
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("OPENAI_ENDPOINT", "")
	viper.SetDefault("OPENAI_DEPLOYMENT", "")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_API_VERSION", "2024-06-01")
	viper.SetDefault("OPENAI_TIMEOUT", "60s")
	viper.SetDefault("DEFAULT_USER_ID", 1)
	viper.SetDefault("DEFAULT_REVIEWER_ID", 2)
	viper.SetDefault("CHAT_RATE_LIMIT_PER_MIN", 30)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL environment variable not set. Endpoints will serve demo data.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.OpenAIEndpoint = viper.GetString("OPENAI_ENDPOINT")
	cfg.OpenAIDeployment = viper.GetString("OPENAI_DEPLOYMENT")
	cfg.OpenAIAPIKey = viper.GetString("OPENAI_API_KEY")
	cfg.OpenAIAPIVersion = viper.GetString("OPENAI_API_VERSION")
	if cfg.OpenAIEndpoint == "" || cfg.OpenAIDeployment == "" {
		log.Println("Warning: OPENAI_ENDPOINT/OPENAI_DEPLOYMENT not set. Chat will return placeholder responses.")
	}

	timeoutStr := viper.GetString("OPENAI_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 60 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for OPENAI_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.OpenAITimeout = timeout

	cfg.DefaultUserID = viper.GetInt("DEFAULT_USER_ID")
	if cfg.DefaultUserID <= 0 {
		cfg.DefaultUserID = 1
	}
	cfg.DefaultReviewerID = viper.GetInt("DEFAULT_REVIEWER_ID")
	if cfg.DefaultReviewerID <= 0 {
		cfg.DefaultReviewerID = 2
	}

	cfg.ChatRateLimitPerMin = viper.GetInt64("CHAT_RATE_LIMIT_PER_MIN")
	if cfg.ChatRateLimitPerMin <= 0 {
		cfg.ChatRateLimitPerMin = 30
	}

	return cfg, nil
}
