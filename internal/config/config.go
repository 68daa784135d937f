package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database
	DBPath string `mapstructure:"DB_PATH"`

	// Auth
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	SessionHours int    `mapstructure:"SESSION_HOURS"`

	// Cipher key for at-rest encryption of sensitive fields.
	// AES_KEY takes precedence (64 hex chars = 256 bits); when empty a key is
	// generated once and persisted to KEY_PATH so encrypted data survives restarts.
	AESKeyHex string `mapstructure:"AES_KEY"`
	KeyPath   string `mapstructure:"KEY_PATH"`

	// Rate limiting
	LoginRateLimit int `mapstructure:"LOGIN_RATE_LIMIT"` // attempts/min/IP
	APIRateLimit   int `mapstructure:"API_RATE_LIMIT"`   // requests/min/IP
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 5003)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_PATH", "ajhb_auth.db")
	viper.SetDefault("SESSION_HOURS", 24)
	// Empty defaults so AutomaticEnv can bind them during Unmarshal.
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("AES_KEY", "")
	viper.SetDefault("KEY_PATH", "ajhb_auth.key")
	viper.SetDefault("LOGIN_RATE_LIMIT", 20)
	viper.SetDefault("API_RATE_LIMIT", 1000)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
