package config

import (
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds PostgreSQL database connection settings.
// URL, when set, takes precedence over the individual components.
type DatabaseConfig struct {
	URL                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an object store endpoint is configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// MediaConfig holds the local-disk fallback for uploaded files.
type MediaConfig struct {
	Root string
	URL  string
}

// TelegramConfig holds the notification bot settings.
type TelegramConfig struct {
	BotToken           string
	ChatIDs            []string
	APIURL             string
	TextTimeoutSec     int
	DocumentTimeoutSec int
}

// AdminConfig holds the credentials protecting the review endpoints.
type AdminConfig struct {
	Username string
	Password string
}

// Enabled reports whether both credentials are set.
func (c AdminConfig) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
// FormsRatePerMinute caps submissions per peer address; zero disables the limit.
type AppConfig struct {
	Port                string
	SecretKey           string
	Debug               bool
	AllowedHosts        []string
	TimeZone            string
	SiteRoot            string
	StrictPositionCodes bool
	BodyLimitMB         int
	FormsRatePerMinute  int
	FormsRateBurst      int
	Database            DatabaseConfig
	MinIO               MinIOConfig
	Media               MediaConfig
	Telegram            TelegramConfig
	Admin               AdminConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:                getEnv("PORT", "8080"),
		SecretKey:           getEnv("SECRET_KEY", ""),
		Debug:               getEnvBool("DEBUG", false),
		AllowedHosts:        getEnvList("ALLOWED_HOSTS", []string{"*"}),
		TimeZone:            getEnv("TIME_ZONE", "Asia/Tashkent"),
		SiteRoot:            getEnv("SITE_ROOT", "site"),
		StrictPositionCodes: getEnvBool("STRICT_POSITION_CODES", true),
		BodyLimitMB:         getEnvInt("BODY_LIMIT_MB", 8),
		FormsRatePerMinute:  getEnvInt("FORMS_RATE_PER_MINUTE", 6),
		FormsRateBurst:      getEnvInt("FORMS_RATE_BURST", 3),
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Media: MediaConfig{
			Root: getEnv("MEDIA_ROOT", "media"),
			URL:  getEnv("MEDIA_URL", "/media/"),
		},
		Telegram: TelegramConfig{
			BotToken:           getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatIDs:            getEnvList("TELEGRAM_CHAT_ID", nil),
			APIURL:             getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
			TextTimeoutSec:     getEnvInt("TELEGRAM_TEXT_TIMEOUT_SEC", 10),
			DocumentTimeoutSec: getEnvInt("TELEGRAM_DOCUMENT_TIMEOUT_SEC", 20),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma separated value, dropping blank items.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
