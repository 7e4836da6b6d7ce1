package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env and
// optionally from a file).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Storage StorageConfig
	Remote  RemoteConfig
	Notify  NotifyConfig
	Export  ExportConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig employee-auth token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// StorageConfig selects and configures the persistence driver.
// Driver is one of: memory, file, postgres, redis. The file driver is the
// default and needs no external service for a single-node deployment.
type StorageConfig struct {
	Driver string

	// file driver
	DataDir string

	// postgres driver. If DatabaseURL is set it is used verbatim.
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string

	// redis driver
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// DSN builds the PostgreSQL connection string when DatabaseURL is empty.
func (c StorageConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// RemoteConfig settings for the stub backend client. Latency stands in for a
// future real network round-trip on delete.
type RemoteConfig struct {
	Latency time.Duration
}

// NotifyConfig toast notification timings.
type NotifyConfig struct {
	Duration time.Duration // visible phase before auto-dismiss
	Fade     time.Duration // fixed exit animation window
}

// ExportConfig output directory for spreadsheet/document exports.
type ExportConfig struct {
	Dir string
}

// Load reads the configuration from environment variables (and optionally a
// .env / config.env file). Env vars win. Expected names: APP_ENV, HTTP_PORT,
// JWT_SECRET, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore if absent

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignore if absent

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "warehouse-backoffice"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "warehouse-backoffice"),
		},
		Storage: StorageConfig{
			Driver:        getString(v, "STORAGE_DRIVER", "file"),
			DataDir:       getString(v, "STORAGE_DATA_DIR", "./data"),
			DatabaseURL:   getString(v, "DATABASE_URL", ""),
			Host:          getString(v, "DB_HOST", "localhost"),
			Port:          getInt(v, "DB_PORT", 5432),
			User:          getString(v, "DB_USER", "postgres"),
			Password:      getString(v, "DB_PASSWORD", ""),
			DBName:        getString(v, "DB_NAME", "warehouse"),
			SSLMode:       getString(v, "DB_SSLMODE", "disable"),
			RedisAddr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			RedisPassword: getString(v, "REDIS_PASSWORD", ""),
			RedisDB:       getInt(v, "REDIS_DB", 0),
		},
		Remote: RemoteConfig{
			Latency: time.Duration(getInt(v, "REMOTE_LATENCY_MS", 1000)) * time.Millisecond,
		},
		Notify: NotifyConfig{
			Duration: time.Duration(getInt(v, "NOTIFY_DURATION_MS", 3000)) * time.Millisecond,
			Fade:     time.Duration(getInt(v, "NOTIFY_FADE_MS", 300)) * time.Millisecond,
		},
		Export: ExportConfig{
			Dir: getString(v, "EXPORT_DIR", "./exports"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
