package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Admin    AdminConfig
	Overlay  OverlayConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ListingCacheTTL   time.Duration
	StatsCacheTTL     time.Duration
	SelectionTTL      time.Duration
	BuildingsCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

// AdminConfig - настройки доступа к деструктивным операциям админки
type AdminConfig struct {
	// PasswordHash - bcrypt-хеш пароля администратора
	PasswordHash string
}

// OverlayConfig - настройки интерактивных карт
type OverlayConfig struct {
	SiteMapPath string
	Debounce    time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return fromViper(viper.GetViper()), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ListingCacheTTL:   time.Duration(v.GetInt("LISTING_CACHE_TTL")) * time.Second,
			StatsCacheTTL:     time.Duration(v.GetInt("STATS_CACHE_TTL")) * time.Second,
			SelectionTTL:      time.Duration(v.GetInt("SELECTION_TTL")) * time.Second,
			BuildingsCacheTTL: time.Duration(v.GetInt("BUILDINGS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        v.GetInt("WORKER_MAX_RETRIES"),
		},
		Admin: AdminConfig{
			PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		},
		Overlay: OverlayConfig{
			SiteMapPath: v.GetString("SITE_MAP_PATH"),
			Debounce:    time.Duration(v.GetInt("OVERLAY_DEBOUNCE_MS")) * time.Millisecond,
		},
	}

	applyDefaults(cfg)
	return cfg
}

// applyDefaults - значения по умолчанию для незаданных параметров
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.CORSOrigins == "" {
		cfg.Server.CORSOrigins = "http://localhost:3000,http://localhost:5173"
	}
	if cfg.Cache.ListingCacheTTL == 0 {
		cfg.Cache.ListingCacheTTL = 5 * time.Minute
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = time.Hour
	}
	if cfg.Cache.SelectionTTL == 0 {
		cfg.Cache.SelectionTTL = 24 * time.Hour
	}
	if cfg.Cache.BuildingsCacheTTL == 0 {
		cfg.Cache.BuildingsCacheTTL = 10 * time.Minute
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "listing-cache-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Overlay.SiteMapPath == "" {
		cfg.Overlay.SiteMapPath = "configs/site_map.yaml"
	}
	if cfg.Overlay.Debounce == 0 {
		cfg.Overlay.Debounce = 100 * time.Millisecond
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
