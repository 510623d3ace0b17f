package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Port     int    `mapstructure:"PORT" validate:"min=1,max=65535"`
	LogLevel string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	YoutubeAPIKey string `mapstructure:"YOUTUBE_API_KEY"`
	OpenAIAPIKey  string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`

	StoreBackend       string `mapstructure:"STORE_BACKEND" validate:"oneof=memory postgres sqlite"`
	DatabaseURL        string `mapstructure:"DATABASE_URL" validate:"required_if=StoreBackend postgres"`
	DatabaseSSLRelaxed bool   `mapstructure:"DATABASE_SSL_RELAXED"`
	SQLitePath         string `mapstructure:"SQLITE_PATH" validate:"required_if=StoreBackend sqlite"`
	SeedCatalog        bool   `mapstructure:"SEED_CATALOG"`

	StaticDir            string `mapstructure:"STATIC_DIR"`
	ThumbnailURLTemplate string `mapstructure:"THUMBNAIL_URL_TEMPLATE" validate:"required,contains=%s"`
	CORSAllowedOrigins   string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	MinifluxEndpoint string        `mapstructure:"MINIFLUX_ENDPOINT" validate:"omitempty,url"`
	MinifluxAPIKey   string        `mapstructure:"MINIFLUX_APIKEY"`
	FeedInterval     time.Duration `mapstructure:"FEED_INTERVAL" validate:"gt=0"`
}

// Secrets are left out when the config is logged.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("port", c.Port),
		slog.String("log_level", c.LogLevel),
		slog.Bool("youtube_enrichment", c.YoutubeAPIKey != ""),
		slog.Bool("openai_analysis", c.OpenAIAPIKey != ""),
		slog.String("store_backend", c.StoreBackend),
		slog.Bool("seed_catalog", c.SeedCatalog),
		slog.String("static_dir", c.StaticDir),
		slog.Bool("feed_import", c.MinifluxEndpoint != ""),
	)
}

func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	typ := reflect.TypeOf(c)
	for i := 0; i < typ.NumField(); i++ {
		if tag := typ.Field(i).Tag.Get("mapstructure"); tag != "" {
			viper.BindEnv(tag)
		}
	}
}

func LoadConfig() (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("PORT", 3000)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("STORE_BACKEND", BackendMemory)
	viper.SetDefault("DATABASE_SSL_RELAXED", true)
	viper.SetDefault("SQLITE_PATH", "videos.db")
	viper.SetDefault("SEED_CATALOG", true)
	viper.SetDefault("STATIC_DIR", "public")
	viper.SetDefault("THUMBNAIL_URL_TEMPLATE", "https://i.ytimg.com/vi/%s/hqdefault.jpg")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("FEED_INTERVAL", time.Minute)

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
