package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Store      StoreConfig      `mapstructure:"store"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	S3         S3Config         `mapstructure:"s3"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Completion CompletionConfig `mapstructure:"completion"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	BasePath        string        `mapstructure:"base_path"` // Shared prefix for every route
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"`
}

// StoreConfig selects the key-value backend: "mongo", "redis" or "memory".
type StoreConfig struct {
	Driver       string `mapstructure:"driver"`
	KeyNamespace string `mapstructure:"key_namespace"`
}

type DatabaseConfig struct {
	URI        string `mapstructure:"uri"`
	Name       string `mapstructure:"name"`
	Collection string `mapstructure:"collection"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type S3Config struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// AuthConfig controls bearer credential checks. With an empty JWTSecret the
// credential is required but passed through unverified.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Required  bool   `mapstructure:"required"`
}

// CompletionConfig configures the OpenAI-compatible completion endpoint.
type CompletionConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// LoadConfig reads configuration from an optional .env file, an optional
// config.yaml in path, and environment variables (server.address -> SERVER_ADDRESS).
func LoadConfig(path string) (config Config, err error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	config.Server.BasePath = normalizeBasePath(config.Server.BasePath)
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.base_path", "/api/v1")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s") // Generation requests wait on the completion service
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("server.max_upload_bytes", 10*1024*1024)
	v.SetDefault("log.mode", "development")
	v.SetDefault("store.driver", "mongo")
	v.SetDefault("store.key_namespace", "")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "lesson_planner")
	v.SetDefault("database.collection", "kv_store")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.required", true)
	v.SetDefault("completion.base_url", "https://api.openai.com")
	v.SetDefault("completion.api_key", "")
	v.SetDefault("completion.model", "gpt-4o-mini")
	v.SetDefault("completion.temperature", 0.7)
	v.SetDefault("completion.max_tokens", 4000)
	v.SetDefault("completion.timeout", "120s")
}

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}
