package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	DB         DBConfig
	JWT        JWTConfig
	S3         S3Config
	Redis      RedisConfig
	Routing    LLMProviderConfig
	Generation LLMProviderConfig
	Embedding  EmbeddingConfig
	Pinecone   PineconeConfig
	QnA        QnAConfig
	CORS       CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// RedisConfig holds the embedding-cache Redis settings. An empty Address
// disables caching and embeddings go straight to the provider.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LLMProviderConfig holds settings for a single text generation provider.
// Routing and Generation each carry one: routing uses a small, fast model
// with a tight output ceiling; generation uses the full answering model.
type LLMProviderConfig struct {
	Provider    string  `mapstructure:"provider"`
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	TimeoutSecs int     `mapstructure:"timeout_secs"`
}

// EmbeddingConfig holds settings for the embedding provider.
type EmbeddingConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	BaseURL     string `mapstructure:"base_url"`
	Model       string `mapstructure:"model"`
	Dimensions  int    `mapstructure:"dimensions"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// PineconeConfig holds the vector index settings.
type PineconeConfig struct {
	APIKey      string `mapstructure:"api_key"`
	BaseURL     string `mapstructure:"base_url"`
	IndexName   string `mapstructure:"index_name"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// QnAConfig holds question-answering pipeline settings.
type QnAConfig struct {
	MaxContextChars int `mapstructure:"max_context_chars"`
	TopK            int `mapstructure:"top_k"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the SMARTDOCS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SMARTDOCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "smartdocs")
	v.SetDefault("db.password", "smartdocs_secret")
	v.SetDefault("db.name", "smartdocs_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "smartdocs")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "smartdocs-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Redis defaults (empty address disables the embedding cache)
	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Routing LLM defaults — small model, zero temperature, tight ceiling
	v.SetDefault("routing.provider", "groq")
	v.SetDefault("routing.api_key", "")
	v.SetDefault("routing.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("routing.model", "llama-3.1-8b-instant")
	v.SetDefault("routing.temperature", 0.0)
	v.SetDefault("routing.max_tokens", 150)
	v.SetDefault("routing.timeout_secs", 30)

	// Generation LLM defaults
	v.SetDefault("generation.provider", "groq")
	v.SetDefault("generation.api_key", "")
	v.SetDefault("generation.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("generation.model", "llama-3.3-70b-versatile")
	v.SetDefault("generation.temperature", 0.2)
	v.SetDefault("generation.max_tokens", 1024)
	v.SetDefault("generation.timeout_secs", 60)

	// Embedding defaults
	v.SetDefault("embedding.provider", "google")
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("embedding.model", "gemini-embedding-001")
	v.SetDefault("embedding.dimensions", 3072)
	v.SetDefault("embedding.timeout_secs", 30)

	// Pinecone defaults
	v.SetDefault("pinecone.api_key", "")
	v.SetDefault("pinecone.base_url", "")
	v.SetDefault("pinecone.index_name", "smartdocs")
	v.SetDefault("pinecone.timeout_secs", 30)

	// QnA defaults
	v.SetDefault("qna.max_context_chars", 8000)
	v.SetDefault("qna.top_k", 3)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "SMARTDOCS_SERVER_PORT",
		"server.read_timeout":      "SMARTDOCS_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "SMARTDOCS_SERVER_WRITE_TIMEOUT",
		"server.environment":       "SMARTDOCS_SERVER_ENVIRONMENT",
		"db.host":                  "SMARTDOCS_DB_HOST",
		"db.port":                  "SMARTDOCS_DB_PORT",
		"db.user":                  "SMARTDOCS_DB_USER",
		"db.password":              "SMARTDOCS_DB_PASSWORD",
		"db.name":                  "SMARTDOCS_DB_NAME",
		"db.sslmode":               "SMARTDOCS_DB_SSLMODE",
		"db.max_open":              "SMARTDOCS_DB_MAX_OPEN",
		"db.max_idle":              "SMARTDOCS_DB_MAX_IDLE",
		"jwt.secret":               "SMARTDOCS_JWT_SECRET",
		"jwt.access_expiry":        "SMARTDOCS_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":       "SMARTDOCS_JWT_REFRESH_EXPIRY",
		"jwt.issuer":               "SMARTDOCS_JWT_ISSUER",
		"s3.region":                "SMARTDOCS_S3_REGION",
		"s3.bucket":                "SMARTDOCS_S3_BUCKET",
		"s3.endpoint":              "SMARTDOCS_S3_ENDPOINT",
		"s3.access_key":            "SMARTDOCS_S3_ACCESS_KEY",
		"s3.secret_key":            "SMARTDOCS_S3_SECRET_KEY",
		"s3.max_file_size_mb":      "SMARTDOCS_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":        "SMARTDOCS_S3_PRESIGN_EXPIRY",
		"redis.address":            "SMARTDOCS_REDIS_ADDRESS",
		"redis.password":           "SMARTDOCS_REDIS_PASSWORD",
		"redis.db":                 "SMARTDOCS_REDIS_DB",
		"routing.provider":         "SMARTDOCS_ROUTING_PROVIDER",
		"routing.api_key":          "SMARTDOCS_ROUTING_API_KEY",
		"routing.base_url":         "SMARTDOCS_ROUTING_BASE_URL",
		"routing.model":            "SMARTDOCS_ROUTING_MODEL",
		"routing.temperature":      "SMARTDOCS_ROUTING_TEMPERATURE",
		"routing.max_tokens":       "SMARTDOCS_ROUTING_MAX_TOKENS",
		"routing.timeout_secs":     "SMARTDOCS_ROUTING_TIMEOUT_SECS",
		"generation.provider":      "SMARTDOCS_GENERATION_PROVIDER",
		"generation.api_key":       "SMARTDOCS_GENERATION_API_KEY",
		"generation.base_url":      "SMARTDOCS_GENERATION_BASE_URL",
		"generation.model":         "SMARTDOCS_GENERATION_MODEL",
		"generation.temperature":   "SMARTDOCS_GENERATION_TEMPERATURE",
		"generation.max_tokens":    "SMARTDOCS_GENERATION_MAX_TOKENS",
		"generation.timeout_secs":  "SMARTDOCS_GENERATION_TIMEOUT_SECS",
		"embedding.provider":       "SMARTDOCS_EMBEDDING_PROVIDER",
		"embedding.api_key":        "SMARTDOCS_EMBEDDING_API_KEY",
		"embedding.base_url":       "SMARTDOCS_EMBEDDING_BASE_URL",
		"embedding.model":          "SMARTDOCS_EMBEDDING_MODEL",
		"embedding.dimensions":     "SMARTDOCS_EMBEDDING_DIMENSIONS",
		"embedding.timeout_secs":   "SMARTDOCS_EMBEDDING_TIMEOUT_SECS",
		"pinecone.api_key":         "SMARTDOCS_PINECONE_API_KEY",
		"pinecone.base_url":        "SMARTDOCS_PINECONE_BASE_URL",
		"pinecone.index_name":      "SMARTDOCS_PINECONE_INDEX_NAME",
		"pinecone.timeout_secs":    "SMARTDOCS_PINECONE_TIMEOUT_SECS",
		"qna.max_context_chars":    "SMARTDOCS_QNA_MAX_CONTEXT_CHARS",
		"qna.top_k":                "SMARTDOCS_QNA_TOP_K",
		"cors.allowed_origins":     "SMARTDOCS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SMARTDOCS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SMARTDOCS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Redis = RedisConfig{
		Address:  v.GetString("redis.address"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
	cfg.Routing = LLMProviderConfig{
		Provider:    v.GetString("routing.provider"),
		APIKey:      v.GetString("routing.api_key"),
		BaseURL:     v.GetString("routing.base_url"),
		Model:       v.GetString("routing.model"),
		Temperature: v.GetFloat64("routing.temperature"),
		MaxTokens:   v.GetInt("routing.max_tokens"),
		TimeoutSecs: v.GetInt("routing.timeout_secs"),
	}
	cfg.Generation = LLMProviderConfig{
		Provider:    v.GetString("generation.provider"),
		APIKey:      v.GetString("generation.api_key"),
		BaseURL:     v.GetString("generation.base_url"),
		Model:       v.GetString("generation.model"),
		Temperature: v.GetFloat64("generation.temperature"),
		MaxTokens:   v.GetInt("generation.max_tokens"),
		TimeoutSecs: v.GetInt("generation.timeout_secs"),
	}
	cfg.Embedding = EmbeddingConfig{
		Provider:    v.GetString("embedding.provider"),
		APIKey:      v.GetString("embedding.api_key"),
		BaseURL:     v.GetString("embedding.base_url"),
		Model:       v.GetString("embedding.model"),
		Dimensions:  v.GetInt("embedding.dimensions"),
		TimeoutSecs: v.GetInt("embedding.timeout_secs"),
	}
	cfg.Pinecone = PineconeConfig{
		APIKey:      v.GetString("pinecone.api_key"),
		BaseURL:     v.GetString("pinecone.base_url"),
		IndexName:   v.GetString("pinecone.index_name"),
		TimeoutSecs: v.GetInt("pinecone.timeout_secs"),
	}
	cfg.QnA = QnAConfig{
		MaxContextChars: v.GetInt("qna.max_context_chars"),
		TopK:            v.GetInt("qna.top_k"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
