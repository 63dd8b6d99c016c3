package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	App       AppConfig       `yaml:"app"`
	AI        AIConfig        `yaml:"ai"`
	Email     EmailConfig     `yaml:"email"`
	Cache     CacheConfig     `yaml:"cache"`
	Points    PointsConfig    `yaml:"points"`
	Export    ExportConfig    `yaml:"export"`
	Web       WebConfig       `yaml:"web"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"authorization,x-client-info,apikey,content-type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password-reset settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"ecoideias"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
	ResetTokenTTL  time.Duration `yaml:"reset_token_ttl"  env:"AUTH_RESET_TOKEN_TTL"  env-default:"1h"`
	CookieName     string        `yaml:"cookie_name"      env:"AUTH_COOKIE_NAME"      env-default:"access_token"`

	// TokenCleanupInterval is how often the server purges used and expired
	// reset tokens. Zero disables the sweep.
	TokenCleanupInterval time.Duration `yaml:"token_cleanup_interval" env:"AUTH_TOKEN_CLEANUP_INTERVAL" env-default:"1h"`
}

// AppConfig holds public-facing application settings.
type AppConfig struct {
	Name    string `yaml:"name"     env:"APP_NAME"     env-default:"Eco Ideias"`
	BaseURL string `yaml:"base_url" env:"APP_BASE_URL" env-default:"http://localhost:8080"`
}

// AIConfig selects and tunes the language model provider.
// An empty Provider disables the AI endpoints.
type AIConfig struct {
	Provider              string  `yaml:"provider"               env:"AI_PROVIDER"               env-default:""`
	APIKey                string  `yaml:"api_key"                env:"AI_API_KEY"`
	Model                 string  `yaml:"model"                  env:"AI_MODEL"`
	BaseURL               string  `yaml:"base_url"               env:"AI_BASE_URL"`
	MaxTokens             int     `yaml:"max_tokens"             env:"AI_MAX_TOKENS"             env-default:"1024"`
	SuggestionTemperature float64 `yaml:"suggestion_temperature" env:"AI_SUGGESTION_TEMPERATURE" env-default:"0.7"`
	SimilarityTemperature float64 `yaml:"similarity_temperature" env:"AI_SIMILARITY_TEMPERATURE" env-default:"0.3"`
	ChatTemperature       float64 `yaml:"chat_temperature"       env:"AI_CHAT_TEMPERATURE"       env-default:"0.7"`
	RequestsPerMinute     int     `yaml:"requests_per_minute"    env:"AI_REQUESTS_PER_MINUTE"    env-default:"20"`
}

// Enabled reports whether an AI provider is configured.
func (c AIConfig) Enabled() bool {
	return c.Provider != "" && c.APIKey != ""
}

// EmailConfig holds transactional e-mail settings.
type EmailConfig struct {
	ResendAPIKey string        `yaml:"resend_api_key" env:"EMAIL_RESEND_API_KEY"`
	From         string        `yaml:"from"           env:"EMAIL_FROM"           env-default:"Eco Ideias <onboarding@resend.dev>"`
	BaseURL      string        `yaml:"base_url"       env:"EMAIL_BASE_URL"`
	Workers      int           `yaml:"workers"        env:"EMAIL_WORKERS"        env-default:"4"`
	QueueSize    int           `yaml:"queue_size"     env:"EMAIL_QUEUE_SIZE"     env-default:"256"`
	MaxRetries   uint64        `yaml:"max_retries"    env:"EMAIL_MAX_RETRIES"    env-default:"3"`
	RetryBackoff time.Duration `yaml:"retry_backoff"  env:"EMAIL_RETRY_BACKOFF"  env-default:"500ms"`
}

// Enabled reports whether outbound e-mail is configured.
func (c EmailConfig) Enabled() bool {
	return c.ResendAPIKey != ""
}

// CacheConfig holds Redis settings. An empty RedisAddr disables caching.
type CacheConfig struct {
	RedisAddr     string        `yaml:"redis_addr"     env:"CACHE_REDIS_ADDR"`
	RedisPassword string        `yaml:"redis_password" env:"CACHE_REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db"       env:"CACHE_REDIS_DB"       env-default:"0"`
	RankingTTL    time.Duration `yaml:"ranking_ttl"    env:"CACHE_RANKING_TTL"    env-default:"5m"`
}

// PointsConfig holds gamification rewards.
type PointsConfig struct {
	Approval       int `yaml:"approval"       env:"POINTS_APPROVAL"       env-default:"100"`
	Implementation int `yaml:"implementation" env:"POINTS_IMPLEMENTATION" env-default:"50"`
}

// ExportConfig holds report export settings.
type ExportConfig struct {
	Timezone string `yaml:"timezone" env:"EXPORT_TIMEZONE" env-default:"America/Sao_Paulo"`
	MaxRows  int    `yaml:"max_rows" env:"EXPORT_MAX_ROWS" env-default:"10000"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// WebConfig points at the built single-page app.
type WebConfig struct {
	StaticDir string `yaml:"static_dir" env:"WEB_STATIC_DIR" env-default:"./web/dist"`
}

// RateLimitConfig holds per-IP limits for sensitive endpoints.
type RateLimitConfig struct {
	LoginPerMinute  int           `yaml:"login_per_minute"  env:"RATELIMIT_LOGIN_PER_MINUTE"  env-default:"10"`
	ResetPerMinute  int           `yaml:"reset_per_minute"  env:"RATELIMIT_RESET_PER_MINUTE"  env-default:"5"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATELIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
