package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	Upstream    UpstreamConfig    `yaml:"upstream"`
	Dictionary  DictionaryConfig  `yaml:"dictionary"`
	Translation TranslationConfig `yaml:"translation"`
	Lookup      LookupConfig      `yaml:"lookup"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// UpstreamConfig holds settings shared by every outbound provider call.
type UpstreamConfig struct {
	Timeout         time.Duration `yaml:"timeout"          env:"UPSTREAM_TIMEOUT"          env-default:"10s"`
	UserAgent       string        `yaml:"user_agent"       env:"UPSTREAM_USER_AGENT"       env-default:"lexibridge/1.0"`
	BreakerEnabled  bool          `yaml:"breaker_enabled"  env:"UPSTREAM_BREAKER_ENABLED"  env-default:"false"`
	BreakerFailures uint32        `yaml:"breaker_failures" env:"UPSTREAM_BREAKER_FAILURES" env-default:"5"`
	BreakerCooldown time.Duration `yaml:"breaker_cooldown" env:"UPSTREAM_BREAKER_COOLDOWN" env-default:"30s"`
}

// DictionaryConfig holds dictionary provider settings.
type DictionaryConfig struct {
	BaseURL string `yaml:"base_url" env:"DICTIONARY_BASE_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
}

// TranslationConfig holds translation provider settings.
type TranslationConfig struct {
	BaseURL string `yaml:"base_url" env:"TRANSLATION_BASE_URL" env-default:"https://api.mymemory.translated.net"`
	// Email is sent as MyMemory's "de" parameter, which raises the daily quota.
	Email string `yaml:"email" env:"TRANSLATION_EMAIL"`
}

// LookupConfig holds orchestrator settings.
type LookupConfig struct {
	HistoryCapacity int    `yaml:"history_capacity" env:"LOOKUP_HISTORY_CAPACITY" env-default:"50"`
	DefaultSource   string `yaml:"default_source"   env:"LOOKUP_DEFAULT_SOURCE"   env-default:"en"`
	DefaultTarget   string `yaml:"default_target"   env:"LOOKUP_DEFAULT_TARGET"   env-default:"ta"`
}
