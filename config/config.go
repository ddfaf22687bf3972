package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App      AppConfig
	OpenAI   OpenAIConfig
	Whatsapp WhatsappConfig
	SMTP     SMTPConfig
	Alert    AlertConfig
	Worker   WorkerConfig
	Dedupe   DedupeConfig
}

type AppConfig struct {
	Version        string
	Port           string
	Debug          bool
	Environment    string
	BasePath       string
	TrustedProxies []string
}

type OpenAIConfig struct {
	// APIKeyEnv is the primary environment variable holding the key,
	// APIKeyFallbackEnv the secondary. The key itself is resolved at call
	// time by the chat usecase, never cached at startup.
	APIKeyEnv         string
	APIKeyFallbackEnv string
	Model             string
	Temperature       float64
	RequestTimeout    time.Duration
}

type WhatsappConfig struct {
	GraphBaseURL     string
	PhoneNumberID    string
	AccessToken      string
	VerifyToken      string
	SendAPIVersion   string
	StatusAPIVersion string
	// RaiseOnSendError turns a non-2xx from the Cloud API send endpoint
	// into an error. Off by default: delivery stays best-effort and the
	// processor never inspects the status code.
	RaiseOnSendError bool
	RequestTimeout   time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Email    string
	Password string
}

type AlertConfig struct {
	Enabled    bool
	AdminEmail string
	Interval   time.Duration
}

type WorkerConfig struct {
	PoolSize  int
	QueueSize int
}

type DedupeConfig struct {
	// Window bounds how long a claimed message id is remembered. The
	// Cloud API retries duplicates within minutes, so a day-wide window
	// keeps at-most-once behavior without unbounded growth.
	Window time.Duration
}

// Global provides access to the loaded configuration globally.
var Global *Config

// LoadConfig loads configuration from environment variables or defaults.
func LoadConfig() (*Config, error) {
	// Usually already enabled by the bootstrap env loader; repeating it
	// here keeps LoadConfig self-contained.
	viper.AutomaticEnv()

	appCfg := AppConfig{
		Version:     "v1.0.2",
		Port:        getEnv("APP_PORT", "3000"),
		Debug:       getEnvBool("APP_DEBUG", false),
		Environment: getEnv("APP_ENV", "development"),
		BasePath:    getEnv("APP_BASE_PATH", ""),
	}
	if v := getEnv("APP_TRUSTED_PROXIES", ""); v != "" {
		appCfg.TrustedProxies = splitAndTrim(v)
	}

	openaiCfg := OpenAIConfig{
		APIKeyEnv:         "GPT_API",
		APIKeyFallbackEnv: "OPENAI_API_KEY",
		Model:             getEnv("OPENAI_MODEL", "gpt-5.2"),
		Temperature:       0.7,
		RequestTimeout:    getEnvDuration("OPENAI_REQUEST_TIMEOUT", 20*time.Second),
	}

	// Sends go through v18.0 while read/typing status calls use v22.0;
	// both stay overridable independently.
	waCfg := WhatsappConfig{
		GraphBaseURL:     getEnv("WHATSAPP_GRAPH_BASE_URL", "https://graph.facebook.com"),
		PhoneNumberID:    getEnv("PHONE_NUMBER_ID", ""),
		AccessToken:      getEnv("WHATSAPP_ACCESS_TOKEN", ""),
		VerifyToken:      getEnv("VERIFY_TOKEN", ""),
		SendAPIVersion:   getEnv("WHATSAPP_SEND_API_VERSION", "v18.0"),
		StatusAPIVersion: getEnv("WHATSAPP_STATUS_API_VERSION", "v22.0"),
		RaiseOnSendError: getEnvBool("WHATSAPP_RAISE_ON_SEND_ERROR", false),
		RequestTimeout:   getEnvDuration("WHATSAPP_REQUEST_TIMEOUT", 10*time.Second),
	}

	smtpCfg := SMTPConfig{
		Host:     getEnv("SMTP_SERVER", ""),
		Port:     getEnvInt("SMTP_PORT", 587),
		Email:    getEnv("EMAIL", ""),
		Password: getEnv("PASSWORD", ""),
	}

	alertCfg := AlertConfig{
		Enabled:    getEnvBool("ALERT_ENABLED", false),
		AdminEmail: getEnv("ADMIN_EMAIL", ""),
		Interval:   time.Duration(getEnvInt("ALERT_INTERVAL", 3600)) * time.Second,
	}

	cfg := &Config{
		App:      appCfg,
		OpenAI:   openaiCfg,
		Whatsapp: waCfg,
		SMTP:     smtpCfg,
		Alert:    alertCfg,
		Worker: WorkerConfig{
			PoolSize:  getEnvInt("MESSAGE_WORKER_POOL_SIZE", 10),
			QueueSize: getEnvInt("MESSAGE_WORKER_QUEUE_SIZE", 200),
		},
		Dedupe: DedupeConfig{
			Window: getEnvDuration("DEDUPE_WINDOW", 24*time.Hour),
		},
	}

	Global = cfg
	return cfg, nil
}
