package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// GetAllSettings returns a map of the non-secret settings currently loaded
// in memory, mainly for debug logging at startup.
func GetAllSettings() map[string]any {
	if Global == nil {
		return map[string]any{}
	}
	return map[string]any{
		"app_version":                  Global.App.Version,
		"app_port":                     Global.App.Port,
		"app_debug":                    Global.App.Debug,
		"openai_model":                 Global.OpenAI.Model,
		"whatsapp_send_api_version":    Global.Whatsapp.SendAPIVersion,
		"whatsapp_status_api_version":  Global.Whatsapp.StatusAPIVersion,
		"whatsapp_raise_on_send_error": Global.Whatsapp.RaiseOnSendError,
		"alert_enabled":                Global.Alert.Enabled,
		"alert_interval":               Global.Alert.Interval.String(),
		"message_worker_pool_size":     Global.Worker.PoolSize,
		"message_worker_queue_size":    Global.Worker.QueueSize,
		"dedupe_window":                Global.Dedupe.Window.String(),
	}
}

// Helpers; all reads go through viper so .env files, real environment
// variables and any explicit viper.Set override resolve the same way.
func getEnv(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := viper.GetString(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := viper.GetString(key); v != "" {
		vLower := strings.ToLower(v)
		return vLower == "1" || vLower == "true" || vLower == "yes" || vLower == "on"
	}
	return fallback
}

// getEnvDuration accepts either a Go duration string ("20s") or a bare
// number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := viper.GetString(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
