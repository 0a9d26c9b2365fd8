package config

import (
	"time"

	"taskmaster/utils"
)

type DatabaseConfig struct {
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	DatabaseName    string
	RetryWrites     bool
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		DatabaseName:    utils.GetEnvAsString("MONGO_DB", "taskmaster"),
		RetryWrites:     utils.GetEnvAsBool("MONGO_RETRY_WRITES", true),
	}
}

type AssistantConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func LoadAssistantConfig() AssistantConfig {
	return AssistantConfig{
		APIKey:  utils.GetEnvAsString("GEMINI_API_KEY", ""),
		Model:   utils.GetEnvAsString("ASSISTANT_MODEL", "gemini-2.0-flash"),
		BaseURL: utils.GetEnvAsString("ASSISTANT_BASE_URL", "https://generativelanguage.googleapis.com"),
		Timeout: utils.GetEnvAsDuration("ASSISTANT_TIMEOUT", 30*time.Second),
	}
}

type ReminderConfig struct {
	Interval   time.Duration
	WindowDays int
}

func LoadReminderConfig() ReminderConfig {
	return ReminderConfig{
		Interval:   utils.GetEnvAsDuration("REMINDER_SCAN_INTERVAL", 15*time.Minute),
		WindowDays: utils.GetEnvAsInt("REMINDER_WINDOW_DAYS", 1),
	}
}
