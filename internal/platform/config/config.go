package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	DataDir    string           `yaml:"-"           env:"-"`
	DBPath     string           `yaml:"db_path"     env:"MINDFLOW_DB_PATH"`
	Store      StoreConfig      `yaml:"store"`
	Backend    BackendConfig    `yaml:"backend"`
	User       UserConfig       `yaml:"user"`
	Schedule   ScheduleConfig   `yaml:"schedule"`
	Log        LogConfig        `yaml:"log"`
	DevBackend DevBackendConfig `yaml:"dev_backend"`
}

// StoreConfig holds key-value store settings.
type StoreConfig struct {
	KeyPrefix string `yaml:"key_prefix" env:"MINDFLOW_KEY_PREFIX" env-default:"@MindFlow:"`
}

// BackendConfig holds the backend-of-record client settings.
type BackendConfig struct {
	BaseURL string        `yaml:"base_url" env:"MINDFLOW_BACKEND_URL"     env-default:"http://localhost:8000/api"`
	Timeout time.Duration `yaml:"timeout"  env:"MINDFLOW_BACKEND_TIMEOUT" env-default:"10s"`
}

// UserConfig holds the fallback identity used until a real user id is stored.
type UserConfig struct {
	ID string `yaml:"id" env:"MINDFLOW_USER_ID" env-default:"user_123"`
}

// ScheduleConfig holds background wake and midnight alarm settings.
type ScheduleConfig struct {
	WakeInterval time.Duration `yaml:"wake_interval" env:"MINDFLOW_WAKE_INTERVAL" env-default:"15m"`
	MidnightHour int           `yaml:"midnight_hour" env:"MINDFLOW_MIDNIGHT_HOUR" env-default:"0"`
	MidnightMin  int           `yaml:"midnight_min"  env:"MINDFLOW_MIDNIGHT_MIN"  env-default:"0"`
	Timezone     string        `yaml:"timezone"      env:"MINDFLOW_TIMEZONE"`
	TUITick      time.Duration `yaml:"tui_tick"      env:"MINDFLOW_TUI_TICK"      env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DevBackendConfig holds the reference backend server settings.
type DevBackendConfig struct {
	Addr            string        `yaml:"addr"             env:"MINDFLOW_DEV_ADDR"             env-default:":8000"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"MINDFLOW_DEV_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Location resolves Timezone; empty means the process local zone.
func (s ScheduleConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}
