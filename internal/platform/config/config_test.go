package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindflow/internal/platform/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("MINDFLOW_CONFIG", "")
	dir := t.TempDir()

	cfg, err := config.New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "mindflow.db"), cfg.DBPath)
	assert.Equal(t, "@MindFlow:", cfg.Store.KeyPrefix)
	assert.Equal(t, "http://localhost:8000/api", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "user_123", cfg.User.ID)
	assert.Equal(t, 15*time.Minute, cfg.Schedule.WakeInterval)
	assert.Equal(t, 0, cfg.Schedule.MidnightHour)
	assert.Equal(t, 0, cfg.Schedule.MidnightMin)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestNew_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
backend:
  base_url: http://example.test/api
  timeout: 3s
user:
  id: yaml-user
log:
  format: json
`)
	t.Setenv("MINDFLOW_CONFIG", "")
	t.Setenv("MINDFLOW_USER_ID", "env-user")

	cfg, err := config.New(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://example.test/api", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "env-user", cfg.User.ID)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestNew_DotEnv(t *testing.T) {
	t.Setenv("MINDFLOW_CONFIG", "")
	t.Setenv("MINDFLOW_KEY_PREFIX", "placeholder")
	require.NoError(t, os.Unsetenv("MINDFLOW_KEY_PREFIX"))

	dir := t.TempDir()
	writeFile(t, dir, ".env", "MINDFLOW_KEY_PREFIX=@Test:\n")

	cfg, err := config.New(dir)
	require.NoError(t, err)
	assert.Equal(t, "@Test:", cfg.Store.KeyPrefix)
}

func TestNew_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("MINDFLOW_CONFIG", "/nonexistent/config.yaml")

	_, err := config.New(t.TempDir())
	assert.Error(t, err)
}

func TestNew_RequiresDataDir(t *testing.T) {
	_, err := config.New("")
	assert.Error(t, err)
}

func validConfig() config.Config {
	return config.Config{
		DataDir: "/tmp/mindflow",
		Store:   config.StoreConfig{KeyPrefix: "@MindFlow:"},
		Backend: config.BackendConfig{BaseURL: "http://localhost:8000/api", Timeout: time.Second},
		User:    config.UserConfig{ID: "user_123"},
		Schedule: config.ScheduleConfig{
			WakeInterval: 15 * time.Minute,
			TUITick:      time.Second,
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "wake interval below minimum", mutate: func(c *config.Config) { c.Schedule.WakeInterval = 5 * time.Minute }, wantErr: true},
		{name: "hour out of range", mutate: func(c *config.Config) { c.Schedule.MidnightHour = 24 }, wantErr: true},
		{name: "minute out of range", mutate: func(c *config.Config) { c.Schedule.MidnightMin = -1 }, wantErr: true},
		{name: "unknown timezone", mutate: func(c *config.Config) { c.Schedule.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *config.Config) { c.Backend.Timeout = 0 }, wantErr: true},
		{name: "empty user", mutate: func(c *config.Config) { c.User.ID = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
