package config

import (
	"fmt"
	"time"
)

// MinWakeInterval is the shortest background wake interval the scheduler honours.
const MinWakeInterval = 15 * time.Minute

// Validate performs business-rule validation on the loaded configuration.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Store.KeyPrefix == "" {
		return fmt.Errorf("store.key_prefix is required")
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be > 0 (got %s)", c.Backend.Timeout)
	}
	if c.User.ID == "" {
		return fmt.Errorf("user.id is required")
	}
	if err := c.Schedule.validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	return nil
}

func (s *ScheduleConfig) validate() error {
	if s.WakeInterval < MinWakeInterval {
		return fmt.Errorf("wake_interval must be >= %s (got %s)", MinWakeInterval, s.WakeInterval)
	}
	if s.MidnightHour < 0 || s.MidnightHour > 23 {
		return fmt.Errorf("midnight_hour must be in [0,23] (got %d)", s.MidnightHour)
	}
	if s.MidnightMin < 0 || s.MidnightMin > 59 {
		return fmt.Errorf("midnight_min must be in [0,59] (got %d)", s.MidnightMin)
	}
	if s.TUITick <= 0 {
		return fmt.Errorf("tui_tick must be > 0 (got %s)", s.TUITick)
	}
	if _, err := s.Location(); err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	return nil
}
