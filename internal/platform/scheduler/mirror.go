package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"mindflow/internal/platform/kvstore"
)

const (
	KeyRegisteredTasks        = "registeredTasks"
	KeyScheduledNotifications = "scheduledNotifications"
)

// KVMirror records registrations in the key-value store so other processes
// (the status command) can see what the daemon has scheduled.
type KVMirror struct {
	store kvstore.Store
}

func NewKVMirror(store kvstore.Store) *KVMirror {
	return &KVMirror{store: store}
}

func (m *KVMirror) SaveTasks(ctx context.Context, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return m.store.Set(ctx, KeyRegisteredTasks, string(raw))
}

func (m *KVMirror) SaveAlarms(ctx context.Context, next map[string]time.Time) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode alarms: %w", err)
	}
	return m.store.Set(ctx, KeyScheduledNotifications, string(raw))
}

// LoadTasks returns the last mirrored task names.
func (m *KVMirror) LoadTasks(ctx context.Context) ([]string, error) {
	raw, ok, err := m.store.Get(ctx, KeyRegisteredTasks)
	if err != nil || !ok {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return names, nil
}

// LoadAlarms returns the last mirrored alarm fire times.
func (m *KVMirror) LoadAlarms(ctx context.Context) (map[string]time.Time, error) {
	raw, ok, err := m.store.Get(ctx, KeyScheduledNotifications)
	if err != nil || !ok {
		return map[string]time.Time{}, err
	}
	out := map[string]time.Time{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode alarms: %w", err)
	}
	return out, nil
}

func (m *KVMirror) RemoveTask(ctx context.Context, name string) error {
	names, err := m.LoadTasks(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(names, name) {
		return nil
	}
	return m.SaveTasks(ctx, slices.DeleteFunc(names, func(n string) bool { return n == name }))
}

func (m *KVMirror) RemoveAlarm(ctx context.Context, id string) error {
	alarms, err := m.LoadAlarms(ctx)
	if err != nil {
		return err
	}
	if _, ok := alarms[id]; !ok {
		return nil
	}
	delete(alarms, id)
	return m.SaveAlarms(ctx, alarms)
}
