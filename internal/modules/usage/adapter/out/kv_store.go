package out

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"mindflow/internal/modules/usage/domain"
	"mindflow/internal/platform/calendar"
	"mindflow/internal/platform/kvstore"
)

const (
	KeyScreenTime        = "screenTime"
	KeyScreenTimeStart   = "screenTimeStart"
	KeyScreenTimeDate    = "screenTimeDate"
	KeyNotificationCount = "notificationCount"
)

// KVUsageStore keeps screen time as integer milliseconds and the session start
// as epoch milliseconds. Malformed values read as absent and are logged.
type KVUsageStore struct {
	store kvstore.Store
	log   *slog.Logger
}

func NewKVUsageStore(store kvstore.Store, logger *slog.Logger) *KVUsageStore {
	return &KVUsageStore{store: store, log: logger.With("adapter", "usage_kv")}
}

func (s *KVUsageStore) LoadScreenTime(ctx context.Context) (domain.ScreenTime, error) {
	var st domain.ScreenTime

	total, ok, err := s.readInt(ctx, KeyScreenTime)
	if err != nil {
		return domain.ScreenTime{}, err
	}
	if ok && total > 0 {
		st.Total = time.Duration(total) * time.Millisecond
	}

	start, ok, err := s.readInt(ctx, KeyScreenTimeStart)
	if err != nil {
		return domain.ScreenTime{}, err
	}
	if ok {
		st.SessionStart = time.UnixMilli(start)
		st.Tracking = true
	}

	raw, ok, err := s.store.Get(ctx, KeyScreenTimeDate)
	if err != nil {
		return domain.ScreenTime{}, fmt.Errorf("read %s: %w", KeyScreenTimeDate, err)
	}
	if ok {
		date, err := calendar.ParseDate(raw)
		if err != nil {
			s.log.WarnContext(ctx, "malformed stored value", slog.String("key", KeyScreenTimeDate), slog.String("value", raw))
		} else {
			st.Date, st.HasDate = date, true
		}
	}
	return st, nil
}

func (s *KVUsageStore) SaveTotal(ctx context.Context, total time.Duration) error {
	return s.store.Set(ctx, KeyScreenTime, strconv.FormatInt(total.Milliseconds(), 10))
}

func (s *KVUsageStore) SaveSessionStart(ctx context.Context, start time.Time) error {
	return s.store.Set(ctx, KeyScreenTimeStart, strconv.FormatInt(start.UnixMilli(), 10))
}

func (s *KVUsageStore) ClearSessionStart(ctx context.Context) error {
	return s.store.Delete(ctx, KeyScreenTimeStart)
}

func (s *KVUsageStore) SaveDate(ctx context.Context, date calendar.Date) error {
	return s.store.Set(ctx, KeyScreenTimeDate, date.String())
}

func (s *KVUsageStore) LoadCount(ctx context.Context) (int, error) {
	n, ok, err := s.readInt(ctx, KeyNotificationCount)
	if err != nil || !ok || n < 0 {
		return 0, err
	}
	return int(n), nil
}

func (s *KVUsageStore) SaveCount(ctx context.Context, count int) error {
	return s.store.Set(ctx, KeyNotificationCount, strconv.Itoa(count))
}

func (s *KVUsageStore) readInt(ctx context.Context, key string) (int64, bool, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return 0, false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.log.WarnContext(ctx, "malformed stored value", slog.String("key", key), slog.String("value", raw))
		return 0, false, nil
	}
	return n, true, nil
}
