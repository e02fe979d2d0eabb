package out

import (
	"context"
	"fmt"
	"log/slog"

	dtout "mindflow/internal/modules/daytransition/port/out"
	"mindflow/internal/platform/calendar"
	"mindflow/internal/platform/kvstore"
)

const KeyLastActiveDate = "lastActiveDate"

type KVDateStore struct {
	store kvstore.Store
	log   *slog.Logger
}

func NewKVDateStore(store kvstore.Store, logger *slog.Logger) dtout.DateStore {
	return &KVDateStore{store: store, log: logger.With("adapter", "date_kv")}
}

// LastActiveDate treats an unparsable stored value as absent.
func (s *KVDateStore) LastActiveDate(ctx context.Context) (calendar.Date, bool, error) {
	raw, ok, err := s.store.Get(ctx, KeyLastActiveDate)
	if err != nil {
		return calendar.Date{}, false, err
	}
	if !ok {
		return calendar.Date{}, false, nil
	}
	day, err := calendar.ParseDate(raw)
	if err != nil {
		s.log.WarnContext(ctx, "ignoring malformed last active date", slog.String("value", raw), slog.Any("error", err))
		return calendar.Date{}, false, nil
	}
	return day, true, nil
}

func (s *KVDateStore) SetLastActiveDate(ctx context.Context, day calendar.Date) error {
	if err := s.store.Set(ctx, KeyLastActiveDate, day.String()); err != nil {
		return fmt.Errorf("store last active date: %w", err)
	}
	return nil
}
