package out

import (
	"context"
	"fmt"

	noteout "mindflow/internal/modules/note/port/out"
	"mindflow/internal/platform/kvstore"
)

const KeyDailyNoteSubmitted = "dailyNoteSubmitted"

type KVFlagStore struct {
	store kvstore.Store
}

func NewKVFlagStore(store kvstore.Store) noteout.FlagStore {
	return &KVFlagStore{store: store}
}

func (s *KVFlagStore) Submitted(ctx context.Context) (bool, error) {
	raw, ok, err := s.store.Get(ctx, KeyDailyNoteSubmitted)
	if err != nil {
		return false, fmt.Errorf("read daily note flag: %w", err)
	}
	return ok && raw == "true", nil
}

func (s *KVFlagStore) SetSubmitted(ctx context.Context, submitted bool) error {
	return s.store.Set(ctx, KeyDailyNoteSubmitted, fmt.Sprintf("%t", submitted))
}
