package out

import (
	"context"
	"encoding/json"
	"fmt"

	"mindflow/internal/modules/streak/domain"
	streakout "mindflow/internal/modules/streak/port/out"
	"mindflow/internal/platform/kvstore"
)

const KeyStreakState = "streakState"

type KVStateStore struct {
	store kvstore.Store
}

func NewKVStateStore(store kvstore.Store) streakout.StateStore {
	return &KVStateStore{store: store}
}

func (s *KVStateStore) Load(ctx context.Context) (domain.State, bool, error) {
	raw, ok, err := s.store.Get(ctx, KeyStreakState)
	if err != nil {
		return domain.State{}, false, fmt.Errorf("read streak state: %w", err)
	}
	if !ok {
		return domain.State{}, false, nil
	}
	var state domain.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return domain.State{}, false, fmt.Errorf("decode streak state: %w", err)
	}
	return state, true, nil
}

func (s *KVStateStore) Save(ctx context.Context, state domain.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode streak state: %w", err)
	}
	return s.store.Set(ctx, KeyStreakState, string(raw))
}
