package out

import (
	"context"
	"encoding/json"
	"fmt"

	"mindflow/internal/modules/focus/domain"
	"mindflow/internal/platform/kvstore"
)

const (
	KeyFocusSessions = "focusSessions"
	KeyFocusGoal     = "focusGoal"
)

// KVLedger stores the session ledger as one JSON array and the goal as a
// plain string.
type KVLedger struct {
	store kvstore.Store
}

func NewKVLedger(store kvstore.Store) *KVLedger {
	return &KVLedger{store: store}
}

func (l *KVLedger) Append(ctx context.Context, session domain.Session) error {
	sessions, err := l.List(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(append(sessions, session))
	if err != nil {
		return fmt.Errorf("encode focus sessions: %w", err)
	}
	return l.store.Set(ctx, KeyFocusSessions, string(raw))
}

func (l *KVLedger) List(ctx context.Context) ([]domain.Session, error) {
	raw, ok, err := l.store.Get(ctx, KeyFocusSessions)
	if err != nil {
		return nil, fmt.Errorf("read focus sessions: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var sessions []domain.Session
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		return nil, fmt.Errorf("decode focus sessions: %w", err)
	}
	return sessions, nil
}

func (l *KVLedger) LoadGoal(ctx context.Context) (string, bool, error) {
	goal, ok, err := l.store.Get(ctx, KeyFocusGoal)
	if err != nil {
		return "", false, fmt.Errorf("read focus goal: %w", err)
	}
	return goal, ok, nil
}

func (l *KVLedger) SaveGoal(ctx context.Context, goal string) error {
	return l.store.Set(ctx, KeyFocusGoal, goal)
}
