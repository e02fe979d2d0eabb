package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"mindflow/internal/modules/focus/domain"
	focusout "mindflow/internal/modules/focus/port/out"
	apperrors "mindflow/internal/platform/errors"
)

// FileActiveFocusStore keeps the in-progress session in a JSON file under the
// data directory, so start and end may run in different processes.
type FileActiveFocusStore struct {
	path string
}

func NewFileActiveFocusStore(dataDir string) focusout.ActiveFocusStore {
	return &FileActiveFocusStore{path: filepath.Join(dataDir, "active-focus.json")}
}

func (s *FileActiveFocusStore) SaveActive(_ context.Context, active domain.ActiveFocus) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create active focus dir: %w", err)
	}
	payload, err := json.MarshalIndent(active, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active focus: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write active focus: %w", err)
	}
	return nil
}

func (s *FileActiveFocusStore) LoadActive(_ context.Context) (domain.ActiveFocus, error) {
	payload, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ActiveFocus{}, apperrors.ErrNoActiveSession
	}
	if err != nil {
		return domain.ActiveFocus{}, fmt.Errorf("read active focus: %w", err)
	}
	var active domain.ActiveFocus
	if err := json.Unmarshal(payload, &active); err != nil {
		return domain.ActiveFocus{}, fmt.Errorf("decode active focus: %w", err)
	}
	if active.SessionID == "" {
		return domain.ActiveFocus{}, apperrors.ErrNoActiveSession
	}
	return active, nil
}

func (s *FileActiveFocusStore) ClearActive(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear active focus: %w", err)
	}
	return nil
}
