package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	noteadapter "mindflow/internal/modules/note/adapter/out"
	notedto "mindflow/internal/modules/note/dto"
	notein "mindflow/internal/modules/note/port/in"
	"mindflow/internal/modules/note/service"
	"mindflow/internal/modules/note/usecase"
	apperrors "mindflow/internal/platform/errors"
	"mindflow/internal/platform/kvstore"
	"mindflow/internal/platform/logging"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type fixedID string

func (f fixedID) New() string { return string(f) }

func newUsecase(t *testing.T, clk *fixedClock, store *kvstore.MemoryStore) (notein.Usecase, string) {
	t.Helper()
	dir := t.TempDir()
	logger := logging.Discard()
	svc := service.NewNoteService(clk, fixedID("note-1"), noteadapter.NewVaultNoteStore(dir, logger), noteadapter.NewKVFlagStore(store), logger)
	return usecase.NewInteractor(svc), dir
}

func TestSubmitWritesNoteAndRaisesFlag(t *testing.T) {
	t.Parallel()
	clk := &fixedClock{now: time.Date(2026, 3, 4, 21, 15, 30, 0, time.UTC)}
	store := kvstore.NewMemoryStore()
	uc, dir := newUsecase(t, clk, store)
	ctx := context.Background()

	out, err := uc.Submit(ctx, notedto.SubmitInput{Text: "Long walk by the river\nfelt good", Mood: 7})
	require.NoError(t, err)
	assert.Equal(t, "note-1", out.ID)
	assert.Equal(t, filepath.Join(dir, "notes", "2026", "03", "04", "211530-long-walk-by-the-river.md"), out.Path)

	raw, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "---\n"))
	assert.Contains(t, string(raw), "id: note-1")
	assert.Contains(t, string(raw), "mood: 7")
	assert.Equal(t, "true", store.Snapshot()[noteadapter.KeyDailyNoteSubmitted])

	status, err := uc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Submitted)
	require.Len(t, status.Notes, 1)
	assert.Equal(t, "Long walk by the river", status.Notes[0].Title)
	assert.Equal(t, 7, status.Notes[0].Mood)
	assert.True(t, status.Notes[0].CreatedAt.Equal(clk.now))
}

func TestSubmitRejectsSecondNoteUntilFlagReset(t *testing.T) {
	t.Parallel()
	clk := &fixedClock{now: time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)}
	store := kvstore.NewMemoryStore()
	uc, _ := newUsecase(t, clk, store)
	ctx := context.Background()

	_, err := uc.Submit(ctx, notedto.SubmitInput{Text: "first"})
	require.NoError(t, err)

	clk.now = clk.now.Add(time.Hour)
	_, err = uc.Submit(ctx, notedto.SubmitInput{Text: "second"})
	require.ErrorIs(t, err, apperrors.ErrDailyNoteSubmitted)

	require.NoError(t, uc.ResetFlag(ctx))
	assert.Equal(t, "false", store.Snapshot()[noteadapter.KeyDailyNoteSubmitted])
	_, err = uc.Submit(ctx, notedto.SubmitInput{Text: "second"})
	require.NoError(t, err)
}

func TestSubmitValidation(t *testing.T) {
	t.Parallel()
	store := kvstore.NewMemoryStore()
	uc, dir := newUsecase(t, &fixedClock{now: time.Now()}, store)

	_, err := uc.Submit(context.Background(), notedto.SubmitInput{Text: "   "})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, ok := store.Snapshot()[noteadapter.KeyDailyNoteSubmitted]
	assert.False(t, ok)
	_, statErr := os.Stat(filepath.Join(dir, "notes"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestSubmitFlagReadFailure(t *testing.T) {
	t.Parallel()
	store := kvstore.NewMemoryStore()
	boom := errors.New("disk gone")
	store.FailGet(noteadapter.KeyDailyNoteSubmitted, boom)
	uc, _ := newUsecase(t, &fixedClock{now: time.Now()}, store)

	_, err := uc.Submit(context.Background(), notedto.SubmitInput{Text: "hello"})
	require.ErrorIs(t, err, boom)
}

func TestStatusEmptyDay(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t, &fixedClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}, kvstore.NewMemoryStore())
	status, err := uc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Submitted)
	assert.Empty(t, status.Notes)
}
