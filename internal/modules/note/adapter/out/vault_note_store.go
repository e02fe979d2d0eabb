package out

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"mindflow/internal/modules/note/domain"
	noteout "mindflow/internal/modules/note/port/out"
	"mindflow/internal/platform/calendar"
	"mindflow/internal/platform/markdown"
	"mindflow/internal/platform/slug"
)

type frontmatter struct {
	SchemaVersion int    `yaml:"schema_version"`
	ID            string `yaml:"id"`
	Date          string `yaml:"date"`
	CreatedAt     string `yaml:"created_at"`
	Mood          int    `yaml:"mood,omitempty"`
}

// VaultNoteStore keeps notes as markdown files under notes/YYYY/MM/DD.
type VaultNoteStore struct {
	dataDir string
	log     *slog.Logger
}

func NewVaultNoteStore(dataDir string, logger *slog.Logger) noteout.NoteStore {
	return &VaultNoteStore{dataDir: dataDir, log: logger.With("adapter", "note_vault")}
}

func (s *VaultNoteStore) dayDir(day calendar.Date) string {
	return filepath.Join(s.dataDir, "notes", fmt.Sprintf("%04d", day.Year), fmt.Sprintf("%02d", int(day.Month)), fmt.Sprintf("%02d", day.Day))
}

func (s *VaultNoteStore) Save(_ context.Context, note domain.Note) (string, error) {
	dir := s.dayDir(calendar.DateOf(note.CreatedAt))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create note dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", note.CreatedAt.Format("150405"), slug.Make(note.Title(), 40))
	path := filepath.Join(dir, name)

	meta := frontmatter{
		SchemaVersion: domain.SchemaVersion,
		ID:            note.ID,
		Date:          calendar.DateOf(note.CreatedAt).String(),
		CreatedAt:     note.CreatedAt.Format(time.RFC3339),
		Mood:          note.Mood,
	}
	rendered, err := markdown.Render(meta, strings.TrimSpace(note.Text)+"\n")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}
	return path, nil
}

func (s *VaultNoteStore) ListDay(ctx context.Context, day calendar.Date) ([]domain.Note, error) {
	dir := s.dayDir(day)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read note dir: %w", err)
	}
	notes := make([]domain.Note, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		note, err := readNote(path)
		if err != nil {
			s.log.WarnContext(ctx, "skipping unreadable note", slog.String("path", path), slog.Any("error", err))
			continue
		}
		notes = append(notes, note)
	}
	slices.SortFunc(notes, func(a, b domain.Note) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return notes, nil
}

func readNote(path string) (domain.Note, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Note{}, err
	}
	var meta frontmatter
	body, err := markdown.Split(string(raw), &meta)
	if err != nil {
		return domain.Note{}, err
	}
	created, err := time.Parse(time.RFC3339, meta.CreatedAt)
	if err != nil {
		return domain.Note{}, fmt.Errorf("parse created_at: %w", err)
	}
	return domain.Note{ID: meta.ID, Text: strings.TrimSpace(body), Mood: meta.Mood, CreatedAt: created}, nil
}
