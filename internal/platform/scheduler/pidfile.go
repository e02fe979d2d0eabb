package scheduler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// PIDFile marks a running daemon.
type PIDFile struct {
	path string
}

func NewPIDFile(dataDir string) PIDFile {
	return PIDFile{path: filepath.Join(dataDir, "daemon.pid")}
}

func (p PIDFile) Path() string {
	return p.path
}

func (p PIDFile) Write(pid int) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create daemon dir: %w", err)
	}
	return os.WriteFile(p.path, []byte(strconv.Itoa(pid)), 0o644)
}

// Read returns ok=false when no daemon has written its pid.
func (p PIDFile) Read() (int, bool, error) {
	raw, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, false, fmt.Errorf("decode daemon pid: %w", err)
	}
	return pid, true, nil
}

func (p PIDFile) Clear() error {
	if err := os.Remove(p.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove daemon pid: %w", err)
	}
	return nil
}
