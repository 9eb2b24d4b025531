package launcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// OverrideStore persists the executable path chosen by the user.
// Get returns "" when no override was saved.
type OverrideStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, path string) error
	Clear(ctx context.Context) error
}

type overrideFile struct {
	Path string `json:"path"`
}

// FileOverrideStore keeps the override as {"path": ...} in the user data directory.
type FileOverrideStore struct {
	path string
	mu   sync.RWMutex
}

// NewFileOverrideStore creates a FileOverrideStore writing to path.
func NewFileOverrideStore(path string) *FileOverrideStore {
	return &FileOverrideStore{path: path}
}

// Get implements OverrideStore.
func (s *FileOverrideStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}

		return "", fmt.Errorf("read override file: %w", err)
	}

	var f overrideFile
	if err := json.Unmarshal(data, &f); err != nil {
		return "", fmt.Errorf("decode override file: %w", err)
	}

	return strings.TrimSpace(f.Path), nil
}

// Set implements OverrideStore.
func (s *FileOverrideStore) Set(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(overrideFile{Path: path}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode override file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create override dir: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write override file: %w", err)
	}

	return nil
}

// Clear implements OverrideStore.
func (s *FileOverrideStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove override file: %w", err)
	}

	return nil
}
