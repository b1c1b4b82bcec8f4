package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/milk9111/gridedit/level"
)

var ErrEmptyName = errors.New("store: empty level name")

// Store persists level text by name.
type Store interface {
	Save(name, text string) error
	Load(name string) ([]string, error)
}

// FileStore keeps levels as text files under Dir. Loads fall back to
// Fallback (usually the embedded bundled levels) when the file is not on disk.
type FileStore struct {
	Dir      string
	Fallback fs.FS
}

func NewFileStore(dir string, fallback fs.FS) *FileStore {
	return &FileStore{Dir: dir, Fallback: fallback}
}

func (s *FileStore) Save(name, text string) error {
	clean, err := CleanName(name)
	if err != nil {
		return err
	}
	p := s.Path(clean)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("store: save %s: %w", clean, err)
	}
	if err := os.WriteFile(p, []byte(text), 0o644); err != nil {
		return fmt.Errorf("store: save %s: %w", clean, err)
	}
	return nil
}

func (s *FileStore) Load(name string) ([]string, error) {
	clean, err := CleanName(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(clean))
	if err != nil && s.Fallback != nil {
		var ferr error
		data, ferr = fs.ReadFile(s.Fallback, clean)
		if ferr == nil {
			err = nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", clean, err)
	}
	return level.SplitRows(string(data)), nil
}

// Path returns the on-disk location for a cleaned level name.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.Dir, filepath.FromSlash(name))
}

// CleanName normalises a level name: forward slashes, no leading "levels/"
// or "/", no parent references, ".txt" appended when there is no extension.
func CleanName(name string) (string, error) {
	s := strings.TrimSpace(filepath.ToSlash(name))
	s = strings.TrimLeft(s, "/")
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	s = path.Clean(s)
	if s == "." || s == "" {
		return "", ErrEmptyName
	}
	if s == ".." || strings.HasPrefix(s, "../") {
		return "", fmt.Errorf("store: level name %q escapes the levels directory", name)
	}
	if path.Ext(s) == "" {
		s += ".txt"
	}
	return s, nil
}
