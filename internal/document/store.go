// Package document stores Tabs property bags as JSON files.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tabsblock/internal/block"
)

const (
	// DirEnv overrides the documents base directory (for testing).
	DirEnv = "TABSBLOCK_DOCUMENTS_DIR"
	// DefaultBase is the default base under the user's home directory.
	DefaultBase = ".tabsblock/documents"
)

// Store reads and writes documents under a base directory.
// Layout: <base>/<name>.json
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at dir. An empty dir falls back to
// TABSBLOCK_DOCUMENTS_DIR, then to ~/.tabsblock/documents.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = os.Getenv(DirEnv)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("documents dir: %w", err)
		}
		dir = filepath.Join(home, DefaultBase)
	}
	return &Store{baseDir: dir}, nil
}

// BaseDir returns the store's base directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// ErrInvalidName is returned for document names that would resolve outside
// the base directory.
var ErrInvalidName = errors.New("invalid document name")

// Path returns the file path for a document by name. Names are lowercased with
// spaces turned into hyphens; names containing path separators or ".." are
// rejected.
func (s *Store) Path(name string) (string, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	if normalized == "" || normalized == "." ||
		strings.ContainsAny(normalized, `/\`) || strings.Contains(normalized, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.baseDir, normalized+".json"), nil
}

// Load reads the named document. A missing file yields the default props with
// no error; a present but unreadable or malformed file is an error.
func (s *Store) Load(name string) (block.Props, error) {
	path, err := s.Path(name)
	if err != nil {
		return block.Props{}, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return block.DefaultProps(), nil
	}
	if err != nil {
		return block.Props{}, fmt.Errorf("read document %q: %w", name, err)
	}
	p, err := block.Decode(b)
	if err != nil {
		return block.Props{}, fmt.Errorf("document %q: %w", name, err)
	}
	return p, nil
}

// Save writes props to the named document, creating the base directory.
// The file is replaced atomically via rename.
func (s *Store) Save(name string, p block.Props) error {
	b, err := block.Encode(p)
	if err != nil {
		return err
	}
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create documents dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write document %q: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace document %q: %w", name, err)
	}
	return nil
}
