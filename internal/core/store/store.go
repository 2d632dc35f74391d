// Package store persists the glossary document as a single JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileName is the name of the glossary file in the user's home directory.
const FileName = ".terms.json"

// EmptyDocument is written when the glossary file does not exist yet.
const EmptyDocument = "{}"

// DefaultPath returns the location of the glossary in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Store reads and writes one glossary file.
type Store struct {
	path string
	log  zerolog.Logger
}

// New returns a Store bound to path.
func New(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Read returns the raw contents of the glossary file. A missing file is
// created holding an empty document, and that document is returned.
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err == nil {
		return string(data), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("reading %s: %w", s.path, err)
	}

	s.log.Debug().Str("path", s.path).Msg("glossary file not found, creating empty document")
	if err := s.WriteString(EmptyDocument); err != nil {
		return "", err
	}
	return EmptyDocument, nil
}

// WriteString replaces the glossary file with content as-is.
func (s *Store) WriteString(content string) error {
	return s.Write([]byte(content))
}

// WriteDocument serializes doc to compact JSON and replaces the glossary file with it.
func (s *Store) WriteDocument(doc map[string]string) error {
	if doc == nil {
		doc = map[string]string{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding glossary: %w", err)
	}
	return s.Write(data)
}

// Write replaces the glossary file with content. The bytes land in a
// temporary file next to the target which is then renamed over it, so
// readers see either the old document or the new one. A symlinked glossary
// is written through to the file it points at, and an existing file keeps
// its permissions.
func (s *Store) Write(content []byte) error {
	target, perm, err := s.writeTarget()
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory '%s': %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file in '%s': %w", dir, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions on %s: %w", s.path, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	s.log.Debug().Str("path", target).Int("bytes", len(content)).Msg("glossary written")
	return nil
}

// writeTarget returns the file a write should replace and the permissions
// to give it. Symlinks are followed; a file that does not exist yet is
// written at the store path with mode 0644.
func (s *Store) writeTarget() (string, os.FileMode, error) {
	target, err := filepath.EvalSymlinks(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s.path, 0644, nil
		}
		return "", 0, fmt.Errorf("resolving %s: %w", s.path, err)
	}
	info, err := os.Stat(target)
	if err != nil {
		return "", 0, fmt.Errorf("inspecting %s: %w", target, err)
	}
	return target, info.Mode().Perm(), nil
}
