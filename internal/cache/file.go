// internal/cache/file.go
package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore persists the whole cache as a single JSON document mapping key to
// entry. Every Get reads the full file, every Put rewrites it. There is no
// locking: two concurrent Puts race read-modify-write and the last writer's
// snapshot wins, silently dropping the other's update. That is acceptable for
// a best-effort cost-saving cache and is covered by tests as documented
// behavior.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get reads the backing file and returns the entry for key. A missing or
// unreadable file behaves as an empty cache.
func (s *FileStore) Get(ctx context.Context, key string) (*Entry, bool, error) {
	entries := s.readAll()
	entry, ok := entries[key]
	if !ok {
		return nil, false, nil
	}
	return &entry, true, nil
}

// Put overwrites the entry for key and rewrites the whole document. The write
// is best-effort; the caller logs failures and carries on.
//
// The rewrite goes through a temp file renamed over the path, so the document
// on disk is always one writer's complete snapshot. Concurrent Puts still
// race read-modify-write and the last renamer wins, dropping the peer's
// update, but the file can never hold a torn, unparseable interleaving.
func (s *FileStore) Put(ctx context.Context, key string, entry *Entry) error {
	entries := s.readAll()
	entries[key] = *entry

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

// readAll loads the full document, treating any read or parse failure as an
// empty cache.
func (s *FileStore) readAll() map[string]Entry {
	entries := make(map[string]Entry)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return entries
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return map[string]Entry{}
	}
	return entries
}
