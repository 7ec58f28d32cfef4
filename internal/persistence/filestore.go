package persistence

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/job-board-service/internal/config"
)

// FileStore serializes access to the single file holding the job
// collection. Writers are mutually exclusive; readers share a lock and
// always see the last committed version because every write replaces
// the file atomically via a temp file and rename.
type FileStore struct {
	path   string
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewFileStore wraps the configured backing file.
func NewFileStore(cfg config.StoreConfig, logger *zap.Logger) *FileStore {
	return &FileStore{path: cfg.Path, logger: logger}
}

// Init seeds the backing file with the given document when it does not
// exist yet.
func (f *FileStore) Init(seed []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := os.Stat(f.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := f.replaceLocked(seed); err != nil {
		return err
	}
	f.logger.Info("initialized job store file", zap.String("path", f.path))
	return nil
}

// View runs fn against the current file contents under a shared lock.
func (f *FileStore) View(fn func(data []byte) error) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}
	return fn(data)
}

// Update runs a full load-modify-store cycle under the exclusive lock.
// When fn returns an error nothing is written and the error is passed
// through. The new contents land in a temp file first and replace the
// backing file with a rename, so concurrent readers never observe a
// partial write.
func (f *FileStore) Update(fn func(data []byte) ([]byte, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}
	next, err := fn(data)
	if err != nil {
		return err
	}
	return f.replaceLocked(next)
}

// Ping reports whether the backing file is reachable.
func (f *FileStore) Ping(_ context.Context) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, err := os.Stat(f.path)
	return err
}

func (f *FileStore) replaceLocked(data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".jobstore-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
