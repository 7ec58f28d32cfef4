package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/job-board-service/internal/config"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	store := NewFileStore(config.StoreConfig{Path: path}, zap.NewNop())
	if err := store.Init([]byte(`{"items":[]}`)); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func TestInitSeedsMissingFile(t *testing.T) {
	store := newTestStore(t)

	var got []byte
	err := store.View(func(data []byte) error {
		got = append([]byte{}, data...)
		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if string(got) != `{"items":[]}` {
		t.Errorf("unexpected seed contents: %s", got)
	}
}

func TestInitDoesNotOverwriteExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte(`{"items":[{"id":1}]}`), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store := NewFileStore(config.StoreConfig{Path: path}, zap.NewNop())
	if err := store.Init([]byte(`{"items":[]}`)); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != `{"items":[{"id":1}]}` {
		t.Errorf("existing contents were overwritten: %s", data)
	}
}

func TestUpdateReplacesContents(t *testing.T) {
	store := newTestStore(t)

	err := store.Update(func(data []byte) ([]byte, error) {
		return []byte(`{"items":[{"id":1}]}`), nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	err = store.View(func(data []byte) error {
		if string(data) != `{"items":[{"id":1}]}` {
			t.Errorf("unexpected contents: %s", data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
}

func TestUpdateAbortsOnError(t *testing.T) {
	store := newTestStore(t)

	wantErr := errors.New("no change")
	err := store.Update(func(data []byte) ([]byte, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected fn error to pass through, got %v", err)
	}

	err = store.View(func(data []byte) error {
		if string(data) != `{"items":[]}` {
			t.Errorf("contents changed despite aborted update: %s", data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
}

func TestPingReportsMissingFile(t *testing.T) {
	store := NewFileStore(config.StoreConfig{Path: filepath.Join(t.TempDir(), "missing.json")}, zap.NewNop())
	if err := store.Ping(context.Background()); err == nil {
		t.Error("expected ping to fail for missing file")
	}

	seeded := newTestStore(t)
	if err := seeded.Ping(context.Background()); err != nil {
		t.Errorf("expected ping to succeed: %v", err)
	}
}
