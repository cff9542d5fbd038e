package credstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// exerciseStore runs the single-slot contract every backend must honor.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Load(ctx); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}

	if err := s.Save(ctx, "abc"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if token, ok, err := s.Load(ctx); err != nil || !ok || token != "abc" {
		t.Fatalf("expected abc, got %q ok=%v err=%v", token, ok, err)
	}

	if err := s.Save(ctx, "def"); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	if token, _, _ := s.Load(ctx); token != "def" {
		t.Fatalf("expected overwrite to def, got %q", token)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, err := s.Load(ctx); err != nil || ok {
		t.Fatalf("expected cleared store, got ok=%v err=%v", ok, err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear on empty store: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	exerciseStore(t, NewFileStore(path, ""))

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected file removed after clear, stat err=%v", err)
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "creds.json")

	if err := NewFileStore(path, DefaultKey).Save(ctx, "persisted"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	token, ok, err := NewFileStore(path, DefaultKey).Load(ctx)
	if err != nil || !ok || token != "persisted" {
		t.Fatalf("expected persisted token, got %q ok=%v err=%v", token, ok, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600, got %v", perm)
	}
}

func TestFileStore_KeepsOtherKeys(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "creds.json")

	other := NewFileStore(path, "other")
	if err := other.Save(ctx, "x"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s := NewFileStore(path, DefaultKey)
	if err := s.Save(ctx, "abc"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if token, ok, _ := other.Load(ctx); !ok || token != "x" {
		t.Errorf("clearing one key removed another: %q ok=%v", token, ok)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := NewFileStore(path, "").Load(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "creds.db")

	s, err := NewSQLiteStore(ctx, path, DefaultNamespace, DefaultKey)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	exerciseStore(t, s)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	s, err := NewRedisStore(ctx, RedisOptions{Addr: addr, Namespace: "storefront-test-" + t.Name()})
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	t.Cleanup(func() {
		s.Clear(ctx)
		s.Close()
	})

	exerciseStore(t, s)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		want    string
		wantErr error
	}{
		{"default is file", Config{Path: filepath.Join(dir, "a.json")}, "*credstore.FileStore", nil},
		{"memory", Config{Backend: "memory"}, "*credstore.MemoryStore", nil},
		{"sqlite", Config{Backend: "SQLite", SQLitePath: filepath.Join(dir, "b.db")}, "*credstore.SQLiteStore", nil},
		{"unknown", Config{Backend: "etcd"}, "", ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(ctx, tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			t.Cleanup(func() { s.Close() })

			var got string
			switch s.(type) {
			case *FileStore:
				got = "*credstore.FileStore"
			case *MemoryStore:
				got = "*credstore.MemoryStore"
			case *SQLiteStore:
				got = "*credstore.SQLiteStore"
			}
			if got != tt.want {
				t.Errorf("expected %s, got %T", tt.want, s)
			}
		})
	}
}
