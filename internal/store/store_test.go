package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// countingStore wraps a Store and counts writes.
type countingStore struct {
	Store
	sets   int
	setErr error
	getErr error
}

func (c *countingStore) Get(ctx context.Context, key string) (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.Store.Get(ctx, key)
}

func (c *countingStore) Set(ctx context.Context, key, value string) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	return c.Store.Set(ctx, key, value)
}

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := s.Get(ctx, KeyStandardHighScore); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}
	if err := s.Set(ctx, KeyStandardHighScore, EncodeHighScore(7)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	raw, err := reopened.Get(ctx, KeyStandardHighScore)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v, err := DecodeHighScore(raw); err != nil || v != 7 {
		t.Fatalf("round trip mismatch: got %d, %v", v, err)
	}

	if err := reopened.Delete(ctx, KeyStandardHighScore); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := reopened.Get(ctx, KeyStandardHighScore); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestOpenFile_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Fatalf("expected error for corrupt store file")
	}
}

func TestOpen_Targets(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, err := Open(ctx, "memory")
	if err != nil {
		t.Fatalf("Open(memory): %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Fatalf("expected *MemoryStore, got %T", s)
	}

	path := filepath.Join(t.TempDir(), "scores.json")
	s, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("Open(path): %v", err)
	}
	if fs, ok := s.(*FileStore); !ok || fs.Path() != path {
		t.Fatalf("expected *FileStore at %s, got %T", path, s)
	}

	s, err = Open(ctx, "file://"+path)
	if err != nil {
		t.Fatalf("Open(file url): %v", err)
	}
	if fs, ok := s.(*FileStore); !ok || fs.Path() != path {
		t.Fatalf("expected *FileStore at %s, got %T", path, s)
	}

	if _, err := Open(ctx, "ftp://example.com/x"); !errors.Is(err, ErrUnsupportedScheme) {
		t.Fatalf("expected ErrUnsupportedScheme, got %v", err)
	}
}

func TestDecodeHighScore(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, 1, 42, 1 << 20} {
		got, err := DecodeHighScore(EncodeHighScore(v))
		if err != nil || got != v {
			t.Fatalf("round trip %d: got %d, %v", v, got, err)
		}
	}
	if v, err := DecodeHighScore("abc"); err == nil || v != 0 {
		t.Fatalf("expected 0 and error for garbage, got %d, %v", v, err)
	}
	if _, err := DecodeHighScore("-3"); err == nil {
		t.Fatalf("expected error for negative value")
	}
}

func TestHighScores_SubmitWritesOnlyImprovements(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cs := &countingStore{Store: NewMemoryStore()}
	if err := cs.Store.Set(ctx, KeyStandardHighScore, "5"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	hs := NewHighScores(cs)

	if got := hs.Load(ctx, "standard"); got != 5 {
		t.Fatalf("Load: got %d", got)
	}
	for _, v := range []int{3, 5} {
		beaten, err := hs.Submit(ctx, "standard", v)
		if err != nil || beaten {
			t.Fatalf("Submit(%d): beaten=%v err=%v", v, beaten, err)
		}
	}
	if cs.sets != 0 {
		t.Fatalf("expected no writes, got %d", cs.sets)
	}

	beaten, err := hs.Submit(ctx, "standard", 6)
	if err != nil || !beaten {
		t.Fatalf("Submit(6): beaten=%v err=%v", beaten, err)
	}
	if cs.sets != 1 {
		t.Fatalf("expected exactly one write, got %d", cs.sets)
	}
	raw, _ := cs.Store.Get(ctx, KeyStandardHighScore)
	if raw != "6" {
		t.Fatalf("stored value mismatch: %q", raw)
	}

	// Survival is independent.
	if got := hs.Load(ctx, "survival"); got != 0 {
		t.Fatalf("survival Load: got %d", got)
	}
}

func TestHighScores_DegradesOnStorageFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("disk on fire")
	cs := &countingStore{Store: NewMemoryStore(), getErr: boom, setErr: boom}
	hs := NewHighScores(cs)

	if got := hs.Load(ctx, "survival"); got != 0 {
		t.Fatalf("expected 0 on read failure, got %d", got)
	}
	beaten, err := hs.Submit(ctx, "survival", 12)
	if !beaten || !errors.Is(err, boom) {
		t.Fatalf("expected beaten with wrapped error, got %v, %v", beaten, err)
	}
	if got := hs.Load(ctx, "survival"); got != 12 {
		t.Fatalf("expected in-memory best 12, got %d", got)
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()

	if _, ok, err := LoadSettings(ctx, s); ok || err != nil {
		t.Fatalf("expected no settings, got ok=%v err=%v", ok, err)
	}

	want := Settings{Difficulty: "hard", MaxPoints: 7, SoundOn: true, UserSide: "right", GameMode: "survival"}
	if err := SaveSettings(ctx, s, want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, ok, err := LoadSettings(ctx, s)
	if err != nil || !ok {
		t.Fatalf("LoadSettings: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("settings mismatch: got %+v want %+v", got, want)
	}

	if err := s.Set(ctx, KeySettings, "garbage"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, _, err := LoadSettings(ctx, s); err == nil {
		t.Fatalf("expected parse error")
	}
}
