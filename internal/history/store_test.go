package history

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_RecordAndLookup(t *testing.T) {
	s := openTestStore(t)

	if _, ok := s.Lookup("hello", "en", "zh"); ok {
		t.Error("lookup on empty store should miss")
	}

	if err := s.Record("hello", "你好", "en", "zh", "dict"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, ok := s.Lookup("hello", "en", "zh")
	if !ok {
		t.Fatal("lookup after record should hit")
	}
	if got != "你好" {
		t.Errorf("got %q, want 你好", got)
	}

	// Different pair misses.
	if _, ok := s.Lookup("hello", "en", "ja"); ok {
		t.Error("different target language should miss")
	}
}

func TestStore_LookupNewestWins(t *testing.T) {
	s := openTestStore(t)

	if err := s.Record("hello", "old", "en", "zh", "dict"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record("hello", "new", "en", "zh", "baidu"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, ok := s.Lookup("hello", "en", "zh")
	if !ok {
		t.Fatal("expected hit")
	}
	if got != "new" {
		t.Errorf("got %q, want the newest entry", got)
	}
}

func TestStore_Recent(t *testing.T) {
	s := openTestStore(t)

	for _, text := range []string{"one", "two", "three"} {
		if err := s.Record(text, "["+text+"]", "en", "zh", "dict"); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].SourceText != "three" {
		t.Errorf("newest first: got %q", entries[0].SourceText)
	}
	if entries[0].Provider != "dict" {
		t.Errorf("provider: got %q", entries[0].Provider)
	}
}

func TestStore_Stats(t *testing.T) {
	s := openTestStore(t)

	s.Record("a", "x", "en", "zh", "dict")
	s.Record("b", "y", "en", "zh", "dict")
	s.Record("c", "z", "ja", "en", "baidu")

	st, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Total != 3 {
		t.Errorf("total: got %d, want 3", st.Total)
	}
	if st.ByProvider["dict"] != 2 {
		t.Errorf("dict count: got %d, want 2", st.ByProvider["dict"])
	}
	if st.ByPair["en->zh"] != 2 {
		t.Errorf("en->zh count: got %d, want 2", st.ByPair["en->zh"])
	}
	if st.ByPair["ja->en"] != 1 {
		t.Errorf("ja->en count: got %d, want 1", st.ByPair["ja->en"])
	}
}
