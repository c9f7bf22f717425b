// Package history persists finished translations in SQLite and serves
// them back as a cache, recent-activity listing, and usage stats.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// migrations is an ordered list of SQL migration statements. Each entry
// is applied once in order; new migrations are appended at the end.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS translations (
		id              TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		source_text     TEXT NOT NULL,
		translated_text TEXT NOT NULL,
		source_lang     TEXT NOT NULL,
		target_lang     TEXT NOT NULL,
		provider        TEXT NOT NULL,
		created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_translations_lookup
		ON translations (source_text, source_lang, target_lang, created_at)`,
}

// Entry is one recorded translation.
type Entry struct {
	ID             string
	SourceText     string
	TranslatedText string
	SourceLang     string
	TargetLang     string
	Provider       string
	CreatedAt      time.Time
}

// Stats aggregates the stored history.
type Stats struct {
	Total      int
	ByProvider map[string]int
	ByPair     map[string]int
}

// Store wraps the history database.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the history database at path and applies
// migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("history: create directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open sqlite: %w", err)
	}

	// Single writer, multiple readers.
	conn.SetMaxOpenConns(1)

	for _, m := range migrations {
		if _, err := conn.Exec(m); err != nil {
			conn.Close()
			return nil, fmt.Errorf("history: apply migration: %w", err)
		}
	}
	return &Store{conn: conn}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Record persists a finished translation. Implements
// translate.Recorder.
func (s *Store) Record(sourceText, translated, sourceLang, targetLang, provider string) error {
	_, err := s.conn.Exec(
		`INSERT INTO translations (source_text, translated_text, source_lang, target_lang, provider)
		 VALUES (?, ?, ?, ?, ?)`,
		sourceText, translated, sourceLang, targetLang, provider)
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// Lookup returns the most recent stored translation for the request, if
// any. Implements translate.Recorder.
func (s *Store) Lookup(sourceText, sourceLang, targetLang string) (string, bool) {
	var out string
	err := s.conn.QueryRow(
		`SELECT translated_text FROM translations
		 WHERE source_text = ? AND source_lang = ? AND target_lang = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		sourceText, sourceLang, targetLang).Scan(&out)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		return "", false
	}
	return out, true
}

// Recent returns the n most recent entries, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.conn.Query(
		`SELECT id, source_text, translated_text, source_lang, target_lang, provider, created_at
		 FROM translations ORDER BY created_at DESC, rowid DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("history: recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SourceText, &e.TranslatedText,
			&e.SourceLang, &e.TargetLang, &e.Provider, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats aggregates counts by provider and language pair.
func (s *Store) Stats() (Stats, error) {
	st := Stats{ByProvider: map[string]int{}, ByPair: map[string]int{}}

	rows, err := s.conn.Query(
		`SELECT provider, source_lang || '->' || target_lang AS pair, COUNT(*)
		 FROM translations GROUP BY provider, pair`)
	if err != nil {
		return st, fmt.Errorf("history: stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var provider, pair string
		var n int
		if err := rows.Scan(&provider, &pair, &n); err != nil {
			return st, fmt.Errorf("history: scan: %w", err)
		}
		st.ByProvider[provider] += n
		st.ByPair[pair] += n
		st.Total += n
	}
	return st, rows.Err()
}
