// Package store persists saved markups in an embedded SQLite library.
// modernc.org/sqlite is pure Go, so the library needs no C toolchain and
// tests can run against :memory:.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"photo-markup/internal/annotation"
)

// ErrNotFound is returned when a markup id has no row.
var ErrNotFound = errors.New("store: markup not found")

// PhotoAnnotation is one saved markup: the photo it belongs to, the
// annotation payload, and optional title and notes from the save dialog.
// Payloads are immutable; re-saving a session creates a new record.
type PhotoAnnotation struct {
	ID        string
	PhotoPath string
	Title     string
	Notes     string
	Data      annotation.Data
	CreatedAt time.Time
}

// Store wraps the SQLite connection pool.
type Store struct {
	conn *sql.DB
	log  *zap.Logger
}

// Open opens (creating if needed) the markup library at path. Use ":memory:"
// for an ephemeral library.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: pinging database: %w", err)
	}

	// WAL keeps reads available while a save is writing. Foreign keys are
	// off by default in SQLite and must be enabled per connection.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("store: %s: %w", pragma, err)
		}
	}

	s := &Store{conn: conn, log: log}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: running migrations: %w", err)
	}
	log.Info("markup library opened", zap.String("path", path))
	return s, nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS markups (
			id         TEXT PRIMARY KEY,
			photo_path TEXT NOT NULL,
			title      TEXT NOT NULL DEFAULT '',
			notes      TEXT NOT NULL DEFAULT '',
			data       TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_markups_photo_path ON markups(photo_path);
		CREATE INDEX IF NOT EXISTS idx_markups_created_at ON markups(created_at);
	`)
	if err != nil {
		return fmt.Errorf("creating markups table: %w", err)
	}
	return nil
}

// Save inserts a new markup record and returns it with its assigned id and
// creation time. The annotation payload is stored as JSON.
func (s *Store) Save(photoPath, title, notes string, data annotation.Data) (PhotoAnnotation, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return PhotoAnnotation{}, fmt.Errorf("store: encoding markup: %w", err)
	}

	rec := PhotoAnnotation{
		ID:        uuid.NewString(),
		PhotoPath: photoPath,
		Title:     title,
		Notes:     notes,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.conn.Exec(
		`INSERT INTO markups (id, photo_path, title, notes, data, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.PhotoPath, rec.Title, rec.Notes, string(payload), rec.CreatedAt,
	)
	if err != nil {
		return PhotoAnnotation{}, fmt.Errorf("store: inserting markup: %w", err)
	}

	s.log.Info("markup saved",
		zap.String("id", rec.ID),
		zap.String("photo", rec.PhotoPath),
		zap.Int("annotations", len(data.Annotations)))
	return rec, nil
}

// Get fetches one markup by id. Returns ErrNotFound if absent.
func (s *Store) Get(id string) (PhotoAnnotation, error) {
	row := s.conn.QueryRow(
		`SELECT id, photo_path, title, notes, data, created_at
		 FROM markups WHERE id = ?`, id)
	rec, err := scanMarkup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return PhotoAnnotation{}, ErrNotFound
	}
	if err != nil {
		return PhotoAnnotation{}, fmt.Errorf("store: fetching markup %s: %w", id, err)
	}
	return rec, nil
}

// ListByPhoto returns all markups for a photo, oldest first.
func (s *Store) ListByPhoto(photoPath string) ([]PhotoAnnotation, error) {
	return s.list(
		`SELECT id, photo_path, title, notes, data, created_at
		 FROM markups WHERE photo_path = ? ORDER BY created_at, id`, photoPath)
}

// List returns every markup in the library, oldest first.
func (s *Store) List() ([]PhotoAnnotation, error) {
	return s.list(
		`SELECT id, photo_path, title, notes, data, created_at
		 FROM markups ORDER BY created_at, id`)
}

func (s *Store) list(query string, args ...any) ([]PhotoAnnotation, error) {
	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: listing markups: %w", err)
	}
	defer rows.Close()

	var out []PhotoAnnotation
	for rows.Next() {
		rec, err := scanMarkup(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scanning markup: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterating markups: %w", err)
	}
	return out, nil
}

// Delete removes a markup. Returns ErrNotFound if the id has no row.
func (s *Store) Delete(id string) error {
	res, err := s.conn.Exec(`DELETE FROM markups WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: deleting markup %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: deleting markup %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	s.log.Info("markup deleted", zap.String("id", id))
	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMarkup(sc scanner) (PhotoAnnotation, error) {
	var (
		rec     PhotoAnnotation
		payload string
	)
	if err := sc.Scan(&rec.ID, &rec.PhotoPath, &rec.Title, &rec.Notes, &payload, &rec.CreatedAt); err != nil {
		return PhotoAnnotation{}, err
	}
	if err := json.Unmarshal([]byte(payload), &rec.Data); err != nil {
		return PhotoAnnotation{}, fmt.Errorf("decoding payload: %w", err)
	}
	return rec, nil
}
