// Package sqlsource serves calendar data from a database/sql table.
package sqlsource

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	_ "modernc.org/sqlite"

	calendars "github.com/goliatone/go-calendars"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS calendar_data (
		schema_key TEXT NOT NULL,
		locale TEXT NOT NULL,
		payload BLOB NOT NULL,
		PRIMARY KEY (schema_key, locale)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_calendar_data_key ON calendar_data(schema_key)`,
}

// Source implements calendars.DataSource over the calendar_data table.
// Connection pooling and locking are left to *sql.DB.
type Source struct {
	db     *sql.DB
	path   string
	closer bool
}

var _ calendars.DataSource = (*Source)(nil)

// Open creates or opens a SQLite database at path using the modernc driver.
func Open(path string) (*Source, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlsource: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlsource: open %s: %w", path, err)
	}

	src, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	src.path = path
	src.closer = true
	return src, nil
}

// New wraps an existing database and ensures the table exists. The caller
// keeps ownership of db.
func New(db *sql.DB) (*Source, error) {
	if db == nil {
		return nil, errors.New("sqlsource: nil database")
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("sqlsource: initialize schema: %w", err)
		}
	}
	return &Source{db: db}, nil
}

// Close closes the database if it was opened by Open.
func (s *Source) Close() error {
	if s == nil || !s.closer {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path, empty for wrapped databases.
func (s *Source) Path() string {
	return s.path
}

// Put stores or replaces a payload.
func (s *Source) Put(key calendars.SchemaKey, locale language.Tag, payload []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO calendar_data (schema_key, locale, payload) VALUES (?, ?, ?)
		 ON CONFLICT(schema_key, locale) DO UPDATE SET payload = excluded.payload`,
		key.String(), calendars.LocaleKey(locale), payload,
	)
	if err != nil {
		return fmt.Errorf("sqlsource: put %s/%s: %w", key, locale, err)
	}
	return nil
}

// Load implements calendars.DataSource. Unknown keys report
// calendars.ErrUnsupportedSchema, known keys without the locale report
// calendars.ErrDataUnavailable.
func (s *Source) Load(req calendars.DataRequest) (calendars.DataResponse, error) {
	var payload []byte
	err := s.db.QueryRow(
		`SELECT payload FROM calendar_data WHERE schema_key = ? AND locale = ?`,
		req.Key.String(), calendars.LocaleKey(req.Locale),
	).Scan(&payload)

	switch {
	case err == nil:
		return calendars.DataResponse{Payload: payload}, nil
	case errors.Is(err, sql.ErrNoRows):
		known, kerr := s.hasKey(req.Key)
		if kerr != nil {
			return calendars.DataResponse{}, &calendars.DataError{Key: req.Key, Locale: req.Locale, Err: kerr}
		}
		if !known {
			return calendars.DataResponse{}, &calendars.DataError{Key: req.Key, Locale: req.Locale, Err: calendars.ErrUnsupportedSchema}
		}
		return calendars.DataResponse{}, &calendars.DataError{Key: req.Key, Locale: req.Locale, Err: calendars.ErrDataUnavailable}
	default:
		return calendars.DataResponse{}, &calendars.DataError{Key: req.Key, Locale: req.Locale, Err: fmt.Errorf("sqlsource: query: %w", err)}
	}
}

// Keys returns the distinct schema keys stored in the table, sorted.
func (s *Source) Keys() ([]calendars.SchemaKey, error) {
	rows, err := s.db.Query(`SELECT DISTINCT schema_key FROM calendar_data ORDER BY schema_key`)
	if err != nil {
		return nil, fmt.Errorf("sqlsource: list keys: %w", err)
	}
	defer rows.Close()

	var keys []calendars.SchemaKey
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("sqlsource: scan key: %w", err)
		}
		keys = append(keys, calendars.SchemaKey(key))
	}
	return keys, rows.Err()
}

func (s *Source) hasKey(key calendars.SchemaKey) (bool, error) {
	var exists int
	err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM calendar_data WHERE schema_key = ?)`,
		key.String(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sqlsource: lookup key: %w", err)
	}
	return exists == 1, nil
}
