package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Setting keys.
const (
	KeyWeekStart  = "week_start"
	KeyExportDir  = "export_dir"
	KeyEventTitle = "event_title"
)

const defaultEventTitle = "Event"

type Setting struct {
	Key   string
	Value string
}

// ErrNotFound is returned by GetSetting for unknown keys.
var ErrNotFound = errors.New("setting not found")

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("get setting %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// WeekStart returns the first column of the calendar grid. Anything other
// than "sunday" means Monday.
func (s *Store) WeekStart() time.Weekday {
	v, err := s.GetSetting(KeyWeekStart)
	if err == nil && strings.EqualFold(v, "sunday") {
		return time.Sunday
	}
	return time.Monday
}

// ExportDir returns where exports are written, falling back to the home
// directory.
func (s *Store) ExportDir() string {
	if v, err := s.GetSetting(KeyExportDir); err == nil && strings.TrimSpace(v) != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// EventTitle returns the SUMMARY used for exported events.
func (s *Store) EventTitle() string {
	if v, err := s.GetSetting(KeyEventTitle); err == nil && strings.TrimSpace(v) != "" {
		return v
	}
	return defaultEventTitle
}
