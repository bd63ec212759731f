package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/zoneline/internal/constants"
	"github.com/julianstephens/zoneline/internal/models"
	"github.com/julianstephens/zoneline/internal/tztable"
	_ "modernc.org/sqlite"
)

// schemaVersion is stored in PRAGMA user_version. Bump together with the
// schema below.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS zones (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	source     TEXT NOT NULL,
	table_json TEXT NOT NULL,
	created_at TEXT NOT NULL,
	deleted_at TEXT
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'zoneline init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("schema version mismatch: database has %d, this build expects %d", version, schemaVersion)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "default_zone":
			settings.DefaultZone = value
		case "from_year":
			if _, err := fmt.Sscanf(value, "%d", &settings.FromYear); err != nil {
				return Settings{}, fmt.Errorf("parsing from_year: %w", err)
			}
		case "to_year":
			if _, err := fmt.Sscanf(value, "%d", &settings.ToYear); err != nil {
				return Settings{}, fmt.Errorf("parsing to_year: %w", err)
			}
		}
		count++
	}

	if count == 0 {
		return Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("default_zone", settings.DefaultZone); err != nil {
		return err
	}
	if _, err := stmt.Exec("from_year", fmt.Sprintf("%d", settings.FromYear)); err != nil {
		return err
	}
	if _, err := stmt.Exec("to_year", fmt.Sprintf("%d", settings.ToYear)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddZone(zone models.ZoneRecord) error {
	return s.UpdateZone(zone)
}

func (s *SQLiteStore) GetZone(name string) (models.ZoneRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, name, source, table_json, created_at, deleted_at
		FROM zones WHERE name = ? AND deleted_at IS NULL`, name)
	return scanZone(row)
}

func (s *SQLiteStore) GetAllZones(includeDeleted bool) ([]models.ZoneRecord, error) {
	query := "SELECT id, name, source, table_json, created_at, deleted_at FROM zones"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY name"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []models.ZoneRecord
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return zones, rows.Err()
}

func (s *SQLiteStore) UpdateZone(zone models.ZoneRecord) error {
	if zone.Table == nil {
		return fmt.Errorf("zone %q has no transition table", zone.Name)
	}
	tableJSON, err := json.Marshal(zone.Table)
	if err != nil {
		return fmt.Errorf("failed to marshal transition table: %w", err)
	}

	var deletedAt sql.NullString
	if zone.DeletedAt != nil {
		deletedAt = sql.NullString{String: *zone.DeletedAt, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO zones (id, name, source, table_json, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		zone.ID, zone.Name, zone.Source, string(tableJSON), zone.CreatedAt, deletedAt,
	)
	return err
}

func (s *SQLiteStore) DeleteZone(name string) error {
	// Soft delete: set deleted_at timestamp instead of removing the record
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM zones WHERE name = ?", name).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("zone %q not found", name)
		}
		return fmt.Errorf("failed to check zone existence: %w", err)
	}

	if deletedAt.Valid {
		return fmt.Errorf("zone %q is already deleted", name)
	}

	now := time.Now().UTC().Format(constants.TimestampFormat)
	_, err = s.db.Exec("UPDATE zones SET deleted_at = ? WHERE name = ?", now, name)
	return err
}

func (s *SQLiteStore) RestoreZone(name string) error {
	// Restore a soft-deleted zone by clearing deleted_at
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM zones WHERE name = ?", name).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("zone %q not found", name)
		}
		return fmt.Errorf("failed to check zone existence: %w", err)
	}

	if !deletedAt.Valid {
		return fmt.Errorf("cannot restore a zone that is not deleted: %s", name)
	}

	_, err = s.db.Exec("UPDATE zones SET deleted_at = NULL WHERE name = ?", name)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// scanZone reads one zone row. Works for both QueryRow and Query rows.
func scanZone(row interface{ Scan(...any) error }) (models.ZoneRecord, error) {
	var z models.ZoneRecord
	var source, tableJSON string
	var deletedAt sql.NullString

	if err := row.Scan(&z.ID, &z.Name, &source, &tableJSON, &z.CreatedAt, &deletedAt); err != nil {
		if err == sql.ErrNoRows {
			return models.ZoneRecord{}, fmt.Errorf("zone not found")
		}
		return models.ZoneRecord{}, err
	}

	z.Source = models.ZoneSource(source)
	if deletedAt.Valid {
		z.DeletedAt = &deletedAt.String
	}

	var table tztable.Table
	if err := json.Unmarshal([]byte(tableJSON), &table); err != nil {
		return models.ZoneRecord{}, fmt.Errorf("failed to parse stored transition table for %q: %w", z.Name, err)
	}
	z.Table = &table

	return z, nil
}
