// Package storage persists the current dataset as an opaque key-value
// snapshot so every view survives a backend restart. The core's contract
// with it is deliberately thin: one atomic write of the reconstructed
// device list, one read of the same shape back.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/equip-dashboard/backend/internal/models"
)

// Snapshot keys.
const (
	keyDevices    = "devices"
	keyDatasetID  = "dataset_id"
	keyFileName   = "file_name"
	keyUploadedAt = "uploaded_at"
)

// SnapshotStore is a sqlite-backed key-value store holding at most one
// dataset snapshot.
type SnapshotStore struct {
	db *sql.DB
}

// OpenSnapshotStore opens (and if needed creates) the snapshot database.
func OpenSnapshotStore(path string) (*SnapshotStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshot (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshot table: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Save replaces the stored snapshot with the given dataset. The device
// list, filename and upload timestamp are written in one transaction so
// readers never observe a half-written snapshot.
func (s *SnapshotStore) Save(ds *models.Dataset) error {
	devices, err := json.Marshal(ds.Devices)
	if err != nil {
		return fmt.Errorf("encoding device list: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	pairs := map[string]string{
		keyDevices:    string(devices),
		keyDatasetID:  ds.ID,
		keyFileName:   ds.FileName,
		keyUploadedAt: ds.UploadedAt.Format(time.RFC3339),
	}
	for key, value := range pairs {
		if _, err := tx.Exec(
			`INSERT INTO snapshot (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		); err != nil {
			return fmt.Errorf("writing snapshot key %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Load reads the stored snapshot back. The second return value is false
// when no snapshot exists, which downstream treats as the empty/no-data
// state rather than an error.
func (s *SnapshotStore) Load() (*models.Dataset, bool, error) {
	raw, ok, err := s.get(keyDevices)
	if err != nil || !ok {
		return nil, false, err
	}

	var devices []models.Device
	if err := json.Unmarshal([]byte(raw), &devices); err != nil {
		return nil, false, fmt.Errorf("decoding stored device list: %w", err)
	}

	ds := &models.Dataset{Devices: devices}
	if ds.ID, _, err = s.get(keyDatasetID); err != nil {
		return nil, false, err
	}
	if ds.FileName, _, err = s.get(keyFileName); err != nil {
		return nil, false, err
	}
	tsText, _, err := s.get(keyUploadedAt)
	if err != nil {
		return nil, false, err
	}
	if ts, perr := time.Parse(time.RFC3339, tsText); perr == nil {
		ds.UploadedAt = ts
	}
	return ds, true, nil
}

// Clear removes any stored snapshot.
func (s *SnapshotStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM snapshot`); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM snapshot WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading snapshot key %s: %w", key, err)
	}
	return value, true, nil
}
