// Package dataset holds the single in-memory dataset the dashboard serves
// from. Each upload replaces the whole dataset; there is no merge and no
// incremental update, so a plain RWMutex is all the locking we need.
package dataset

import (
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/equip-dashboard/backend/internal/models"
	"github.com/equip-dashboard/backend/internal/storage"
)

// Manager guards the current dataset and keeps it in sync with the
// snapshot store.
type Manager struct {
	mu        sync.RWMutex
	current   *models.Dataset
	store     *storage.SnapshotStore
	importing atomic.Bool
}

// NewManager creates a manager backed by the given snapshot store.
func NewManager(store *storage.SnapshotStore) *Manager {
	return &Manager{store: store}
}

// Restore loads a previously persisted dataset, if any. Called once at
// startup; an absent snapshot is the normal empty state, not an error.
func (m *Manager) Restore() error {
	ds, ok, err := m.store.Load()
	if err != nil {
		return err
	}
	if !ok {
		log.Info("no persisted dataset, starting empty")
		return nil
	}

	m.mu.Lock()
	m.current = ds
	m.mu.Unlock()

	log.WithFields(log.Fields{
		"file":    ds.FileName,
		"devices": len(ds.Devices),
	}).Info("restored dataset from snapshot")
	return nil
}

// BeginImport marks an import as in flight. It returns false when another
// import is already running; uploads are strictly serialized because a
// second parse racing the first has no defined outcome.
func (m *Manager) BeginImport() bool {
	return m.importing.CompareAndSwap(false, true)
}

// EndImport clears the in-flight marker.
func (m *Manager) EndImport() {
	m.importing.Store(false)
}

// Replace persists the new dataset and then swaps it in. The store write
// happens first so a crash between the two steps loses nothing.
func (m *Manager) Replace(ds *models.Dataset) error {
	if err := m.store.Save(ds); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = ds
	m.mu.Unlock()

	log.WithFields(log.Fields{
		"file":       ds.FileName,
		"devices":    len(ds.Devices),
		"components": ds.ComponentCount(),
	}).Info("dataset replaced")
	return nil
}

// Clear drops the current dataset and its snapshot.
func (m *Manager) Clear() error {
	if err := m.store.Clear(); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return nil
}

// Info returns the metadata view of the current dataset. The second
// return value is false when nothing has been uploaded yet.
func (m *Manager) Info() (models.DatasetInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return models.DatasetInfo{}, false
	}
	return m.current.Info(), true
}

// Devices returns the full device list. The second return value is false
// in the no-data state.
func (m *Manager) Devices() ([]models.Device, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil, false
	}
	return m.current.Devices, true
}

// Device looks up one device by id. hasData distinguishes "no upload yet"
// from "uploaded but no such id"; the two surface as different messages.
func (m *Manager) Device(id int) (device models.Device, found bool, hasData bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return models.Device{}, false, false
	}
	for i := range m.current.Devices {
		if m.current.Devices[i].ID == id {
			return m.current.Devices[i], true, true
		}
	}
	return models.Device{}, false, true
}
