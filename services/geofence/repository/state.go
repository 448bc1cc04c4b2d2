package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// stateRecord is the on-disk shape of the geofence state. A null court id
// means "outside any court"; lastCheckTime is epoch milliseconds, 0 when no
// evaluation has run yet.
type stateRecord struct {
	CurrentCourtID *string `json:"currentCourtId"`
	LastCheckTime  int64   `json:"lastCheckTime"`
}

// FileStateRepo persists the geofence state as a single JSON document on
// local disk. Writes go through a temp file and rename so a crash mid-write
// never leaves a truncated document behind.
type FileStateRepo struct {
	path string
}

// NewFileStateRepo creates a state repository backed by the given file path.
func NewFileStateRepo(path string) *FileStateRepo {
	return &FileStateRepo{path: path}
}

// Load reads the persisted state. A missing or unreadable document degrades
// to the zero state: auto check-in must keep working after a wiped or
// corrupted file, at worst re-issuing an idempotent check-in.
func (r *FileStateRepo) Load(_ context.Context) (models.GeofenceState, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return models.GeofenceState{}, nil
	}

	var rec stateRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.GeofenceState{}, nil
	}

	state := models.GeofenceState{}
	if rec.CurrentCourtID != nil {
		state.CurrentCourtID = *rec.CurrentCourtID
	}
	if rec.LastCheckTime > 0 {
		state.LastCheckTime = time.UnixMilli(rec.LastCheckTime).UTC()
	}
	return state, nil
}

// Save atomically replaces the persisted state document.
func (r *FileStateRepo) Save(_ context.Context, state models.GeofenceState) error {
	rec := stateRecord{}
	if state.CurrentCourtID != "" {
		rec.CurrentCourtID = &state.CurrentCourtID
	}
	if !state.LastCheckTime.IsZero() {
		rec.LastCheckTime = state.LastCheckTime.UnixMilli()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode geofence state: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".geofence-state-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write geofence state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp state file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// Clear resets the persisted document to the default state. Used on logout
// so a stale court association never survives into the next session.
func (r *FileStateRepo) Clear(ctx context.Context) error {
	return r.Save(ctx, models.GeofenceState{})
}
