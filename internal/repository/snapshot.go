package repository

import (
	"encoding/json"
	"fmt"

	"wemoment-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// DefaultKey is the name the state document is stored under
const DefaultKey = "wemoment_data"

// encodeSnapshot serializes the whole state tree with the current version
func encodeSnapshot(state models.AppState) ([]byte, error) {
	data, err := json.Marshal(models.Snapshot{
		Version:  models.SnapshotVersion,
		AppState: state,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot parses a stored document. Malformed documents and
// documents written by a newer version are treated as absent.
func decodeSnapshot(key string, data []byte) *models.AppState {
	if len(data) == 0 {
		return nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Stored snapshot is corrupt, ignoring")
		return nil
	}

	if snap.Version > models.SnapshotVersion {
		log.Warn().
			Str("key", key).
			Int("version", snap.Version).
			Msg("Stored snapshot has unsupported version, ignoring")
		return nil
	}

	state := migrateSnapshot(snap).Normalize()
	return &state
}

// migrateSnapshot upgrades older documents to the current shape.
// Version 0 documents predate the version field and already match version 1.
func migrateSnapshot(snap models.Snapshot) models.AppState {
	return snap.AppState
}
