package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"gridlock/internal/domain"
	"gridlock/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const snapshotCollection = "match_snapshots"

// NakamaSnapshotStore implements ports.SnapshotStore on Nakama storage.
// Snapshots are server-owned objects keyed by match id.
type NakamaSnapshotStore struct {
	nk runtime.NakamaModule
}

// NewNakamaSnapshotStore creates a new snapshot store.
func NewNakamaSnapshotStore(nk runtime.NakamaModule) *NakamaSnapshotStore {
	return &NakamaSnapshotStore{nk: nk}
}

// SaveSnapshot writes the current snapshot for a match, replacing any
// previous one.
func (s *NakamaSnapshotStore) SaveSnapshot(ctx context.Context, matchID string, snapshot domain.Snapshot) error {
	if matchID == "" {
		return fmt.Errorf("matchID is required")
	}

	value, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.nk.StorageWrite(ctx, []*runtime.StorageWrite{{
		Collection:      snapshotCollection,
		Key:             matchID,
		Value:           string(value),
		PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
	}})
	if err != nil {
		return fmt.Errorf("failed to save snapshot for match %s: %w", matchID, err)
	}
	return nil
}

// LoadSnapshot reads the stored snapshot for a match. A stored object that
// fails to restore into a game is reported as corrupt rather than returned.
func (s *NakamaSnapshotStore) LoadSnapshot(ctx context.Context, matchID string) (domain.Snapshot, bool, error) {
	objects, err := s.nk.StorageRead(ctx, []*runtime.StorageRead{{
		Collection: snapshotCollection,
		Key:        matchID,
	}})
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("failed to read snapshot for match %s: %w", matchID, err)
	}
	if len(objects) == 0 {
		return domain.Snapshot{}, false, nil
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal([]byte(objects[0].GetValue()), &snapshot); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("%w: match %s: %v", domain.ErrCorruptSnapshot, matchID, err)
	}
	if _, err := domain.RestoreGame(snapshot); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("match %s: %w", matchID, err)
	}
	return snapshot, true, nil
}

// DeleteSnapshot removes a finished match's snapshot.
func (s *NakamaSnapshotStore) DeleteSnapshot(ctx context.Context, matchID string) error {
	err := s.nk.StorageDelete(ctx, []*runtime.StorageDelete{{
		Collection: snapshotCollection,
		Key:        matchID,
	}})
	if err != nil {
		return fmt.Errorf("failed to delete snapshot for match %s: %w", matchID, err)
	}
	return nil
}

var _ ports.SnapshotStore = (*NakamaSnapshotStore)(nil)
