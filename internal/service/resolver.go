// Package service implements the sync engine core: the pending-sale queue,
// the last-write-wins conflict resolver, and the orchestrator that drives
// push and pull passes against the remote store.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/internal/store"
	"github.com/retailpoint/possync/internal/utils"
	"github.com/retailpoint/possync/models"
)

// Resolve decides between two versions of a replicated entity by comparing
// last-modified timestamps (milliseconds since epoch). The local copy wins
// only when its timestamp is strictly greater; on an exact tie the remote
// copy wins, because the server is the eventual source of truth.
//
// The decision depends on nothing but the two timestamps, so it is
// deterministic and symmetric across devices.
func Resolve(localTS, remoteTS int64) models.Resolution {
	if localTS > remoteTS {
		return models.ResolutionLocal
	}
	return models.ResolutionRemote
}

// ConflictResolver applies Resolve and records every decision in the
// append-only conflict audit trail. One detected conflict produces exactly
// one log entry, whichever side wins.
type ConflictResolver struct {
	conflicts store.ConflictLogRepository
	ids       *utils.UUIDGenerator
	logger    *logger.Logger

	now func() time.Time
}

func NewConflictResolver(conflicts store.ConflictLogRepository, log *logger.Logger) *ConflictResolver {
	return &ConflictResolver{
		conflicts: conflicts,
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
		now:       time.Now,
	}
}

// ResolveAndLog decides the conflict, appends the audit entry with full
// snapshots of both versions, and returns the entry so the caller can act on
// entry.Resolution. The append failing fails the resolution: an unaudited
// decision must not be applied.
func (r *ConflictResolver) ResolveAndLog(
	ctx context.Context,
	tenantID, entityType, entityID string,
	local, remote any,
	localTS, remoteTS int64,
) (models.ConflictLogEntry, error) {
	localSnap, err := json.Marshal(local)
	if err != nil {
		return models.ConflictLogEntry{}, fmt.Errorf("snapshot local %s %s: %w", entityType, entityID, err)
	}
	remoteSnap, err := json.Marshal(remote)
	if err != nil {
		return models.ConflictLogEntry{}, fmt.Errorf("snapshot remote %s %s: %w", entityType, entityID, err)
	}

	entry := models.ConflictLogEntry{
		ID:             r.ids.Generate(),
		TenantID:       tenantID,
		EntityType:     entityType,
		EntityID:       entityID,
		LocalSnapshot:  string(localSnap),
		RemoteSnapshot: string(remoteSnap),
		Resolution:     Resolve(localTS, remoteTS),
		ResolvedAt:     r.now().UnixMilli(),
	}

	entry, err = r.conflicts.Append(ctx, entry)
	if err != nil {
		r.logger.Err(err).Str("func", "ResolveAndLog").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("error appending conflict audit entry")
		return models.ConflictLogEntry{}, fmt.Errorf("append conflict entry for %s %s: %w", entityType, entityID, err)
	}

	r.logger.Info().
		Str("entity_type", entityType).
		Str("entity_id", entityID).
		Str("resolution", string(entry.Resolution)).
		Int64("local_ts", localTS).
		Int64("remote_ts", remoteTS).
		Msg("conflict resolved")

	return entry, nil
}
