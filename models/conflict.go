package models

// Resolution is the outcome of a last-write-wins decision between a local and
// a remote version of a replicated entity.
type Resolution string

const (
	// ResolutionLocal means the local copy survived.
	ResolutionLocal Resolution = "local"
	// ResolutionRemote means the remote copy survived. Remote also wins on
	// exact timestamp ties: the server is the eventual source of truth.
	ResolutionRemote Resolution = "remote"
)

// EntityTypeProduct is the entity type recorded for product cache conflicts.
const EntityTypeProduct = "product"

// ConflictLogEntry is one record of the append-only conflict audit trail.
// Entries are immutable once written and are never deleted during normal
// operation.
type ConflictLogEntry struct {
	ID             string     `json:"id"`
	TenantID       string     `json:"tenant_id"`
	EntityType     string     `json:"entity_type"`
	EntityID       string     `json:"entity_id"`
	LocalSnapshot  string     `json:"local_snapshot"`
	RemoteSnapshot string     `json:"remote_snapshot"`
	Resolution     Resolution `json:"resolution"`

	// ResolvedAt is the resolution time in milliseconds since epoch.
	ResolvedAt int64 `json:"resolved_at"`
}
