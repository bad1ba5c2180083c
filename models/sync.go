package models

// SyncResult is the structured outcome of one sync pass (push, pull, or both).
type SyncResult struct {
	// Success is false when the pass could not run at all (device offline,
	// another pass in flight) or when at least one record failed.
	Success bool `json:"success"`

	// Synced counts records successfully applied during the pass.
	Synced int `json:"synced"`

	// Failed counts records that errored and were left for the next trigger.
	Failed int `json:"failed"`

	// Conflicts lists the audit entries appended during this pass. Empty for
	// a push-only pass.
	Conflicts []ConflictLogEntry `json:"conflicts,omitempty"`
}

// Merge folds another result into r, preserving failure stickiness.
func (r SyncResult) Merge(other SyncResult) SyncResult {
	return SyncResult{
		Success:   r.Success && other.Success,
		Synced:    r.Synced + other.Synced,
		Failed:    r.Failed + other.Failed,
		Conflicts: append(r.Conflicts, other.Conflicts...),
	}
}

// RemoteSale is the remote store's view of a durably applied sale.
type RemoteSale struct {
	RemoteID       string  `json:"remote_id"`
	IdempotencyKey string  `json:"idempotency_key"`
	TenantID       string  `json:"tenant_id"`
	UserID         string  `json:"user_id"`
	Total          float64 `json:"total"`
	CreatedAt      int64   `json:"created_at"`
}

// Stock history reason codes.
const (
	StockReasonSale = "sale"
)

// StockMovement is one stock-history entry appended after a deduction.
type StockMovement struct {
	ProductID   string  `json:"product_id"`
	Delta       float64 `json:"delta"`
	Reason      string  `json:"reason"`
	ReferenceID string  `json:"reference_id"`
	OccurredAt  int64   `json:"occurred_at"`
}

// Session identifies an authenticated operator against the remote store.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}
