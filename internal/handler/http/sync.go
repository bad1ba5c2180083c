package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/models"
)

// statusResponse is the payload of GET /api/sync/status.
type statusResponse struct {
	Online       bool               `json:"online"`
	PendingCount int                `json:"pending_count"`
	LastSyncAt   *time.Time         `json:"last_sync_at,omitempty"`
	LastResult   *models.SyncResult `json:"last_result,omitempty"`
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	snap := h.status.Snapshot()

	h.writeJSON(w, r, http.StatusOK, statusResponse{
		Online:       h.online.IsOnline(),
		PendingCount: snap.PendingCount,
		LastSyncAt:   snap.LastSyncAt,
		LastResult:   snap.LastResult,
	})
}

// syncNow runs a full pass synchronously and returns its result. A trigger
// while a pass is in flight or while offline comes back as an all-zero
// result; the caller reads Success=false with zero counts as "nothing ran".
func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	res := h.orchestrator.SyncAll(r.Context(), h.tenantID)
	h.writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error encoding response")
	}
}
