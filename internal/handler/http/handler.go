// Package http exposes the engine's local diagnostics API: sync status for
// the pending-count badge and a manual sync trigger. The listener is meant to
// bind loopback only; there is no authentication layer.
package http

import (
	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/internal/service"
)

type Handler struct {
	orchestrator *service.Orchestrator
	status       *service.StatusTracker
	online       service.OnlineChecker
	tenantID     string

	logger *logger.Logger
}

func NewHandler(
	orchestrator *service.Orchestrator,
	status *service.StatusTracker,
	online service.OnlineChecker,
	tenantID string,
	log *logger.Logger,
) *Handler {
	log.Info().Msg("diagnostics handler created")
	return &Handler{
		orchestrator: orchestrator,
		status:       status,
		online:       online,
		tenantID:     tenantID,
		logger:       log,
	}
}
