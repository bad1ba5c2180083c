package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/retailpoint/possync/internal/config"
	"github.com/retailpoint/possync/internal/connectivity"
	handler "github.com/retailpoint/possync/internal/handler/http"
	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/internal/remote"
	"github.com/retailpoint/possync/internal/service"
	"github.com/retailpoint/possync/internal/store"
	"github.com/retailpoint/possync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("possync")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		if !errors.Is(err, store.ErrStorageUnavailable) {
			log.Fatal().Err(err).Msg("create local storage")
		}
		// Degraded mode: the engine keeps running on volatile storage and
		// everything captured before the next restart must sync out first.
		log.Warn().Err(err).Msg("running degraded, local captures are not durable")
	}

	remoteStore, err := newRemoteStore(ctx, cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store")
	}

	tenantID := cfg.App.TenantID

	monitor := connectivity.NewMonitor(ctx, remoteStore, cfg.Sync.ProbeInterval, log.GetChildLogger())
	monitor.Start(ctx)
	defer monitor.Stop()

	queue := service.NewQueue(storages.PendingSales, log)
	resolver := service.NewConflictResolver(storages.Conflicts, log)
	status := service.NewStatusTracker()
	orchestrator := service.NewOrchestrator(queue, storages.Products, resolver,
		remoteStore, monitor, status, log)

	policy := service.RetryPolicy{Base: cfg.Sync.RetryBase, Cap: cfg.Sync.RetryCap}
	jobs := workers.NewWorkers(
		workers.NewSyncWorker(orchestrator, monitor, queue, tenantID,
			cfg.Sync.Interval, policy, cfg.Sync.PruneAfter, log.GetChildLogger()),
		workers.NewPendingCountWorker(queue, status, tenantID,
			cfg.Sync.PendingPollInterval, log.GetChildLogger()),
	)
	jobs.Run(ctx)
	defer jobs.Stop()

	h := handler.NewHandler(orchestrator, status, monitor, tenantID, log)
	srv := &http.Server{
		Addr:    cfg.Diagnostics.HTTPAddress,
		Handler: h.Init(),
	}
	go func() {
		log.Info().Str("address", srv.Addr).Msg("diagnostics endpoint listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("diagnostics server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("diagnostics server shutdown error")
	}
}

// newRemoteStore selects the remote adapter from configuration: the HTTP
// adapter when an API address is set, the direct Postgres adapter when a
// database URI is set. Validation guarantees exactly one of the two.
func newRemoteStore(ctx context.Context, cfg config.Remote, log *logger.Logger) (remote.Store, error) {
	if cfg.DatabaseURI != "" {
		return remote.NewPostgresStore(ctx, cfg, log)
	}

	httpStore, err := remote.NewHTTPStore(cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.Login != "" {
		session, err := httpStore.Login(ctx, cfg.Login, cfg.Password)
		if err != nil {
			// Login failing at startup usually means the device is offline.
			// The monitor will report Offline and the session is retried by
			// the adapter on the first authenticated call.
			log.Warn().Err(err).Msg("remote login failed, continuing offline")
		} else {
			log.Info().Str("user_id", session.UserID).Msg("remote session established")
		}
	}

	return httpStore, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
