// Package connectivity tracks whether the remote store is reachable and
// notifies subscribers on Online/Offline transitions.
//
// There is no platform reachability signal to lean on, so the monitor probes
// the remote store's health endpoint on a fixed interval. A successful probe
// is best-effort: it can report Online moments before a call fails, which is
// why the orchestrator still checks per-call errors.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/retailpoint/possync/internal/logger"
)

// Pinger is the reachability probe. The remote store satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor is a two-state (Online/Offline) machine driven entirely by probe
// results, never by application logic. Construct one per process, subscribe
// with OnChange, and release subscriptions with the returned unsubscribe
// function.
type Monitor struct {
	pinger   Pinger
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	online bool
	subs   map[int]func(online bool)
	nextID int
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitor constructs a Monitor and probes once, synchronously, so the
// initial state reflects reality at construction time rather than defaulting
// to Offline.
func NewMonitor(ctx context.Context, pinger Pinger, interval time.Duration, log *logger.Logger) *Monitor {
	m := &Monitor{
		pinger:   pinger,
		interval: interval,
		logger:   log,
		subs:     make(map[int]func(online bool)),
	}
	m.online = pinger.Ping(ctx) == nil

	log.Info().Bool("online", m.online).Msg("connection monitor initialised")
	return m
}

// Start launches the background probe loop. It stops any previously running
// loop first, so calling Start twice does not leak goroutines.
func (m *Monitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				m.probe(loopCtx)
			}
		}
	}()
}

// Stop cancels the probe loop and blocks until it has fully exited. Safe to
// call when the loop is not running (no-op in that case).
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// IsOnline reports the current best-effort state.
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// OnChange registers cb to run on every state transition. The callback
// receives the new state. The returned function unsubscribes; calling it more
// than once is safe.
func (m *Monitor) OnChange(cb func(online bool)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.subs[id] = cb

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subs, id)
		})
	}
}

func (m *Monitor) probe(ctx context.Context) {
	online := m.pinger.Ping(ctx) == nil
	m.setState(online)
}

func (m *Monitor) setState(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online

	// Snapshot subscribers so callbacks run outside the lock and may
	// themselves call back into the monitor.
	callbacks := make([]func(online bool), 0, len(m.subs))
	for _, cb := range m.subs {
		callbacks = append(callbacks, cb)
	}
	m.mu.Unlock()

	m.logger.Info().Bool("online", online).Msg("connection state changed")
	for _, cb := range callbacks {
		cb(online)
	}
}
