package connectivity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailpoint/possync/internal/logger"
)

// fakePinger flips between reachable and unreachable under test control.
type fakePinger struct {
	mu  sync.Mutex
	err error
}

func (f *fakePinger) Ping(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakePinger) set(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func TestNewMonitor_InitialStateOnline(t *testing.T) {
	m := NewMonitor(context.Background(), &fakePinger{}, time.Minute, logger.Nop())
	assert.True(t, m.IsOnline())
}

func TestNewMonitor_InitialStateOffline(t *testing.T) {
	p := &fakePinger{err: errors.New("unreachable")}
	m := NewMonitor(context.Background(), p, time.Minute, logger.Nop())
	assert.False(t, m.IsOnline())
}

func TestMonitor_TransitionNotifiesSubscribers(t *testing.T) {
	p := &fakePinger{err: errors.New("unreachable")}
	m := NewMonitor(context.Background(), p, time.Minute, logger.Nop())

	var got []bool
	unsubscribe := m.OnChange(func(online bool) {
		got = append(got, online)
	})
	defer unsubscribe()

	p.set(nil)
	m.probe(context.Background())

	require.Equal(t, []bool{true}, got)
	assert.True(t, m.IsOnline())
}

func TestMonitor_NoNotificationWithoutTransition(t *testing.T) {
	m := NewMonitor(context.Background(), &fakePinger{}, time.Minute, logger.Nop())

	calls := 0
	defer m.OnChange(func(bool) { calls++ })()

	// Already online; repeated successful probes must not re-notify.
	m.probe(context.Background())
	m.probe(context.Background())

	assert.Zero(t, calls)
}

func TestMonitor_UnsubscribeStopsNotifications(t *testing.T) {
	p := &fakePinger{}
	m := NewMonitor(context.Background(), p, time.Minute, logger.Nop())

	calls := 0
	unsubscribe := m.OnChange(func(bool) { calls++ })
	unsubscribe()
	unsubscribe() // second call must be a no-op

	p.set(errors.New("gone"))
	m.probe(context.Background())

	assert.Zero(t, calls)
}

func TestMonitor_StartStop(t *testing.T) {
	p := &fakePinger{}
	m := NewMonitor(context.Background(), p, 10*time.Millisecond, logger.Nop())

	transitions := make(chan bool, 1)
	defer m.OnChange(func(online bool) {
		select {
		case transitions <- online:
		default:
		}
	})()

	m.Start(context.Background())
	defer m.Stop()

	p.set(errors.New("unreachable"))

	select {
	case online := <-transitions:
		assert.False(t, online)
	case <-time.After(2 * time.Second):
		t.Fatal("expected an offline transition from the probe loop")
	}
}
