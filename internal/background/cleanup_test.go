package background

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockOTPStore struct {
	calls atomic.Int32
}

func (m *mockOTPStore) ClearExpiredOTPs(ctx context.Context) (int64, error) {
	m.calls.Add(1)
	return 2, nil
}

type mockSessionStore struct {
	calls atomic.Int32
}

func (m *mockSessionStore) CleanupExpired(ctx context.Context) (int64, error) {
	m.calls.Add(1)
	return 1, nil
}

func TestCleanupManager_RunsImmediatelyAndStops(t *testing.T) {
	otps := &mockOTPStore{}
	sessions := &mockSessionStore{}
	cm := NewCleanupManager(otps, sessions, slog.Default(), time.Hour)

	done := make(chan struct{})
	go func() {
		cm.Start(context.Background())
		close(done)
	}()

	// The first sweep happens on startup, before the first tick
	assert.Eventually(t, func() bool {
		return otps.calls.Load() >= 1 && sessions.calls.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	cm.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup manager did not stop")
	}
}

func TestCleanupManager_StopsOnContextCancel(t *testing.T) {
	cm := NewCleanupManager(&mockOTPStore{}, &mockSessionStore{}, slog.Default(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cm.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup manager did not stop on context cancel")
	}
}
