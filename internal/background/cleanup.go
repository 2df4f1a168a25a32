package background

import (
	"context"
	"log/slog"
	"time"
)

// OTPStore clears codes whose window has passed.
type OTPStore interface {
	ClearExpiredOTPs(ctx context.Context) (int64, error)
}

// SessionStore removes sessions past their expiry.
type SessionStore interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

// CleanupManager periodically clears expired OTPs and sessions.
// Expiry is enforced at verification time regardless; this just keeps
// stale rows from accumulating.
type CleanupManager struct {
	otps     OTPStore
	sessions SessionStore
	logger   *slog.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewCleanupManager creates a new cleanup manager
func NewCleanupManager(otps OTPStore, sessions SessionStore, logger *slog.Logger, interval time.Duration) *CleanupManager {
	return &CleanupManager{
		otps:     otps,
		sessions: sessions,
		logger:   logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic cleanup task
func (cm *CleanupManager) Start(ctx context.Context) {
	ticker := time.NewTicker(cm.interval)
	defer ticker.Stop()

	// Run immediately on startup
	cm.runCleanup(ctx)

	for {
		select {
		case <-ticker.C:
			cm.runCleanup(ctx)
		case <-cm.stopCh:
			cm.logger.Info("cleanup manager stopped")
			return
		case <-ctx.Done():
			cm.logger.Info("cleanup manager context cancelled")
			return
		}
	}
}

func (cm *CleanupManager) runCleanup(ctx context.Context) {
	cleanupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	otpsCleared, err := cm.otps.ClearExpiredOTPs(cleanupCtx)
	if err != nil {
		cm.logger.Error("failed to clear expired otps", slog.Any("error", err))
	} else if otpsCleared > 0 {
		cm.logger.Info("expired otps cleared", slog.Int64("rows", otpsCleared))
	}

	sessionsDeleted, err := cm.sessions.CleanupExpired(cleanupCtx)
	if err != nil {
		cm.logger.Error("failed to delete expired sessions", slog.Any("error", err))
	} else if sessionsDeleted > 0 {
		cm.logger.Info("expired sessions deleted", slog.Int64("rows", sessionsDeleted))
	}
}

// Stop signals the cleanup manager to stop
func (cm *CleanupManager) Stop() {
	close(cm.stopCh)
}
