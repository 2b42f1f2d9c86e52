package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob periodically evicts in-progress orders whose session has
// been idle longer than the configured TTL. Abandoned conversations otherwise
// hold their order in memory until the process exits.
type SessionCleanupJob struct {
	sessions ports.SessionStore
	schedule string
	idleTTL  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob creates a job that evicts idle sessions on the given
// cron schedule.
func NewSessionCleanupJob(
	sessions ports.SessionStore,
	schedule string,
	idleTTL time.Duration,
	logger *slog.Logger,
) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		schedule: schedule,
		idleTTL:  idleTTL,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the session cleanup job on its configured schedule.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		evicted := j.sessions.EvictIdle(ctx, j.idleTTL)
		if evicted > 0 {
			j.logger.InfoContext(ctx, "Evicted idle sessions", "count", evicted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started",
		"schedule", j.schedule, "idle_ttl", j.idleTTL.String())
	return nil
}

// Stop stops the session cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
