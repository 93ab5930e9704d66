package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"planpulse-api/internal/metrics"
	"planpulse-api/internal/repository"
)

// TokenCleanupJob prunes expired password-reset tokens. Redemption already
// rejects and deletes expired tokens on contact; this job only keeps dead
// rows from piling up between redemptions.
type TokenCleanupJob struct {
	resetTokenRepo repository.ResetTokenRepository
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewTokenCleanupJob creates a new TokenCleanupJob instance
func NewTokenCleanupJob(
	resetTokenRepo repository.ResetTokenRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *TokenCleanupJob {
	return &TokenCleanupJob{
		resetTokenRepo: resetTokenRepo,
		metrics:        m,
		logger:         logger,
	}
}

// Run executes the cleanup job
func (j *TokenCleanupJob) Run() {
	ctx := context.Background()

	deleted, err := j.resetTokenRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		j.logger.Error("Failed to prune expired reset tokens", zap.Error(err))
		return
	}

	if deleted == 0 {
		j.logger.Debug("No expired reset tokens to prune")
		return
	}

	if j.metrics != nil {
		j.metrics.AddResetTokensExpired(deleted)
	}

	j.logger.Info("Pruned expired reset tokens",
		zap.Int64("count", deleted),
	)
}
