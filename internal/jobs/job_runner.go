package jobs

import (
	"context"
	"time"

	"gamerental-backend/internal/config"
	"gamerental-backend/internal/logger"
	"gamerental-backend/internal/repository"
)

// JobRunner holds the dependencies shared by all scheduled jobs.
type JobRunner struct {
	cfg       *config.Config
	tokenRepo repository.TokenRepository
}

func NewJobRunner(cfg *config.Config, tokenRepo repository.TokenRepository) *JobRunner {
	return &JobRunner{
		cfg:       cfg,
		tokenRepo: tokenRepo,
	}
}

func (j *JobRunner) Config() *config.Config {
	return j.cfg
}

// PurgeExpiredTokens removes bearer tokens past their expiry. Stale rows
// are already rejected at validation time; this keeps the table small.
func (j *JobRunner) PurgeExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := j.tokenRepo.DeleteExpired(ctx)
	if err != nil {
		logger.Error("Failed to purge expired tokens", "error", err)
		return
	}
	logger.Info("Purged expired tokens", "removed", removed)
}
