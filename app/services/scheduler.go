package services

import (
	"context"
	"time"

	"teacher-substitution/app/services/substitution"

	"go.uber.org/zap"
)

// StartScheduler runs the cover digest once a day at the HH:MM given in at,
// in loc. It stops when ctx is cancelled.
func StartScheduler(ctx context.Context, lister AbsentLister, resolver *substitution.Resolver, loc *time.Location, at string, logger *zap.Logger) {
	if at == "" {
		logger.Info("Cover digest disabled")
		return
	}

	go func() {
		logger.Info("Scheduler started...", zap.String("digest_at", at))
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("Scheduler stopped")
				return
			case tick := <-ticker.C:
				now := tick.In(loc)
				if now.Format("15:04") != at {
					continue
				}

				logger.Info("Triggering scheduled tasks", zap.String("at", at))
				day := substitution.NormalizeDay(now.Weekday().String())
				if _, err := GenerateCoverDigest(ctx, lister, resolver, day, logger); err != nil {
					logger.Error("Error generating cover digest", zap.Error(err))
				}
			}
		}
	}()
}
