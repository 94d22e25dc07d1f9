// Package job runs background maintenance on a fixed interval.
package job

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const statusSyncTimeout = 30 * time.Second

// StatusSyncer relabels every movie row from its current availability.
type StatusSyncer interface {
	RefreshAllTicketStatuses(ctx context.Context) (int, error)
}

type Scheduler struct {
	scheduler gocron.Scheduler
	log       *zap.Logger
}

func NewScheduler(interval time.Duration, syncer StatusSyncer, log *zap.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("status sync interval must be positive, got %s", interval)
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	log = log.With(zap.String("job", "ticket-status-sync"))

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), statusSyncTimeout)
			defer cancel()
			runStatusSync(ctx, syncer, log)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("register status sync job: %w", err)
	}

	return &Scheduler{scheduler: s, log: log}, nil
}

func runStatusSync(ctx context.Context, syncer StatusSyncer, log *zap.Logger) {
	updated, err := syncer.RefreshAllTicketStatuses(ctx)
	if err != nil {
		log.Error("Ticket status sync failed", zap.Error(err))
		return
	}
	log.Info("Ticket status sync done", zap.Int("rows", updated))
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
	s.log.Info("Scheduler started")
}

func (s *Scheduler) Shutdown() error {
	return s.scheduler.Shutdown()
}
