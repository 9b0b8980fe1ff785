package service

import (
	"context"

	"github.com/deppfellow/shrine-api/internal/logger"
	"github.com/deppfellow/shrine-api/internal/model"
)

type prayerRepository interface {
	statusStore[model.Prayer]
	Create(ctx context.Context, payload *model.CreatePrayerPayload) (*model.Prayer, error)
}

type prayerNotifier interface {
	EnqueuePrayerNotification(ctx context.Context, prayer *model.Prayer) error
}

type PrayerService struct {
	statusService[model.Prayer, model.PrayerStatuses]
	repo     prayerRepository
	notifier prayerNotifier
}

// NewPrayerService builds the service. notifier may be nil, in which case
// no office email is queued.
func NewPrayerService(repo prayerRepository, notifier prayerNotifier) *PrayerService {
	return &PrayerService{
		statusService: newStatusService[model.Prayer, model.PrayerStatuses](repo, "Prayer request"),
		repo:          repo,
		notifier:      notifier,
	}
}

// Create stores a prayer request in "unread" and queues the office
// notification. A queueing failure is logged; the prayer is already saved.
func (s *PrayerService) Create(ctx context.Context, payload *model.CreatePrayerPayload) (*model.Prayer, error) {
	prayer, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueuePrayerNotification(ctx, prayer); err != nil {
			logger.FromContext(ctx).Warn().
				Err(err).
				Int64("prayer_id", prayer.ID).
				Msg("failed to queue prayer notification")
		}
	}

	return prayer, nil
}
