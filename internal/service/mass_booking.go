package service

import (
	"context"

	"github.com/deppfellow/shrine-api/internal/logger"
	"github.com/deppfellow/shrine-api/internal/model"
)

type massBookingRepository interface {
	statusStore[model.MassBooking]
	Create(ctx context.Context, payload *model.CreateMassBookingPayload) (*model.MassBooking, error)
}

type massBookingNotifier interface {
	EnqueueMassBookingNotification(ctx context.Context, booking *model.MassBooking) error
}

type MassBookingService struct {
	statusService[model.MassBooking, model.MassBookingStatuses]
	repo     massBookingRepository
	notifier massBookingNotifier
}

func NewMassBookingService(repo massBookingRepository, notifier massBookingNotifier) *MassBookingService {
	return &MassBookingService{
		statusService: newStatusService[model.MassBooking, model.MassBookingStatuses](repo, "Mass booking"),
		repo:          repo,
		notifier:      notifier,
	}
}

func (s *MassBookingService) Create(ctx context.Context, payload *model.CreateMassBookingPayload) (*model.MassBooking, error) {
	booking, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueueMassBookingNotification(ctx, booking); err != nil {
			logger.FromContext(ctx).Warn().
				Err(err).
				Int64("booking_id", booking.ID).
				Msg("failed to queue mass booking notification")
		}
	}

	return booking, nil
}
