package service

import (
	"context"

	"github.com/deppfellow/shrine-api/internal/model"
)

type testimonyRepository interface {
	statusStore[model.Testimony]
	Create(ctx context.Context, payload *model.CreateTestimonyPayload) (*model.Testimony, error)
}

type TestimonyService struct {
	statusService[model.Testimony, model.TestimonyStatuses]
	repo testimonyRepository
}

func NewTestimonyService(repo testimonyRepository) *TestimonyService {
	return &TestimonyService{
		statusService: newStatusService[model.Testimony, model.TestimonyStatuses](repo, "Testimony"),
		repo:          repo,
	}
}

// Create stores a testimony awaiting moderation.
func (s *TestimonyService) Create(ctx context.Context, payload *model.CreateTestimonyPayload) (*model.Testimony, error) {
	return s.repo.Create(ctx, payload)
}

// ListApproved is the public view of testimonies.
func (s *TestimonyService) ListApproved(ctx context.Context) ([]model.Testimony, error) {
	return s.repo.ListByStatus(ctx, model.TestimonyStatusApproved)
}
