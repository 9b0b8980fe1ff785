package service

import (
	"context"

	"github.com/deppfellow/shrine-api/internal/model"
)

type donationRepository interface {
	statusStore[model.Donation]
	Create(ctx context.Context, payload *model.CreateDonationPayload) (*model.Donation, error)
}

type DonationService struct {
	statusService[model.Donation, model.DonationStatuses]
	repo donationRepository
}

func NewDonationService(repo donationRepository) *DonationService {
	return &DonationService{
		statusService: newStatusService[model.Donation, model.DonationStatuses](repo, "Donation"),
		repo:          repo,
	}
}

func (s *DonationService) Create(ctx context.Context, payload *model.CreateDonationPayload) (*model.Donation, error) {
	return s.repo.Create(ctx, payload)
}

// Purposes returns a copy of the donation purposes offered on the form.
func (s *DonationService) Purposes() []string {
	return append([]string(nil), model.DonationPurposes...)
}
