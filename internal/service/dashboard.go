package service

import (
	"context"
	"time"

	"github.com/deppfellow/shrine-api/internal/model"
	"golang.org/x/sync/errgroup"
)

type statsSource interface {
	Stats(ctx context.Context) (model.Stats, error)
}

// DashboardService aggregates the moderation queues for the admin home page.
type DashboardService struct {
	prayers      statsSource
	testimonies  statsSource
	donations    statsSource
	massBookings statsSource
	now          func() time.Time
}

func NewDashboardService(prayers, testimonies, donations, massBookings statsSource) *DashboardService {
	return &DashboardService{
		prayers:      prayers,
		testimonies:  testimonies,
		donations:    donations,
		massBookings: massBookings,
		now:          time.Now,
	}
}

// Get counts every queue concurrently; the first failure cancels the rest.
func (s *DashboardService) Get(ctx context.Context) (*model.Dashboard, error) {
	dashboard := &model.Dashboard{}

	g, ctx := errgroup.WithContext(ctx)
	collect := func(src statsSource, dst *model.Stats) {
		g.Go(func() error {
			stats, err := src.Stats(ctx)
			if err != nil {
				return err
			}
			*dst = stats
			return nil
		})
	}

	collect(s.prayers, &dashboard.Prayers)
	collect(s.testimonies, &dashboard.Testimonies)
	collect(s.donations, &dashboard.Donations)
	collect(s.massBookings, &dashboard.MassBookings)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboard.GeneratedAt = s.now().UTC()
	return dashboard, nil
}
