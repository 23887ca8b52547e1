// Package advertisement serves the reserved ad slots. The entity has no
// admin surface yet; only active ads are readable.
package advertisement

import (
	"context"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/repository"
	"github.com/diegoportaz91-dot/saludvalleuco/pkg/apperror"
)

type Service struct {
	repo repository.AdvertisementRepository
}

func NewService(repo repository.AdvertisementRepository) *Service {
	return &Service{repo: repo}
}

// ListActive returns the active ads, optionally restricted to one position.
func (s *Service) ListActive(ctx context.Context, position string) ([]*model.Advertisement, error) {
	if position != "" && !model.ValidAdPosition(position) {
		return nil, apperror.BadRequest("invalid advertisement position", nil)
	}

	ads, err := s.repo.ListActive(ctx, position)
	if err != nil {
		return nil, err
	}
	if ads == nil {
		ads = []*model.Advertisement{}
	}
	return ads, nil
}
