package postgres

import (
	"context"
	"fmt"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/repository"
)

type advertisementRepository struct {
	*BaseRepository
}

func NewAdvertisementRepository(base BaseRepository) repository.AdvertisementRepository {
	return &advertisementRepository{BaseRepository: &base}
}

func (r *advertisementRepository) ListActive(ctx context.Context, position string) ([]*model.Advertisement, error) {
	query := `SELECT * FROM advertisements WHERE is_active = TRUE`
	args := []interface{}{}
	if position != "" {
		query += ` AND position = $1`
		args = append(args, position)
	}
	query += ` ORDER BY created_at DESC`

	var ads []*model.Advertisement
	if err := r.GetDB().SelectContext(ctx, &ads, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list advertisements: %w", err)
	}
	return ads, nil
}
