package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
)

type ProfessionalRepository interface {
	Create(ctx context.Context, professional *model.Professional) error
	Get(ctx context.Context, id uuid.UUID) (*model.Professional, error)
	Update(ctx context.Context, professional *model.Professional) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, filter *model.SearchFilter) ([]*model.Professional, error)
	// ListPage returns one admin page (newest first) plus the total count of
	// records matching the search term.
	ListPage(ctx context.Context, search string, offset, limit int) ([]*model.Professional, int, error)
	CountAvailableBySpecialty(ctx context.Context, specialty string) (int, error)
	Featured(ctx context.Context, limit int) ([]*model.Professional, error)
	Stats(ctx context.Context) (*model.ProfessionalStats, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	Count(ctx context.Context) (int, error)
}

type AnalyticsRepository interface {
	Insert(ctx context.Context, event *model.AnalyticsEvent) error
	CountByAction(ctx context.Context, actionType string, since time.Time) (int, error)
	TopProfessionals(ctx context.Context, since time.Time, limit int) ([]*model.ProfessionalViews, error)
	DailyViews(ctx context.Context, since time.Time) ([]*model.DailyViews, error)
}

type AdvertisementRepository interface {
	ListActive(ctx context.Context, position string) ([]*model.Advertisement, error)
}
