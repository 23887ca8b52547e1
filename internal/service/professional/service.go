// Package professional implements the directory's search engine and the
// admin CRUD over listings.
package professional

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/repository"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/service/analytics"
	"github.com/diegoportaz91-dot/saludvalleuco/pkg/apperror"
)

const (
	// AdminPageSize is the fixed admin listing page size.
	AdminPageSize = 20

	featuredLimit = 6

	quickCategoriesKey = "quick_categories"
	quickCategoriesTTL = time.Minute
)

// Recorder is the slice of the analytics service the search path needs.
type Recorder interface {
	Record(ctx context.Context, meta analytics.RequestMeta, actionType string, targetID *uuid.UUID, targetType string)
}

// AdminPage is one page of the admin listing.
type AdminPage struct {
	Professionals []*model.Professional `json:"professionals"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
	Total         int                   `json:"total"`
}

type Service struct {
	repo     repository.ProfessionalRepository
	recorder Recorder
	cache    *cache.Cache
}

func NewService(repo repository.ProfessionalRepository, recorder Recorder) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		cache:    cache.New(quickCategoriesTTL, 5*time.Minute),
	}
}

// Search returns listings matching the AND-combined filters, ordered premium
// first and then by name in Spanish collation order. It emits one search
// event when any filter argument is present.
func (s *Service) Search(ctx context.Context, filter *model.SearchFilter, meta analytics.RequestMeta) ([]*model.Professional, error) {
	if filter.HasCriteria() {
		s.recorder.Record(ctx, meta, model.ActionSearch, nil, model.TargetSearch)
	}

	professionals, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	sortListings(professionals)
	return professionals, nil
}

// sortListings orders premium before basic, then name ascending with Spanish
// collation, stable otherwise.
func sortListings(professionals []*model.Professional) {
	collator := collate.New(language.Spanish)
	sort.SliceStable(professionals, func(i, j int) bool {
		a, b := professionals[i], professionals[j]
		if a.IsPremium() != b.IsPremium() {
			return a.IsPremium()
		}
		return collator.CompareString(a.Name, b.Name) < 0
	})
}

// GetPublic loads a single listing for the public detail page. Unavailable
// listings are indistinguishable from absent ones.
func (s *Service) GetPublic(ctx context.Context, id uuid.UUID) (*model.Professional, error) {
	professional, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !professional.Available {
		return nil, apperror.NotFound("professional", nil)
	}
	return professional, nil
}

// Get loads a listing regardless of availability, for the admin surface.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Professional, error) {
	return s.repo.Get(ctx, id)
}

// ListPage returns one admin page. Out-of-range pages come back empty rather
// than erroring.
func (s *Service) ListPage(ctx context.Context, search string, page int) (*AdminPage, error) {
	if page < 1 {
		page = 1
	}
	p := model.Pagination{Page: page, PageSize: AdminPageSize}

	professionals, total, err := s.repo.ListPage(ctx, search, p.Offset(), AdminPageSize)
	if err != nil {
		return nil, err
	}
	if professionals == nil {
		professionals = []*model.Professional{}
	}

	return &AdminPage{
		Professionals: professionals,
		Page:          page,
		PageSize:      AdminPageSize,
		Total:         total,
	}, nil
}

func (s *Service) Stats(ctx context.Context) (*model.ProfessionalStats, error) {
	return s.repo.Stats(ctx)
}

// QuickCategories returns the homepage quick-access counts, cached briefly
// since every homepage hit asks for them.
func (s *Service) QuickCategories(ctx context.Context) ([]*model.QuickCategory, error) {
	if cached, ok := s.cache.Get(quickCategoriesKey); ok {
		return cached.([]*model.QuickCategory), nil
	}

	categories := make([]*model.QuickCategory, 0, len(model.PrioritySpecialties))
	for _, specialty := range model.PrioritySpecialties {
		count, err := s.repo.CountAvailableBySpecialty(ctx, specialty)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &model.QuickCategory{Name: specialty, Count: count})
	}

	s.cache.Set(quickCategoriesKey, categories, cache.DefaultExpiration)
	return categories, nil
}

func (s *Service) Featured(ctx context.Context) ([]*model.Professional, error) {
	professionals, err := s.repo.Featured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	if professionals == nil {
		professionals = []*model.Professional{}
	}
	return professionals, nil
}

// Create validates the submitted fields and persists a new listing.
func (s *Service) Create(ctx context.Context, input *Input) (*model.Professional, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	professional := &model.Professional{ID: uuid.New()}
	input.apply(professional)

	if err := s.repo.Create(ctx, professional); err != nil {
		return nil, err
	}
	s.cache.Delete(quickCategoriesKey)
	return professional, nil
}

// Update loads the listing, applies every submitted field and refreshes
// updated_at. Concurrent edits are last-write-wins.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input *Input) (*model.Professional, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	professional, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	input.apply(professional)

	if err := s.repo.Update(ctx, professional); err != nil {
		return nil, err
	}
	s.cache.Delete(quickCategoriesKey)
	return professional, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(quickCategoriesKey)
	return nil
}
