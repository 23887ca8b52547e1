package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/repository"
)

type analyticsRepository struct {
	*BaseRepository
}

func NewAnalyticsRepository(base BaseRepository) repository.AnalyticsRepository {
	return &analyticsRepository{BaseRepository: &base}
}

func (r *analyticsRepository) Insert(ctx context.Context, event *model.AnalyticsEvent) error {
	query := `
		INSERT INTO analytics_events (
			id, action_type, target_id, target_type,
			user_ip, user_agent, referrer, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.GetDB().ExecContext(ctx, query,
		event.ID,
		event.ActionType,
		event.TargetID,
		event.TargetType,
		event.UserIP,
		event.UserAgent,
		event.Referrer,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert analytics event: %w", err)
	}
	return nil
}

func (r *analyticsRepository) CountByAction(ctx context.Context, actionType string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM analytics_events WHERE action_type = $1 AND created_at >= $2`
	var count int
	if err := r.GetDB().GetContext(ctx, &count, query, actionType, since); err != nil {
		return 0, fmt.Errorf("failed to count analytics events: %w", err)
	}
	return count, nil
}

func (r *analyticsRepository) TopProfessionals(ctx context.Context, since time.Time, limit int) ([]*model.ProfessionalViews, error) {
	// Ties break on professional id so the ranking is stable across reloads.
	query := `
		SELECT p.name, p.specialty, COUNT(a.id) AS views
		FROM professionals p
		JOIN analytics_events a ON a.target_id = p.id
		WHERE a.action_type = 'profile_view' AND a.created_at >= $1
		GROUP BY p.id, p.name, p.specialty
		ORDER BY COUNT(a.id) DESC, p.id
		LIMIT $2
	`
	var rows []*model.ProfessionalViews
	if err := r.GetDB().SelectContext(ctx, &rows, query, since, limit); err != nil {
		return nil, fmt.Errorf("failed to load top professionals: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepository) DailyViews(ctx context.Context, since time.Time) ([]*model.DailyViews, error) {
	query := `
		SELECT DATE(created_at) AS date, COUNT(id) AS views
		FROM analytics_events
		WHERE created_at >= $1 AND action_type IN ('page_view', 'profile_view')
		GROUP BY DATE(created_at)
		ORDER BY DATE(created_at)
	`
	var rows []*model.DailyViews
	if err := r.GetDB().SelectContext(ctx, &rows, query, since); err != nil {
		return nil, fmt.Errorf("failed to load daily views: %w", err)
	}
	return rows, nil
}
