// Package analytics records visitor events and rolls them into windowed
// reports. Both paths are non-critical: failures are logged and absorbed so
// they never abort the request that triggered them.
package analytics

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/repository"
)

const defaultWindowDays = 30

// RequestMeta carries the request attributes captured with every event.
type RequestMeta struct {
	IP        string
	UserAgent string
	Referrer  string
}

// MetaFromRequest extracts event metadata, preferring the forwarded-for
// header over the transport-level address.
func MetaFromRequest(r *http.Request) RequestMeta {
	ip := r.Header.Get("X-Forwarded-For")
	if ip != "" {
		// First hop is the original client.
		if i := strings.IndexByte(ip, ','); i >= 0 {
			ip = ip[:i]
		}
		ip = strings.TrimSpace(ip)
	} else if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	} else {
		ip = r.RemoteAddr
	}

	return RequestMeta{
		IP:        ip,
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	}
}

type Service struct {
	repo repository.AnalyticsRepository
}

func NewService(repo repository.AnalyticsRepository) *Service {
	return &Service{repo: repo}
}

// Record appends one event. Store failures are swallowed after a warning;
// tracking must never break the page that triggered it.
func (s *Service) Record(ctx context.Context, meta RequestMeta, actionType string, targetID *uuid.UUID, targetType string) {
	event := &model.AnalyticsEvent{
		ID:         uuid.New(),
		ActionType: actionType,
		TargetID:   targetID,
		UserIP:     meta.IP,
		UserAgent:  meta.UserAgent,
		Referrer:   meta.Referrer,
		CreatedAt:  time.Now().UTC(),
	}
	if targetType != "" {
		event.TargetType = &targetType
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		log.Warn().Err(err).Str("action_type", actionType).Msg("analytics tracking failed")
	}
}

// Report computes the trailing-window summary ending now. Any store failure
// degrades to an all-zero report rather than an error.
func (s *Service) Report(ctx context.Context, windowDays int) *model.AnalyticsReport {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -windowDays)

	pageViews, err := s.repo.CountByAction(ctx, model.ActionPageView, start)
	if err != nil {
		return s.degraded(err, start, end)
	}
	profileViews, err := s.repo.CountByAction(ctx, model.ActionProfileView, start)
	if err != nil {
		return s.degraded(err, start, end)
	}
	searches, err := s.repo.CountByAction(ctx, model.ActionSearch, start)
	if err != nil {
		return s.degraded(err, start, end)
	}
	top, err := s.repo.TopProfessionals(ctx, start, 10)
	if err != nil {
		return s.degraded(err, start, end)
	}
	daily, err := s.repo.DailyViews(ctx, start)
	if err != nil {
		return s.degraded(err, start, end)
	}

	if top == nil {
		top = []*model.ProfessionalViews{}
	}
	if daily == nil {
		daily = []*model.DailyViews{}
	}

	return &model.AnalyticsReport{
		StartDate:        start,
		EndDate:          end,
		PageViews:        pageViews,
		ProfileViews:     profileViews,
		Searches:         searches,
		TopProfessionals: top,
		DailyViews:       daily,
	}
}

func (s *Service) degraded(err error, start, end time.Time) *model.AnalyticsReport {
	log.Warn().Err(err).Msg("analytics report failed, returning empty report")
	return model.EmptyReport(start, end)
}
