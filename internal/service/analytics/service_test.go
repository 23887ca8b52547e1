package analytics

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
)

type fakeAnalyticsRepo struct {
	events []*model.AnalyticsEvent
	counts map[string]int
	top    []*model.ProfessionalViews
	daily  []*model.DailyViews
	err    error
}

func (r *fakeAnalyticsRepo) Insert(_ context.Context, event *model.AnalyticsEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *fakeAnalyticsRepo) CountByAction(_ context.Context, actionType string, _ time.Time) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.counts[actionType], nil
}

func (r *fakeAnalyticsRepo) TopProfessionals(_ context.Context, _ time.Time, _ int) ([]*model.ProfessionalViews, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.top, nil
}

func (r *fakeAnalyticsRepo) DailyViews(_ context.Context, _ time.Time) ([]*model.DailyViews, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.daily, nil
}

func TestRecordSwallowsStoreFailure(t *testing.T) {
	repo := &fakeAnalyticsRepo{err: errors.New("store unavailable")}
	svc := NewService(repo)

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), RequestMeta{IP: "1.2.3.4"}, model.ActionPageView, nil, model.TargetHomepage)
	})
}

func TestRecordCapturesMeta(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewService(repo)

	meta := RequestMeta{IP: "10.0.0.1", UserAgent: "test-agent", Referrer: "https://example.com"}
	svc.Record(context.Background(), meta, model.ActionSearch, nil, model.TargetSearch)

	require.Len(t, repo.events, 1)
	event := repo.events[0]
	assert.Equal(t, model.ActionSearch, event.ActionType)
	assert.Equal(t, "10.0.0.1", event.UserIP)
	assert.Equal(t, "test-agent", event.UserAgent)
	assert.Equal(t, "https://example.com", event.Referrer)
	require.NotNil(t, event.TargetType)
	assert.Equal(t, model.TargetSearch, *event.TargetType)
}

func TestReportDegradesToEmptyOnFailure(t *testing.T) {
	repo := &fakeAnalyticsRepo{err: errors.New("store unavailable")}
	svc := NewService(repo)

	report := svc.Report(context.Background(), 30)
	require.NotNil(t, report)
	assert.Zero(t, report.PageViews)
	assert.Zero(t, report.ProfileViews)
	assert.Zero(t, report.Searches)
	assert.NotNil(t, report.TopProfessionals)
	assert.Empty(t, report.TopProfessionals)
	assert.NotNil(t, report.DailyViews)
	assert.Empty(t, report.DailyViews)
}

func TestReportAggregates(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		counts: map[string]int{
			model.ActionPageView:    120,
			model.ActionProfileView: 45,
			model.ActionSearch:      30,
		},
		top: []*model.ProfessionalViews{
			{Name: "Laura Fernández", Specialty: "Cardiología", Views: 12},
		},
		daily: []*model.DailyViews{
			{Date: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), Views: 80},
			{Date: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), Views: 85},
		},
	}
	svc := NewService(repo)

	report := svc.Report(context.Background(), 0)
	assert.Equal(t, 120, report.PageViews)
	assert.Equal(t, 45, report.ProfileViews)
	assert.Equal(t, 30, report.Searches)
	require.Len(t, report.TopProfessionals, 1)
	assert.Equal(t, 12, report.TopProfessionals[0].Views)
	assert.Len(t, report.DailyViews, 2)

	// The zero-value window defaults to 30 days.
	assert.WithinDuration(t, report.EndDate.AddDate(0, 0, -30), report.StartDate, time.Second)
}

func TestMetaFromRequestPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.1:4444"
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 192.0.2.1")
	r.Header.Set("User-Agent", "test-agent")
	r.Header.Set("Referer", "https://example.com/previa")

	meta := MetaFromRequest(r)
	assert.Equal(t, "203.0.113.9", meta.IP)
	assert.Equal(t, "test-agent", meta.UserAgent)
	assert.Equal(t, "https://example.com/previa", meta.Referrer)
}

func TestMetaFromRequestFallsBackToRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.1:4444"

	meta := MetaFromRequest(r)
	assert.Equal(t, "192.0.2.1", meta.IP)
}
