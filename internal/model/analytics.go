package model

import (
	"time"

	"github.com/google/uuid"
)

// Analytics action types. Events are append-only.
const (
	ActionPageView     = "page_view"
	ActionProfileView  = "profile_view"
	ActionSearch       = "search"
	ActionContactClick = "contact_click"
)

// Analytics target types.
const (
	TargetHomepage     = "homepage"
	TargetProfessional = "professional"
	TargetSearch       = "search"
)

// AnalyticsEvent records a single visitor interaction.
type AnalyticsEvent struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	ActionType string     `db:"action_type" json:"action_type"`
	TargetID   *uuid.UUID `db:"target_id" json:"target_id,omitempty"`
	TargetType *string    `db:"target_type" json:"target_type,omitempty"`
	UserIP     string     `db:"user_ip" json:"user_ip"`
	UserAgent  string     `db:"user_agent" json:"user_agent"`
	Referrer   string     `db:"referrer" json:"referrer"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// ProfessionalViews is one row of the most-viewed ranking.
type ProfessionalViews struct {
	Name      string `db:"name" json:"name"`
	Specialty string `db:"specialty" json:"specialty"`
	Views     int    `db:"views" json:"views"`
}

// DailyViews is a per-calendar-day count of combined page and profile views.
type DailyViews struct {
	Date  time.Time `db:"date" json:"date"`
	Views int       `db:"views" json:"views"`
}

// AnalyticsReport is the windowed summary shown on the admin analytics page.
type AnalyticsReport struct {
	StartDate        time.Time            `json:"start_date"`
	EndDate          time.Time            `json:"end_date"`
	PageViews        int                  `json:"page_views"`
	ProfileViews     int                  `json:"profile_views"`
	Searches         int                  `json:"searches"`
	TopProfessionals []*ProfessionalViews `json:"top_professionals"`
	DailyViews       []*DailyViews        `json:"daily_views"`
}

// EmptyReport returns a zeroed report for the window. It is what callers see
// when the store cannot be reached.
func EmptyReport(start, end time.Time) *AnalyticsReport {
	return &AnalyticsReport{
		StartDate:        start,
		EndDate:          end,
		TopProfessionals: []*ProfessionalViews{},
		DailyViews:       []*DailyViews{},
	}
}
