package model

import (
	"time"

	"github.com/google/uuid"
)

// Advertisement positions.
const (
	AdPositionHeader         = "header"
	AdPositionSidebar        = "sidebar"
	AdPositionFooter         = "footer"
	AdPositionBetweenResults = "between_results"
)

func ValidAdPosition(p string) bool {
	switch p {
	case AdPositionHeader, AdPositionSidebar, AdPositionFooter, AdPositionBetweenResults:
		return true
	}
	return false
}

// Advertisement is a reserved ad slot. Only active ads are ever served.
type Advertisement struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   *string   `db:"content" json:"content,omitempty"`
	Position  string    `db:"position" json:"position"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	LinkURL   *string   `db:"link_url" json:"link_url,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
