package model

import (
	"time"

	"github.com/google/uuid"
)

// Plan is the subscription tier of a listing. Premium listings unlock the
// extra profile fields and rank first in search results.
type Plan string

const (
	PlanBasic   Plan = "basic"
	PlanPremium Plan = "premium"
)

// ContactType selects which contact channels a listing exposes.
type ContactType string

const (
	ContactPhone    ContactType = "phone"
	ContactWhatsapp ContactType = "whatsapp"
	ContactBoth     ContactType = "both"
)

// Specialties is the closed catalog of specialties a listing is validated
// against.
var Specialties = []string{
	"Pediatría",
	"Ginecología",
	"Odontología",
	"Psicología",
	"Medicina General",
	"Cardiología",
	"Dermatología",
	"Traumatología",
	"Neurología",
	"Oftalmología",
	"Otorrinolaringología",
	"Urología",
	"Endocrinología",
	"Gastroenterología",
	"Neumología",
	"Reumatología",
	"Psiquiatría",
	"Kinesiología",
	"Nutrición",
}

// PrioritySpecialties are the quick-access categories shown on the homepage.
var PrioritySpecialties = []string{
	"Pediatría",
	"Ginecología",
	"Odontología",
	"Psicología",
}

// Locations is the closed catalog of towns served by the directory.
var Locations = []string{
	"San Carlos",
	"Tunuyán",
	"Tupungato",
}

func ValidSpecialty(s string) bool {
	for _, v := range Specialties {
		if v == s {
			return true
		}
	}
	return false
}

func ValidLocation(l string) bool {
	for _, v := range Locations {
		if v == l {
			return true
		}
	}
	return false
}

func ValidPlan(p string) bool {
	return Plan(p) == PlanBasic || Plan(p) == PlanPremium
}

func ValidContactType(c string) bool {
	switch ContactType(c) {
	case ContactPhone, ContactWhatsapp, ContactBoth:
		return true
	}
	return false
}

// Professional is a healthcare professional listing. Optional premium fields
// are pointers; absence is stored as NULL, never as an empty string.
type Professional struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Specialty string    `db:"specialty" json:"specialty"`
	Location  string    `db:"location" json:"location"`
	Phone     string    `db:"phone" json:"phone"`
	Plan      Plan      `db:"plan" json:"plan"`
	Available bool      `db:"available" json:"available"`

	PhotoURL          *string     `db:"photo_url" json:"photo_url,omitempty"`
	Address           *string     `db:"address" json:"address,omitempty"`
	Schedule          *string     `db:"schedule" json:"schedule,omitempty"`
	Whatsapp          *string     `db:"whatsapp" json:"whatsapp,omitempty"`
	ContactType       ContactType `db:"contact_type" json:"contact_type"`
	InsuranceCoverage *string     `db:"insurance_coverage" json:"insurance_coverage,omitempty"`
	Description       *string     `db:"description" json:"description,omitempty"`
	Latitude          *float64    `db:"latitude" json:"latitude,omitempty"`
	Longitude         *float64    `db:"longitude" json:"longitude,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (p *Professional) IsPremium() bool {
	return p.Plan == PlanPremium
}

// SearchFilter holds the public search parameters. All present filters are
// AND-combined.
type SearchFilter struct {
	Query         string `form:"query" json:"query"`
	Specialty     string `form:"specialty" json:"specialty"`
	Location      string `form:"location" json:"location"`
	AvailableOnly bool   `form:"available_only" json:"available_only"`
}

// HasCriteria reports whether any filter argument is non-empty. The
// availability toggle alone does not count as a search.
func (f *SearchFilter) HasCriteria() bool {
	return f.Query != "" || f.Specialty != "" || f.Location != ""
}

// ProfessionalStats are the aggregate counts shown on the admin dashboard.
type ProfessionalStats struct {
	Total     int `db:"total" json:"total"`
	Basic     int `db:"basic" json:"basic"`
	Premium   int `db:"premium" json:"premium"`
	Available int `db:"available" json:"available"`
}

// QuickCategory is a homepage quick-access entry: a priority specialty and
// its count of available professionals.
type QuickCategory struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
