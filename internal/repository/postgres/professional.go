package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/repository"
	"github.com/diegoportaz91-dot/saludvalleuco/pkg/apperror"
)

type professionalRepository struct {
	*BaseRepository
}

func NewProfessionalRepository(base BaseRepository) repository.ProfessionalRepository {
	return &professionalRepository{BaseRepository: &base}
}

func (r *professionalRepository) Create(ctx context.Context, professional *model.Professional) error {
	query := `
		INSERT INTO professionals (
			id, name, specialty, location, phone, plan, available,
			photo_url, address, schedule, whatsapp, contact_type,
			insurance_coverage, description, latitude, longitude,
			created_at, updated_at
		) VALUES (
			:id, :name, :specialty, :location, :phone, :plan, :available,
			:photo_url, :address, :schedule, :whatsapp, :contact_type,
			:insurance_coverage, :description, :latitude, :longitude,
			:created_at, :updated_at
		)
	`
	professional.CreatedAt = time.Now().UTC()
	professional.UpdatedAt = professional.CreatedAt

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, professional); err != nil {
			return fmt.Errorf("failed to create professional: %w", err)
		}
		return nil
	})
}

func (r *professionalRepository) Get(ctx context.Context, id uuid.UUID) (*model.Professional, error) {
	query := `SELECT * FROM professionals WHERE id = $1`
	var professional model.Professional
	err := r.GetDB().GetContext(ctx, &professional, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("professional", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}
	return &professional, nil
}

// Update writes every mutable field. Concurrent editors are
// last-write-wins; there is no optimistic locking.
func (r *professionalRepository) Update(ctx context.Context, professional *model.Professional) error {
	query := `
		UPDATE professionals SET
			name = :name,
			specialty = :specialty,
			location = :location,
			phone = :phone,
			plan = :plan,
			available = :available,
			photo_url = :photo_url,
			address = :address,
			schedule = :schedule,
			whatsapp = :whatsapp,
			contact_type = :contact_type,
			insurance_coverage = :insurance_coverage,
			description = :description,
			latitude = :latitude,
			longitude = :longitude,
			updated_at = :updated_at
		WHERE id = :id
	`
	professional.UpdatedAt = time.Now().UTC()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, query, professional)
		if err != nil {
			return fmt.Errorf("failed to update professional: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperror.NotFound("professional", nil)
		}
		return nil
	})
}

func (r *professionalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM professionals WHERE id = $1`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return fmt.Errorf("failed to delete professional: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperror.NotFound("professional", nil)
		}
		return nil
	})
}

// searchConditions builds the WHERE clause and argument list for Search. All
// present filters AND-combine; the free-text term reuses one placeholder
// across the three ILIKE columns.
func searchConditions(filter *model.SearchFilter) (string, []interface{}) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR specialty ILIKE $%d OR description ILIKE $%d)", n, n, n))
	}
	if filter.Specialty != "" {
		args = append(args, filter.Specialty)
		conditions = append(conditions, fmt.Sprintf("specialty = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, filter.Location)
		conditions = append(conditions, fmt.Sprintf("location = $%d", len(args)))
	}
	if filter.AvailableOnly {
		conditions = append(conditions, "available = TRUE")
	}

	return strings.Join(conditions, " AND "), args
}

func (r *professionalRepository) Search(ctx context.Context, filter *model.SearchFilter) ([]*model.Professional, error) {
	where, args := searchConditions(filter)
	query := `SELECT * FROM professionals WHERE ` + where

	var professionals []*model.Professional
	if err := r.GetDB().SelectContext(ctx, &professionals, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search professionals: %w", err)
	}
	return professionals, nil
}

func (r *professionalRepository) ListPage(ctx context.Context, search string, offset, limit int) ([]*model.Professional, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		args = append(args, "%"+search+"%")
		where = " WHERE (name ILIKE $1 OR specialty ILIKE $1 OR location ILIKE $1)"
	}

	var total int
	if err := r.GetDB().GetContext(ctx, &total, `SELECT COUNT(*) FROM professionals`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count professionals: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT * FROM professionals%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	var professionals []*model.Professional
	if err := r.GetDB().SelectContext(ctx, &professionals, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list professionals: %w", err)
	}
	return professionals, total, nil
}

func (r *professionalRepository) CountAvailableBySpecialty(ctx context.Context, specialty string) (int, error) {
	query := `SELECT COUNT(*) FROM professionals WHERE specialty = $1 AND available = TRUE`
	var count int
	if err := r.GetDB().GetContext(ctx, &count, query, specialty); err != nil {
		return 0, fmt.Errorf("failed to count professionals: %w", err)
	}
	return count, nil
}

func (r *professionalRepository) Featured(ctx context.Context, limit int) ([]*model.Professional, error) {
	query := `SELECT * FROM professionals WHERE available = TRUE ORDER BY created_at DESC LIMIT $1`
	var professionals []*model.Professional
	if err := r.GetDB().SelectContext(ctx, &professionals, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list featured professionals: %w", err)
	}
	return professionals, nil
}

func (r *professionalRepository) Stats(ctx context.Context) (*model.ProfessionalStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE plan = 'basic') AS basic,
			COUNT(*) FILTER (WHERE plan = 'premium') AS premium,
			COUNT(*) FILTER (WHERE available) AS available
		FROM professionals
	`
	var stats model.ProfessionalStats
	if err := r.GetDB().GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to load professional stats: %w", err)
	}
	return &stats, nil
}
