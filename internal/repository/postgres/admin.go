package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/repository"
	"github.com/diegoportaz91-dot/saludvalleuco/pkg/apperror"
)

type adminRepository struct {
	*BaseRepository
}

func NewAdminRepository(base BaseRepository) repository.AdminRepository {
	return &adminRepository{BaseRepository: &base}
}

func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	query := `
		INSERT INTO admins (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	admin.CreatedAt = time.Now().UTC()
	_, err := r.GetDB().ExecContext(ctx, query,
		admin.ID,
		admin.Username,
		admin.Email,
		admin.PasswordHash,
		admin.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	query := `SELECT * FROM admins WHERE username = $1`
	var admin model.Admin
	err := r.GetDB().GetContext(ctx, &admin, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("admin", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.GetDB().GetContext(ctx, &count, `SELECT COUNT(*) FROM admins`); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}
