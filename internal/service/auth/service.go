// Package auth owns admin credential checks, session tokens and the
// first-run admin bootstrap.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/repository"
)

// ErrInvalidCredentials is returned for every login miss. It deliberately
// does not reveal whether the username exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	bcryptCost = 12

	defaultSessionExpiry = 24 * time.Hour

	bootstrapUsername = "admin"
	bootstrapEmail    = "admin@saludvalleuco.com"
	// The original deployment's well-known default. Refused in production.
	defaultBootstrapPassword = "admin123"
)

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Service struct {
	repo   repository.AdminRepository
	secret []byte
	expiry time.Duration
}

func NewService(repo repository.AdminRepository, secret string, expiryHours int) *Service {
	expiry := defaultSessionExpiry
	if expiryHours > 0 {
		expiry = time.Duration(expiryHours) * time.Hour
	}
	return &Service{
		repo:   repo,
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Login checks the credentials and mints a signed session token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.mintToken(admin)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return token, nil
}

// ValidateSession parses and verifies a session token.
func (s *Service) ValidateSession(token string) (*model.SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid session claims")
	}

	adminID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid admin ID in session: %w", err)
	}

	return &model.SessionClaims{
		AdminID:  adminID,
		Username: claims.Username,
	}, nil
}

// SessionExpiry is the lifetime of minted tokens, exposed for cookie max-age.
func (s *Service) SessionExpiry() time.Duration {
	return s.expiry
}

// Bootstrap creates the first admin account when none exists. Development
// builds seed the well-known default credential; production refuses it and
// requires an explicit bootstrap password.
func (s *Service) Bootstrap(ctx context.Context, environment, bootstrapPassword string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	password := bootstrapPassword
	if environment == "production" {
		if password == "" {
			return errors.New("no admin exists: set ADMIN_BOOTSTRAP_PASSWORD to create one")
		}
		if password == defaultBootstrapPassword {
			return errors.New("refusing the default admin password in production")
		}
	} else if password == "" {
		password = defaultBootstrapPassword
		log.Warn().Msg("seeding default admin credentials, change them before going live")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	admin := &model.Admin{
		ID:           uuid.New(),
		Username:     bootstrapUsername,
		Email:        bootstrapEmail,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	log.Info().Str("username", bootstrapUsername).Msg("bootstrap admin created")
	return nil
}

func (s *Service) mintToken(admin *model.Admin) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
