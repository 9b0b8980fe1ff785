package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/shrine-api/internal/errs"
	"github.com/deppfellow/shrine-api/internal/logger"
	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/deppfellow/shrine-api/internal/sqlerr"
	"golang.org/x/crypto/bcrypt"
)

type adminRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	GetByID(ctx context.Context, id int64) (*model.Admin, error)
	Create(ctx context.Context, username, passwordHash string, email *string) (*model.Admin, error)
	Count(ctx context.Context) (int64, error)
	TouchLogin(ctx context.Context, id int64) error
}

type tokenSigner interface {
	Sign(adminID int64, username, role string) (string, time.Time, error)
}

// AuthService logs admins in and seeds the first account.
type AuthService struct {
	admins adminRepository
	tokens tokenSigner
}

func NewAuthService(admins adminRepository, tokens tokenSigner) *AuthService {
	return &AuthService{admins: admins, tokens: tokens}
}

// errInvalidCredentials never says which half was wrong.
var errInvalidCredentials = errs.NewUnauthorizedError("Invalid username or password", true)

// dummyHash keeps the unknown-username path as slow as a real comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("shrine-dummy-password"), bcrypt.DefaultCost)

func (s *AuthService) Login(ctx context.Context, payload *model.LoginPayload) (*model.LoginResponse, error) {
	admin, err := s.admins.GetByUsername(ctx, payload.Username)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(payload.Password))
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(payload.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Sign(admin.ID, admin.Username, admin.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign admin token: %w", err)
	}

	if err := s.admins.TouchLogin(ctx, admin.ID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("admin_id", admin.ID).Msg("failed to record admin login")
	}

	return &model.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     admin,
	}, nil
}

// Me returns the admin a verified token belongs to. An admin deleted after
// the token was issued is treated as unauthenticated.
func (s *AuthService) Me(ctx context.Context, adminID int64) (*model.Admin, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, errs.NewUnauthorizedError("Invalid or expired token", true)
		}
		return nil, err
	}
	return admin, nil
}

// EnsureAdmin creates the configured admin when the admins table is empty.
// It is a no-op when credentials are not configured or any admin exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	count, err := s.admins.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("admin password must be at most 72 bytes: %w", err)
		}
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin, err := s.admins.Create(ctx, username, string(hash), nil)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Int64("admin_id", admin.ID).
		Str("username", admin.Username).
		Msg("created initial admin account")
	return nil
}
