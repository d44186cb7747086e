// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, token verification, and
// profile reads.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/common"
	"fintrack/internal/dbx"
	"fintrack/internal/server/auth"
	"fintrack/internal/server/config"
	"fintrack/internal/server/models"
	"fintrack/internal/server/repositories/repomanager"
)

// UserService provides account-related operations:
// - Register: create a user plus their wallet and mint a token
// - Login: verify credentials and mint a token
// - VerifyToken: resolve a bearer token back to a live user
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user and their zero-balance wallet in a single
// transaction, then mints an access token. A taken email yields
// common.ErrorEmailExists and persists nothing.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		user = created
		return s.repomanager.Wallets(tx).CreateIfMissing(ctx, user.ID)
	}); err != nil {
		if errors.Is(err, common.ErrorEmailExists) {
			return nil, "", common.ErrorEmailExists
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Login verifies the email/password pair and, on success, mints a token.
// An unknown email and a wrong password both yield
// common.ErrorInvalidCredentials, indistinguishably.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", common.ErrorInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// VerifyToken checks the token's signature and expiry, then re-fetches the
// user so a token cannot outlive its account. A valid token whose user is
// gone yields common.ErrorStaleToken.
func (s *UserService) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorStaleToken
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// GetProfile returns the user's public fields.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

func (s *UserService) generateToken(userID int64) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.tokenValidityDuration)
}
