package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/app/repositories"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/internal/pkg/auth"
	"github.com/openlms/lms/pkg/api"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error)
	Register(ctx context.Context, req *api.RegisterRequest) (*models.Account, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks credentials and issues a signed token. Unknown emails
// and wrong passwords produce the same error.
func (s *authServiceImpl) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	account, err := s.userRepo.GetAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up account: %w", err)
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(account.AccountID, account.UserID, account.Email, string(account.Role))
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Str("userId", account.UserID).Msg("User logged in")

	return &api.LoginResponse{
		Message:     "Login successful",
		AccessToken: token,
		ExpiresIn:   expiresIn,
		User: api.AuthUser{
			AccountID: account.AccountID,
			UserID:    account.UserID,
			Email:     account.Email,
			Role:      string(account.Role),
		},
	}, nil
}

// Register stores a new user profile together with its credentials.
func (s *authServiceImpl) Register(ctx context.Context, req *api.RegisterRequest) (*models.Account, error) {
	role := req.Role
	if role == "" {
		role = string(models.RoleStudent)
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: role must be admin, teacher or student", apperrors.ErrValidationFailed)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user := &models.User{
		UserID:    strings.TrimSpace(req.UserID),
		LastName:  strings.TrimSpace(req.LastName),
		FirstName: strings.TrimSpace(req.FirstName),
		Email:     email,
		Role:      models.Role(role),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		UserID:       user.UserID,
		Email:        email,
		PasswordHash: hash,
		Role:         user.Role,
	}
	if err := s.userRepo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", user.UserID).Str("role", role).Msg("User registered")
	return account, nil
}
