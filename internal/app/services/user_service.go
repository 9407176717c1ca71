package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/app/repositories"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/pkg/api"
)

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context, p repositories.ListParams) ([]models.User, int64, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, req *api.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *api.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers retrieves a page of users
func (s *userServiceImpl) ListUsers(ctx context.Context, p repositories.ListParams) ([]models.User, int64, error) {
	return s.userRepo.List(ctx, p)
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("user ID cannot be empty")
	}
	return s.userRepo.GetByID(ctx, id)
}

// CreateUser validates and stores a new user. The role is stored
// explicitly; omitted roles default to student.
func (s *userServiceImpl) CreateUser(ctx context.Context, req *api.CreateUserRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = string(models.RoleStudent)
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: role must be admin, teacher or student", apperrors.ErrValidationFailed)
	}

	dob, err := parseDoB(req.DoB)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:    strings.TrimSpace(req.UserID),
		LastName:  strings.TrimSpace(req.LastName),
		FirstName: strings.TrimSpace(req.FirstName),
		Email:     strings.TrimSpace(req.Email),
		Role:      models.Role(role),
		Phone:     req.Phone,
		Address:   req.Address,
		Age:       req.Age,
		DoB:       dob,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", user.UserID).Str("role", role).Msg("User created")
	return user, nil
}

// UpdateUser writes the supplied fields and returns the fresh row
func (s *userServiceImpl) UpdateUser(ctx context.Context, id string, req *api.UpdateUserRequest) (*models.User, error) {
	fields := map[string]interface{}{}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return nil, fmt.Errorf("%w: role must be admin, teacher or student", apperrors.ErrValidationFailed)
		}
		fields["role"] = *req.Role
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.DoB != nil {
		dob, err := parseDoB(req.DoB)
		if err != nil {
			return nil, err
		}
		fields["dob"] = *dob
	}

	if len(fields) > 0 {
		if err := s.userRepo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetByID(ctx, id)
}

// DeleteUser removes a user
func (s *userServiceImpl) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("userId", id).Msg("User deleted")
	return nil
}

func parseDoB(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, fmt.Errorf("%w: date of birth must be in YYYY-MM-DD form", apperrors.ErrValidationFailed)
	}
	return &parsed, nil
}
