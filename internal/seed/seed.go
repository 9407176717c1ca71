package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/openlms/lms/internal/app/models"
	appRepos "github.com/openlms/lms/internal/app/repositories"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/internal/pkg/auth"
)

// CreateDefaultData ensures a bootstrap admin account exists so a fresh
// install is reachable. The password comes from configuration, never a
// baked-in default.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, adminPassword string, lgr zerolog.Logger) error {
	if adminPassword == "" {
		lgr.Info().Msg("No admin seed password configured, skipping default data")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	admin := &appModels.User{
		UserID:    "U000",
		LastName:  "Admin",
		FirstName: "System",
		Email:     "admin@openlms.local",
		Role:      appModels.RoleAdmin,
	}

	err := userRepo.Create(ctx, admin)
	switch {
	case err == nil:
		lgr.Info().Str("userId", admin.UserID).Msg("Default admin user created")
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrEmailAlreadyExists):
		lgr.Debug().Msg("Default admin user already present")
		return nil
	default:
		return err
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	account := &appModels.Account{
		UserID:       admin.UserID,
		Email:        admin.Email,
		PasswordHash: hash,
		Role:         appModels.RoleAdmin,
	}
	if err := userRepo.CreateAccount(ctx, account); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		return err
	}

	return nil
}
