package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/repositories"
	"github.com/elevateconnect/backend/internal/config"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
	"github.com/elevateconnect/backend/internal/pkg/auth"
)

// SyncAdminAccount ensures the configured TPO admin account exists and is
// usable. It runs on every boot: the password hash is refreshed from the
// configuration and the role is forced back to TPO, so a manually edited or
// demoted admin row cannot lock the placement cell out. The display name is
// only set on first creation.
func SyncAdminAccount(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	existing, err := userRepo.GetByEmail(ctx, cfg.Admin.Email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			lgr.Error().Err(err).Msg("Failed to look up admin account")
			return err
		}

		admin := &models.User{
			Name:          cfg.Admin.Name,
			Email:         cfg.Admin.Email,
			Password:      hashedPassword,
			Role:          models.RoleTPO,
			AccountStatus: models.AccountActive,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			lgr.Error().Err(err).Msg("Failed to create admin account")
			return err
		}

		lgr.Info().Int64("adminID", admin.ID).Str("email", admin.Email).Msg("Admin account created")
		return nil
	}

	existing.Password = hashedPassword
	existing.Role = models.RoleTPO
	existing.AccountStatus = models.AccountActive

	if err := userRepo.Update(ctx, existing); err != nil {
		lgr.Error().Err(err).Msg("Failed to refresh admin account")
		return err
	}

	lgr.Info().Int64("adminID", existing.ID).Msg("Admin account refreshed")
	return nil
}
