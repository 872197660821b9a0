package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tusharverma21/cloud-video-eraser/internal/auth"
	"github.com/tusharverma21/cloud-video-eraser/internal/config"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"
	"github.com/tusharverma21/cloud-video-eraser/pkg/logger"
	"github.com/tusharverma21/cloud-video-eraser/pkg/utils"

	"github.com/google/uuid"
)

type authUC struct {
	cfg      *config.Config
	authRepo auth.Repository
	logger   logger.Logger
}

func NewAuthUseCase(cfg *config.Config, authRepo auth.Repository, log logger.Logger) auth.UseCase {
	return &authUC{
		cfg:      cfg,
		authRepo: authRepo,
		logger:   log,
	}
}

func (u *authUC) Register(ctx context.Context, user *models.User) (*models.UserWithToken, error) {
	if err := utils.ValidateStruct(ctx, user); err != nil {
		u.logger.Errorf("Register - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	if err := user.PrepareCreate(); err != nil {
		return nil, err
	}

	existing, err := u.authRepo.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		u.logger.Errorf("Register - FindByEmail error: %v", err)
		return nil, fmt.Errorf("failed to check existing user: %v", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user with email %s already exists", user.Email)
	}

	created, err := u.authRepo.Register(ctx, user)
	if err != nil {
		u.logger.Errorf("Register - Register error: %v", err)
		return nil, err
	}
	created.SanitizePassword()

	token, err := utils.GenerateJWTToken(created, u.cfg)
	if err != nil {
		u.logger.Errorf("Register - GenerateJWTToken error: %v", err)
		return nil, fmt.Errorf("failed to generate token: %v", err)
	}
	return &models.UserWithToken{
		User:  created,
		Token: token,
	}, nil
}

func (u *authUC) Login(ctx context.Context, user *models.User) (*models.UserWithToken, error) {
	foundUser, err := u.authRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invalid email or password")
		}
		u.logger.Errorf("Login - FindByEmail error: %v", err)
		return nil, fmt.Errorf("failed to login: %v", err)
	}
	if err = foundUser.ComparePassword(user.Password); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	foundUser.SanitizePassword()

	token, err := utils.GenerateJWTToken(foundUser, u.cfg)
	if err != nil {
		u.logger.Errorf("Login - GenerateJWTToken error: %v", err)
		return nil, fmt.Errorf("failed to generate token: %v", err)
	}
	return &models.UserWithToken{
		User:  foundUser,
		Token: token,
	}, nil
}

func (u *authUC) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := u.authRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		u.logger.Errorf("GetByID - error: %v", err)
		return nil, fmt.Errorf("failed to fetch user: %v", err)
	}
	user.SanitizePassword()
	return user, nil
}

func (u *authUC) Update(ctx context.Context, user *models.User) (*models.User, error) {
	updated, err := u.authRepo.Update(ctx, user)
	if err != nil {
		u.logger.Errorf("Update - error: %v", err)
		return nil, fmt.Errorf("failed to update user: %v", err)
	}
	updated.SanitizePassword()
	return updated, nil
}

func (u *authUC) GetUsageStats(ctx context.Context, userID uuid.UUID) (*models.UsageStats, error) {
	stats, err := u.authRepo.GetUsageStats(ctx, userID)
	if err != nil {
		u.logger.Errorf("GetUsageStats - error: %v", err)
		return nil, fmt.Errorf("failed to fetch usage stats: %v", err)
	}
	return stats, nil
}
