package auth

import (
	"context"

	"github.com/tusharverma21/cloud-video-eraser/internal/models"

	"github.com/google/uuid"
)

type UseCase interface {
	Register(ctx context.Context, user *models.User) (*models.UserWithToken, error)
	Login(ctx context.Context, user *models.User) (*models.UserWithToken, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	GetUsageStats(ctx context.Context, userID uuid.UUID) (*models.UsageStats, error)
}
