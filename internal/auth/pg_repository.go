package auth

import (
	"context"

	"github.com/tusharverma21/cloud-video-eraser/internal/models"

	"github.com/google/uuid"
)

type Repository interface {
	Register(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	GetUsageStats(ctx context.Context, userID uuid.UUID) (*models.UsageStats, error)
}
