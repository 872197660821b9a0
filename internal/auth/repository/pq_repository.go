package repository

import (
	"context"
	"fmt"

	"github.com/tusharverma21/cloud-video-eraser/internal/auth"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type authRepo struct {
	db *sqlx.DB
}

func NewAuthRepo(db *sqlx.DB) auth.Repository {
	return &authRepo{
		db: db,
	}
}

func (r *authRepo) Register(ctx context.Context, user *models.User) (*models.User, error) {
	created := &models.User{}
	if err := r.db.QueryRowxContext(
		ctx,
		createUserQuery,
		user.Username,
		user.Email,
		user.Password,
		user.Fullname,
		user.Tier,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (r *authRepo) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user := &models.User{}
	if err := r.db.QueryRowxContext(
		ctx,
		getUserByIDQuery,
		userID,
	).StructScan(user); err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (r *authRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	if err := r.db.QueryRowxContext(
		ctx,
		findUserByEmail,
		email,
	).StructScan(user); err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *authRepo) Update(ctx context.Context, user *models.User) (*models.User, error) {
	updated := &models.User{}
	if err := r.db.QueryRowxContext(
		ctx,
		updateUserQuery,
		user.Username,
		user.Email,
		user.Fullname,
		user.Tier,
		user.UserID,
	).StructScan(updated); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return updated, nil
}

func (r *authRepo) GetUsageStats(ctx context.Context, userID uuid.UUID) (*models.UsageStats, error) {
	stats := &models.UsageStats{}
	if err := r.db.QueryRowxContext(
		ctx,
		getUsageStatsQuery,
		userID,
	).StructScan(stats); err != nil {
		return nil, fmt.Errorf("failed to get usage stats: %w", err)
	}
	return stats, nil
}
