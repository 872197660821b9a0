package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tusharverma21/cloud-video-eraser/internal/editjobs"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"

	"github.com/go-redis/redis/v8"
)

const progressTTL = 24 * time.Hour

type editJobsRedisRepo struct {
	redisClient *redis.Client
}

func NewEditJobsRedisRepo(redisClient *redis.Client) editjobs.RedisRepository {
	return &editJobsRedisRepo{
		redisClient: redisClient,
	}
}

func (r *editJobsRedisRepo) EnqueueJob(ctx context.Context, key string, job *models.EditJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	if err = r.redisClient.LPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}
	return nil
}

func (r *editJobsRedisRepo) DequeueJob(ctx context.Context, key string) (*models.EditJob, error) {
	res, err := r.redisClient.BLPop(ctx, 0*time.Second, key).Result()
	if err != nil {
		return nil, err
	}
	job := &models.EditJob{}
	if err = json.Unmarshal([]byte(res[1]), job); err != nil {
		return nil, fmt.Errorf("error unmarshalling job: %v", err)
	}
	return job, nil
}

func (r *editJobsRedisRepo) SetProgress(ctx context.Context, key string, jobID string, status models.JobStatus, progress int, message string) error {
	progressKey := key + jobID

	pipe := r.redisClient.Pipeline()
	pipe.HSet(ctx, progressKey, "status", string(status), "progress", progress, "message", message)
	pipe.Expire(ctx, progressKey, progressTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return nil
}

func (r *editJobsRedisRepo) GetProgress(ctx context.Context, key string, jobID string) (map[string]string, error) {
	res, err := r.redisClient.HGetAll(ctx, key+jobID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return res, nil
}
