package editjobs

import (
	"context"

	"github.com/tusharverma21/cloud-video-eraser/internal/models"
)

type RedisRepository interface {
	EnqueueJob(ctx context.Context, key string, job *models.EditJob) error
	DequeueJob(ctx context.Context, key string) (*models.EditJob, error)

	SetProgress(ctx context.Context, key string, jobID string, status models.JobStatus, progress int, message string) error
	GetProgress(ctx context.Context, key string, jobID string) (map[string]string, error)
}
