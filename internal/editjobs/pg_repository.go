package editjobs

import (
	"context"

	"github.com/tusharverma21/cloud-video-eraser/internal/models"
	"github.com/tusharverma21/cloud-video-eraser/pkg/utils"

	"github.com/google/uuid"
)

type Repository interface {
	CreateVideo(ctx context.Context, video *models.VideoFile) (*models.VideoFile, error)
	GetVideoByID(ctx context.Context, videoID uuid.UUID) (*models.VideoFile, error)

	CreateJob(ctx context.Context, job *models.EditJob) (*models.EditJob, error)
	GetJobByID(ctx context.Context, jobID uuid.UUID) (*models.EditJob, error)
	GetJobs(ctx context.Context, userID uuid.UUID, pq *utils.Pagination) (*models.JobList, error)
	UpdateJobSubmission(ctx context.Context, jobID uuid.UUID, remoteTaskID int64, status models.JobStatus) error
	UpdateJobStatus(ctx context.Context, job *models.EditJob) error
	DeleteJob(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) error
}
