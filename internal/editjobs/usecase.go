package editjobs

import (
	"context"

	"github.com/tusharverma21/cloud-video-eraser/internal/models"
	"github.com/tusharverma21/cloud-video-eraser/pkg/utils"

	"github.com/google/uuid"
)

type UseCase interface {
	GetUploadURL(ctx context.Context, input *models.UploadInput) (string, error)
	RegisterVideo(ctx context.Context, input *models.VideoUploadInput) (*models.VideoFile, error)
	GetVideo(ctx context.Context, videoID uuid.UUID) (*models.VideoFile, error)

	CreateJob(ctx context.Context, input *models.CreateJobInput) (*models.EditJob, []models.SegmentValidationError, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (*models.EditJob, error)
	ListJobs(ctx context.Context, pagination *utils.Pagination) (*models.JobList, error)
	DeleteJob(ctx context.Context, jobID uuid.UUID) error
	DownloadResult(ctx context.Context, jobID uuid.UUID) (*models.ResultStream, error)
}
