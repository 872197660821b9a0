package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tusharverma21/cloud-video-eraser/internal/config"
	"github.com/tusharverma21/cloud-video-eraser/internal/editjobs"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"
	"github.com/tusharverma21/cloud-video-eraser/pkg/logger"
	"github.com/tusharverma21/cloud-video-eraser/pkg/utils"

	"github.com/google/uuid"
)

type editJobsUC struct {
	cfg        *config.Config
	jobsRepo   editjobs.Repository
	redisRepo  editjobs.RedisRepository
	awsRepo    editjobs.AWSRepository
	httpClient *http.Client
	logger     logger.Logger
}

func NewEditJobsUseCase(
	cfg *config.Config,
	jobsRepo editjobs.Repository,
	redisRepo editjobs.RedisRepository,
	awsRepo editjobs.AWSRepository,
	log logger.Logger,
) editjobs.UseCase {
	return &editJobsUC{
		cfg:       cfg,
		jobsRepo:  jobsRepo,
		redisRepo: redisRepo,
		awsRepo:   awsRepo,
		httpClient: &http.Client{
			Timeout: cfg.GhostCut.RequestTimeoutDuration(),
		},
		logger: log,
	}
}

func (u *editJobsUC) GetUploadURL(ctx context.Context, input *models.UploadInput) (string, error) {
	if input == nil {
		return "", fmt.Errorf("invalid input: input is nil")
	}

	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("GetUploadURL - GetUserFromCtx error: %v", err)
		return "", err
	}

	if err = utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("GetUploadURL - ValidateStruct error: %v", err)
		return "", err
	}

	input.BucketName = u.cfg.S3.InputBucket
	input.Key = fmt.Sprintf("uploads/%s/%s", user.UserID, input.Name)

	u.logger.Infof("Generating presigned URL for key: %s", input.Key)
	url, err := u.awsRepo.GetPresignedUploadURL(ctx, input)
	if err != nil {
		u.logger.Errorf("GetUploadURL - GetPresignedUploadURL error: %v", err)
		return "", fmt.Errorf("failed to generate presigned URL: %v", err)
	}

	return url, nil
}

func (u *editJobsUC) RegisterVideo(ctx context.Context, input *models.VideoUploadInput) (*models.VideoFile, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("GetUserFromCtx: %v", err)
		return nil, err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("RegisterVideo - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	video := &models.VideoFile{
		UserID:   user.UserID,
		FileName: input.FileName,
		FileSize: input.FileSize,
		Duration: input.Duration,
		Width:    input.Width,
		Height:   input.Height,
		S3Key:    fmt.Sprintf("uploads/%s/%s", user.UserID, input.FileName),
		S3Bucket: u.cfg.S3.InputBucket,
		Format:   input.Format,
		MimeType: input.MimeType,
	}
	video, err = u.jobsRepo.CreateVideo(ctx, video)
	if err != nil {
		u.logger.Errorf("RegisterVideo - CreateVideo error: %v", err)
		return nil, err
	}
	return video, nil
}

func (u *editJobsUC) GetVideo(ctx context.Context, videoID uuid.UUID) (*models.VideoFile, error) {
	if videoID == uuid.Nil {
		return nil, fmt.Errorf("invalid video id: cannot be empty")
	}

	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("GetVideo - failed to get user from context: %v", err)
		return nil, fmt.Errorf("unauthorized: %v", err)
	}

	video, err := u.jobsRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			u.logger.Warnf("Video not found with ID: %s", videoID.String())
			return nil, fmt.Errorf("video not found")
		}
		u.logger.Errorf("GetVideo - failed to fetch video: %v", err)
		return nil, fmt.Errorf("failed to fetch video: %v", err)
	}

	if video.UserID != user.UserID {
		u.logger.Warnf("User %s is not authorized to access video %s", user.UserID, videoID.String())
		return nil, fmt.Errorf("unauthorized access to video")
	}

	return video, nil
}

// CreateJob validates the segments against the user's tier limit and the
// regions against the source video, persists the job in pending state
// and queues it for submission. Validation failures come back as the
// full structured error list, not as a Go error.
func (u *editJobsUC) CreateJob(ctx context.Context, input *models.CreateJobInput) (*models.EditJob, []models.SegmentValidationError, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("CreateJob - GetUserFromCtx: %v", err)
		return nil, nil, err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("CreateJob - ValidateStruct error: %v", err)
		return nil, nil, fmt.Errorf("invalid input: %v", err)
	}

	video, err := u.GetVideo(ctx, input.VideoID)
	if err != nil {
		return nil, nil, err
	}

	maxSegments := u.cfg.MaxSegmentsForTier(user.Tier)
	if validationErrs := editjobs.ValidateSegments(input.Segments, video.Duration, maxSegments); len(validationErrs) > 0 {
		u.logger.Infof("CreateJob - segment validation failed for user %s: %d errors", user.UserID, len(validationErrs))
		return nil, validationErrs, nil
	}

	regions, err := editjobs.NormalizeRegions(input.Regions, video.Width, video.Height, video.Duration)
	if err != nil {
		u.logger.Infof("CreateJob - region normalization failed for user %s: %v", user.UserID, err)
		return nil, nil, err
	}

	job := &models.EditJob{
		JobID:           uuid.New(),
		UserID:          user.UserID,
		VideoID:         video.VideoID,
		Segments:        input.Segments,
		Regions:         regions,
		Status:          models.JobStatusPending,
		Progress:        0,
		ProgressMessage: "queued for submission",
	}
	job, err = u.jobsRepo.CreateJob(ctx, job)
	if err != nil {
		u.logger.Errorf("CreateJob - CreateJob error: %v", err)
		return nil, nil, err
	}

	if err = u.redisRepo.EnqueueJob(ctx, u.cfg.Redis.JobQueueKey, job); err != nil {
		u.logger.Errorf("CreateJob - EnqueueJob error: %v", err)
		return nil, nil, fmt.Errorf("failed to queue the job: %v", err)
	}
	return job, nil, nil
}

func (u *editJobsUC) GetJob(ctx context.Context, jobID uuid.UUID) (*models.EditJob, error) {
	if jobID == uuid.Nil {
		return nil, fmt.Errorf("invalid job id: cannot be empty")
	}

	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("GetJob - failed to get user from context: %v", err)
		return nil, err
	}

	job, err := u.jobsRepo.GetJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("job not found")
		}
		u.logger.Errorf("GetJob - failed to fetch job: %v", err)
		return nil, fmt.Errorf("failed to fetch job: %v", err)
	}
	if job.UserID != user.UserID {
		u.logger.Warnf("User %s is not authorized to access job %s", user.UserID, jobID.String())
		return nil, fmt.Errorf("unauthorized access to job")
	}

	u.overlayCachedProgress(ctx, job)
	return job, nil
}

// overlayCachedProgress folds the poller's redis progress hash into a
// non-terminal job so clients polling the API see fresh numbers between
// database writes. Cache misses are ignored.
func (u *editJobsUC) overlayCachedProgress(ctx context.Context, job *models.EditJob) {
	if job.Status.IsTerminal() {
		return
	}
	cached, err := u.redisRepo.GetProgress(ctx, u.cfg.Redis.ProgressKey, job.JobID.String())
	if err != nil || len(cached) == 0 {
		return
	}
	if p, err := strconv.Atoi(cached["progress"]); err == nil {
		job.Progress = p
	}
	if msg, ok := cached["message"]; ok && msg != "" {
		job.ProgressMessage = msg
	}
}

func (u *editJobsUC) ListJobs(ctx context.Context, pagination *utils.Pagination) (*models.JobList, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("ListJobs - failed to get user from context: %v", err)
		return nil, err
	}

	if pagination == nil {
		pagination = &utils.Pagination{
			Page: 1,
			Size: 10,
		}
	}
	if pagination.Page < 1 {
		pagination.Page = 1
	}
	if pagination.Size < 1 || pagination.Size > 100 {
		pagination.Size = 10
	}

	jobs, err := u.jobsRepo.GetJobs(ctx, user.UserID, pagination)
	if err != nil {
		u.logger.Errorf("ListJobs - failed to fetch jobs for user %s: %v", user.UserID.String(), err)
		return nil, fmt.Errorf("failed to fetch jobs: %v", err)
	}
	return jobs, nil
}

func (u *editJobsUC) DeleteJob(ctx context.Context, jobID uuid.UUID) error {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("DeleteJob - failed to get user from context: %v", err)
		return err
	}
	if jobID == uuid.Nil {
		return fmt.Errorf("invalid job id: cannot be empty")
	}
	if err = u.jobsRepo.DeleteJob(ctx, user.UserID, jobID); err != nil {
		u.logger.Errorf("DeleteJob - failed to delete job: %v", err)
		return fmt.Errorf("failed to delete job: %v", err)
	}
	return nil
}

// DownloadResult opens a stream over a completed render, preferring the
// mirrored copy in the output bucket and falling back to proxying the
// remote URL.
func (u *editJobsUC) DownloadResult(ctx context.Context, jobID uuid.UUID) (*models.ResultStream, error) {
	job, err := u.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusCompleted {
		return nil, fmt.Errorf("job is not completed yet: status is %s", job.Status)
	}

	fileName := fmt.Sprintf("%s_cleaned.mp4", job.JobID)

	if job.OutputS3Key != nil && *job.OutputS3Key != "" {
		out, err := u.awsRepo.GetObject(ctx, u.cfg.S3.OutputBucket, *job.OutputS3Key)
		if err != nil {
			u.logger.Errorf("DownloadResult - GetObject error: %v", err)
			return nil, fmt.Errorf("failed to fetch result: %v", err)
		}
		stream := &models.ResultStream{
			Body:     out.Body,
			FileName: fileName,
		}
		if out.ContentType != nil {
			stream.ContentType = *out.ContentType
		}
		if out.ContentLength != nil {
			stream.ContentLength = *out.ContentLength
		}
		return stream, nil
	}

	if job.OutputURL == nil || *job.OutputURL == "" {
		return nil, fmt.Errorf("completed job has no output")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, *job.OutputURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %v", err)
	}
	resp, err := u.httpClient.Do(req)
	if err != nil {
		u.logger.Errorf("DownloadResult - remote fetch error: %v", err)
		return nil, fmt.Errorf("failed to fetch result: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("remote output returned status %d", resp.StatusCode)
	}
	stream := &models.ResultStream{
		Body:        resp.Body,
		FileName:    fileName,
		ContentType: resp.Header.Get("Content-Type"),
	}
	if resp.ContentLength > 0 {
		stream.ContentLength = resp.ContentLength
	}
	return stream, nil
}
