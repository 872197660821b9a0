package repository

import (
	"context"
	"fmt"

	"github.com/tusharverma21/cloud-video-eraser/internal/editjobs"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"
	"github.com/tusharverma21/cloud-video-eraser/pkg/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type editJobsRepo struct {
	db *sqlx.DB
}

func NewEditJobsRepo(db *sqlx.DB) editjobs.Repository {
	return &editJobsRepo{
		db: db,
	}
}

func (r *editJobsRepo) CreateVideo(ctx context.Context, video *models.VideoFile) (*models.VideoFile, error) {
	created := &models.VideoFile{}
	if err := r.db.QueryRowxContext(
		ctx,
		createVideoQuery,
		video.UserID,
		video.FileName,
		video.FileSize,
		video.Duration,
		video.Width,
		video.Height,
		video.S3Key,
		video.S3Bucket,
		video.Format,
		video.MimeType,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return created, nil
}

func (r *editJobsRepo) GetVideoByID(ctx context.Context, videoID uuid.UUID) (*models.VideoFile, error) {
	video := &models.VideoFile{}
	if err := r.db.QueryRowxContext(
		ctx,
		getVideoByIDQuery,
		videoID,
	).StructScan(video); err != nil {
		return nil, fmt.Errorf("failed to get video by id: %w", err)
	}
	return video, nil
}

func (r *editJobsRepo) CreateJob(ctx context.Context, job *models.EditJob) (*models.EditJob, error) {
	created := &models.EditJob{}
	if err := r.db.QueryRowxContext(
		ctx,
		createJobQuery,
		job.JobID,
		job.UserID,
		job.VideoID,
		job.Segments,
		job.Regions,
		job.Status,
		job.Progress,
		job.ProgressMessage,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

func (r *editJobsRepo) GetJobByID(ctx context.Context, jobID uuid.UUID) (*models.EditJob, error) {
	job := &models.EditJob{}
	if err := r.db.QueryRowxContext(
		ctx,
		getJobByIDQuery,
		jobID,
	).StructScan(job); err != nil {
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}
	return job, nil
}

func (r *editJobsRepo) GetJobs(ctx context.Context, userID uuid.UUID, pq *utils.Pagination) (*models.JobList, error) {
	var totalCount int
	if err := r.db.GetContext(
		ctx,
		&totalCount,
		getTotalJobsByUserIDQuery,
		userID,
	); err != nil {
		return nil, fmt.Errorf("failed to get total jobs count: %w", err)
	}
	if totalCount == 0 {
		return &models.JobList{
			Jobs:       make([]*models.EditJob, 0),
			TotalCount: 0,
			Page:       pq.GetPage(),
			PageSize:   pq.GetSize(),
			HasMore:    false,
		}, nil
	}
	rows, err := r.db.QueryxContext(
		ctx,
		getJobsByUserIDQuery,
		userID,
		pq.GetOffset(),
		pq.GetLimit(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs by user id: %w", err)
	}
	defer rows.Close()
	var jobs = make([]*models.EditJob, 0, pq.GetSize())
	for rows.Next() {
		var job models.EditJob
		if err = rows.StructScan(&job); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, &job)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}
	return &models.JobList{
		Jobs:       jobs,
		TotalCount: totalCount,
		Page:       pq.GetPage(),
		PageSize:   pq.GetSize(),
		HasMore:    utils.GetHasMore(pq.GetPage(), totalCount, pq.GetSize()),
	}, nil
}

func (r *editJobsRepo) UpdateJobSubmission(ctx context.Context, jobID uuid.UUID, remoteTaskID int64, status models.JobStatus) error {
	res, err := r.db.ExecContext(
		ctx,
		updateJobSubmissionQuery,
		jobID,
		remoteTaskID,
		status,
	)
	if err != nil {
		return fmt.Errorf("failed to update job submission: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return fmt.Errorf("no job found to update")
	}
	return nil
}

func (r *editJobsRepo) UpdateJobStatus(ctx context.Context, job *models.EditJob) error {
	if _, err := r.db.ExecContext(
		ctx,
		updateJobStatusQuery,
		job.JobID,
		job.Status,
		job.Progress,
		job.ProgressMessage,
		job.OutputURL,
		job.OutputS3Key,
		job.ErrorMessage,
		job.CompletedAt,
	); err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	return nil
}

func (r *editJobsRepo) DeleteJob(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) error {
	res, err := r.db.ExecContext(
		ctx,
		deleteJobQuery,
		jobID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return fmt.Errorf("no job found to delete")
	}
	return nil
}
