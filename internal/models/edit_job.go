package models

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// IsTerminal reports whether the status will never change again.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// EditJob is the bookkeeping row for one submitted inpainting request.
// After submission only the status poller writes to it.
type EditJob struct {
	JobID           uuid.UUID   `json:"job_id" db:"job_id" redis:"job_id" validate:"omitempty"`
	UserID          uuid.UUID   `json:"user_id" db:"user_id" redis:"user_id" validate:"omitempty"`
	VideoID         uuid.UUID   `json:"video_id" db:"video_id" redis:"video_id" validate:"required"`
	RemoteTaskID    int64       `json:"remote_task_id" db:"remote_task_id" redis:"remote_task_id" validate:"omitempty"`
	Segments        SegmentList `json:"segments" db:"segments" validate:"omitempty"`
	Regions         RegionList  `json:"regions" db:"regions" validate:"omitempty"`
	Status          JobStatus   `json:"status" db:"status" redis:"status" validate:"required"`
	Progress        int         `json:"progress" db:"progress" redis:"progress" validate:"gte=0,lte=100"`
	ProgressMessage string      `json:"progress_message" db:"progress_message" redis:"progress_message"`
	OutputURL       *string     `json:"output_url,omitempty" db:"output_url"`
	OutputS3Key     *string     `json:"output_s3_key,omitempty" db:"output_s3_key"`
	ErrorMessage    *string     `json:"error_message,omitempty" db:"error_message"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty" db:"completed_at"`
}

type JobList struct {
	Jobs       []*EditJob `json:"jobs"`
	TotalCount int        `json:"total_count"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	HasMore    bool       `json:"has_more"`
}

// CreateJobInput is the request payload for submitting an edit job.
// Region rectangles arrive in pixel coordinates of the source video and
// are normalized before submission.
type CreateJobInput struct {
	VideoID  uuid.UUID          `json:"video_id" validate:"required"`
	Segments []Segment          `json:"segments" validate:"required,min=1,dive"`
	Regions  []PixelRegionInput `json:"regions" validate:"dive"`
}

// PixelRegionInput is an effect region in source pixel coordinates.
type PixelRegionInput struct {
	Type      EffectType `json:"type" validate:"required,oneof=erase protect text"`
	X1        float64    `json:"x1"`
	Y1        float64    `json:"y1"`
	X2        float64    `json:"x2"`
	Y2        float64    `json:"y2"`
	StartTime float64    `json:"start_time"`
	EndTime   float64    `json:"end_time"`
}
