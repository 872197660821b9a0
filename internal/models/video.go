package models

import (
	"time"

	"github.com/google/uuid"
)

type VideoFile struct {
	VideoID    uuid.UUID `json:"video_id" db:"video_id" redis:"video_id" validate:"omitempty"`
	UserID     uuid.UUID `json:"user_id" db:"user_id" redis:"user_id" validate:"omitempty"`
	FileName   string    `json:"file_name" db:"file_name" redis:"file_name" validate:"required,lte=255"`
	FileSize   int64     `json:"file_size" db:"file_size" redis:"file_size" validate:"required"`
	Duration   float64   `json:"duration" db:"duration" redis:"duration" validate:"required"`
	Width      int       `json:"width" db:"width" redis:"width" validate:"required"`
	Height     int       `json:"height" db:"height" redis:"height" validate:"required"`
	S3Key      string    `json:"s3_key" db:"s3_key" redis:"s3_key" validate:"required,lte=255"`
	S3Bucket   string    `json:"s3_bucket" db:"s3_bucket" redis:"s3_bucket" validate:"required,lte=255"`
	Format     string    `json:"format" db:"format" redis:"format" validate:"required,lte=20"`
	MimeType   string    `json:"mime_type" db:"mime_type" redis:"mime_type" validate:"omitempty,lte=100"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at" redis:"uploaded_at" validate:"omitempty"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at" redis:"updated_at" validate:"omitempty"`
}

type VideoUploadInput struct {
	FileName string  `json:"filename" validate:"required,lte=255"`
	FileSize int64   `json:"file_size" validate:"required"`
	Duration float64 `json:"duration" validate:"required"`
	Width    int     `json:"width" validate:"required"`
	Height   int     `json:"height" validate:"required"`
	Format   string  `json:"format" validate:"required,lte=20"`
	MimeType string  `json:"mime_type" validate:"omitempty,lte=100"`
}
