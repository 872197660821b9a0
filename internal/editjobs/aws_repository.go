package editjobs

import (
	"context"
	"io"
	"time"

	"github.com/tusharverma21/cloud-video-eraser/internal/models"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type AWSRepository interface {
	GetPresignedUploadURL(ctx context.Context, input *models.UploadInput) (string, error)
	GetPresignedDownloadURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error)
	PutObject(ctx context.Context, bucket, key, contentType string, body io.Reader) error
	GetObject(ctx context.Context, bucket, key string) (*s3.GetObjectOutput, error)
	RemoveObject(ctx context.Context, bucket, key string) error
}
