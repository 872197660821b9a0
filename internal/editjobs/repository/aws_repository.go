package repository

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/tusharverma21/cloud-video-eraser/internal/editjobs"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var videoFilePattern = regexp.MustCompile(`.+(mp4|mkv|avi|mov|wmv|flv|webm|m4v|mpeg|mpg|3gp|ogv|vob|ts|mxf)$`)

type awsRepository struct {
	client        *s3.Client
	preSignClient *s3.PresignClient
}

func NewAwsRepository(awsClient *s3.Client, preSignClient *s3.PresignClient) editjobs.AWSRepository {
	return &awsRepository{
		preSignClient: preSignClient,
		client:        awsClient,
	}
}

func (a *awsRepository) GetPresignedUploadURL(ctx context.Context, input *models.UploadInput) (string, error) {
	if !videoFilePattern.MatchString(input.Name) {
		return "", fmt.Errorf("invalid file format: %s", input.Name)
	}
	putObjectReq, err := a.preSignClient.PresignPutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket:        &input.BucketName,
			Key:           &input.Key,
			ContentLength: &input.Size,
			ContentType:   &input.MimeType,
		},
		s3.WithPresignExpires(60*time.Minute),
	)
	if err != nil {
		return "", fmt.Errorf("failed to presign put object: %w", err)
	}
	return putObjectReq.URL, nil
}

func (a *awsRepository) GetPresignedDownloadURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	getObjectReq, err := a.preSignClient.PresignGetObject(
		ctx,
		&s3.GetObjectInput{
			Bucket: &bucket,
			Key:    &key,
		},
		s3.WithPresignExpires(expires),
	)
	if err != nil {
		return "", fmt.Errorf("failed to presign get object: %w", err)
	}
	return getObjectReq.URL, nil
}

func (a *awsRepository) PutObject(ctx context.Context, bucket, key, contentType string, body io.Reader) error {
	if _, err := a.client.PutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket:      &bucket,
			Key:         &key,
			ContentType: &contentType,
			Body:        body,
		},
	); err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

func (a *awsRepository) GetObject(ctx context.Context, bucket, key string) (*s3.GetObjectOutput, error) {
	res, err := a.client.GetObject(
		ctx,
		&s3.GetObjectInput{
			Bucket: &bucket,
			Key:    &key,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return res, nil
}

func (a *awsRepository) RemoveObject(ctx context.Context, bucket, key string) error {
	if _, err := a.client.DeleteObject(
		ctx,
		&s3.DeleteObjectInput{
			Bucket: &bucket,
			Key:    &key,
		},
	); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
