package poller

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tusharverma21/cloud-video-eraser/internal/config"
	"github.com/tusharverma21/cloud-video-eraser/internal/ghostcut"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"
	"github.com/tusharverma21/cloud-video-eraser/pkg/logger"

	"github.com/google/uuid"
)

const (
	// progressCeiling caps the progress reported while a job is still
	// processing; 100 is reserved for the actual completion transition.
	progressCeiling = 90

	defaultProgressFallback = 50
	defaultFailureMessage   = "video processing failed"
)

// JobStore is the slice of the jobs repository the poller needs.
type JobStore interface {
	GetJobByID(ctx context.Context, jobID uuid.UUID) (*models.EditJob, error)
	UpdateJobStatus(ctx context.Context, job *models.EditJob) error
}

// ProgressCache mirrors progress into redis for cheap client polling.
type ProgressCache interface {
	SetProgress(ctx context.Context, key string, jobID string, status models.JobStatus, progress int, message string) error
}

// OutputStore receives a copy of the finished render.
type OutputStore interface {
	PutObject(ctx context.Context, bucket, key, contentType string, body io.Reader) error
}

type Poller struct {
	cfg        *config.Config
	checker    ghostcut.StatusChecker
	jobs       JobStore
	cache      ProgressCache
	outputs    OutputStore
	httpClient *http.Client
	interval   time.Duration
	logger     logger.Logger
}

// NewPoller builds a poller. cache and outputs may be nil; the
// corresponding steps are skipped.
func NewPoller(
	cfg *config.Config,
	checker ghostcut.StatusChecker,
	jobs JobStore,
	cache ProgressCache,
	outputs OutputStore,
	log logger.Logger,
) *Poller {
	return &Poller{
		cfg:     cfg,
		checker: checker,
		jobs:    jobs,
		cache:   cache,
		outputs: outputs,
		httpClient: &http.Client{
			Timeout: cfg.GhostCut.RequestTimeoutDuration(),
		},
		interval: cfg.GhostCut.PollIntervalDuration(),
		logger:   log,
	}
}

// Monitor polls the remote task until the job reaches a terminal state,
// the job row disappears, or an error occurs. Runs as a long-lived
// goroutine, one per submitted job; the poller is the only writer of
// the job's status fields after submission.
//
// Known limitation: a remote-call or job-store error stops polling
// without concluding the job, leaving it in its last known state. Kept
// deliberately; do not convert such errors to a FAILED transition
// without product sign-off.
func (p *Poller) Monitor(ctx context.Context, jobID uuid.UUID, remoteTaskID int64) {
	p.logger.Infof("poller: monitoring job %s (remote task %d) every %s", jobID, remoteTaskID, p.interval)

	for {
		select {
		case <-ctx.Done():
			p.logger.Infof("poller: context cancelled for job %s", jobID)
			return
		case <-time.After(p.interval):
		}

		remote, err := p.checker.CheckStatus(ctx, remoteTaskID)
		if err != nil {
			p.logger.Errorf("poller: status check failed for job %s, leaving job in last known state: %v", jobID, err)
			return
		}

		job, err := p.jobs.GetJobByID(ctx, jobID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Job was deleted mid-poll; normal termination.
				p.logger.Infof("poller: job %s no longer exists, stopping", jobID)
				return
			}
			p.logger.Errorf("poller: job lookup failed for %s, leaving job in last known state: %v", jobID, err)
			return
		}

		done := p.applyRemoteStatus(ctx, job, remote)
		if err = p.jobs.UpdateJobStatus(ctx, job); err != nil {
			p.logger.Errorf("poller: status update failed for job %s, leaving job in last known state: %v", jobID, err)
			return
		}
		p.cacheProgress(ctx, job)

		if done {
			p.logger.Infof("poller: job %s finished with status %s", jobID, job.Status)
			return
		}
	}
}

// applyRemoteStatus maps one remote status report onto the job row and
// reports whether a terminal state was reached.
func (p *Poller) applyRemoteStatus(ctx context.Context, job *models.EditJob, remote *models.RemoteStatus) bool {
	switch {
	case remote.Progress >= 100:
		now := time.Now()
		job.Status = models.JobStatusCompleted
		job.Progress = 100
		job.ProgressMessage = "processing complete"
		job.CompletedAt = &now
		if remote.OutputURL != "" {
			outputURL := remote.OutputURL
			job.OutputURL = &outputURL
			p.mirrorOutput(ctx, job)
		}
		return true

	case remote.Status == models.RemoteStatusFailed || remote.Status == models.RemoteStatusError:
		now := time.Now()
		errMsg := remote.Error
		if errMsg == "" {
			errMsg = defaultFailureMessage
		}
		job.Status = models.JobStatusFailed
		job.ErrorMessage = &errMsg
		job.ProgressMessage = "processing failed"
		job.CompletedAt = &now
		return true

	default:
		progress := int(remote.Progress)
		if progress == 0 {
			progress = defaultProgressFallback
		}
		if progress > progressCeiling {
			progress = progressCeiling
		}
		job.Status = models.JobStatusProcessing
		job.Progress = progress
		job.ProgressMessage = fmt.Sprintf("processing: %d%%", progress)
		return false
	}
}

func (p *Poller) cacheProgress(ctx context.Context, job *models.EditJob) {
	if p.cache == nil {
		return
	}
	// Cache failures must not stop polling; the job store is the source
	// of truth.
	if err := p.cache.SetProgress(ctx, p.cfg.Redis.ProgressKey, job.JobID.String(), job.Status, job.Progress, job.ProgressMessage); err != nil {
		p.logger.Warnf("poller: progress cache update failed for job %s: %v", job.JobID, err)
	}
}

// mirrorOutput copies the finished render from the remote URL into the
// output bucket so downloads survive remote URL expiry. Failure keeps
// the remote URL as the download source.
func (p *Poller) mirrorOutput(ctx context.Context, job *models.EditJob) {
	if p.outputs == nil || job.OutputURL == nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, *job.OutputURL, nil)
	if err != nil {
		p.logger.Warnf("poller: failed to build mirror request for job %s: %v", job.JobID, err)
		return
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Warnf("poller: failed to fetch output for job %s: %v", job.JobID, err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		p.logger.Warnf("poller: output fetch for job %s returned status %d", job.JobID, resp.StatusCode)
		return
	}

	key := fmt.Sprintf("results/%s/%s.mp4", job.UserID, job.JobID)
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/mp4"
	}
	if err = p.outputs.PutObject(ctx, p.cfg.S3.OutputBucket, key, contentType, resp.Body); err != nil {
		p.logger.Warnf("poller: failed to mirror output for job %s: %v", job.JobID, err)
		return
	}
	job.OutputS3Key = &key
}
