package worker

import (
	"context"
	"time"

	"github.com/tusharverma21/cloud-video-eraser/internal/models"
)

// sourceURLExpiry must outlive the remote service's fetch of the input
// video, which can lag submission by the length of its own queue.
const sourceURLExpiry = 4 * time.Hour

// handleJob submits one queued job to the remote service and spawns its
// status poller. Submission failures conclude the job as failed right
// away; only the polling phase has the leave-in-last-state policy.
func (w *Worker) handleJob(ctx context.Context, job *models.EditJob) {
	w.logger.Infof("submitting job %s for video %s", job.JobID, job.VideoID)

	video, err := w.jobsRepo.GetVideoByID(ctx, job.VideoID)
	if err != nil {
		w.logger.Errorf("job %s: failed to load video: %v", job.JobID, err)
		w.markFailed(ctx, job, "source video not found")
		return
	}

	sourceURL, err := w.awsRepo.GetPresignedDownloadURL(ctx, video.S3Bucket, video.S3Key, sourceURLExpiry)
	if err != nil {
		w.logger.Errorf("job %s: failed to presign source video: %v", job.JobID, err)
		w.markFailed(ctx, job, "failed to prepare source video")
		return
	}

	remoteTaskID, err := w.submitter.SubmitRender(ctx, sourceURL, buildEffectRegions(job))
	if err != nil {
		w.logger.Errorf("job %s: render submission failed: %v", job.JobID, err)
		w.markFailed(ctx, job, "render submission failed")
		return
	}

	if err = w.jobsRepo.UpdateJobSubmission(ctx, job.JobID, remoteTaskID, models.JobStatusProcessing); err != nil {
		w.logger.Errorf("job %s: failed to record submission: %v", job.JobID, err)
		return
	}
	if err = w.redisRepo.SetProgress(ctx, w.cfg.Redis.ProgressKey, job.JobID.String(), models.JobStatusProcessing, 0, "submitted for processing"); err != nil {
		w.logger.Warnf("job %s: progress cache update failed: %v", job.JobID, err)
	}

	w.logger.Infof("job %s submitted as remote task %d", job.JobID, remoteTaskID)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.poller.Monitor(ctx, job.JobID, remoteTaskID)
	}()
}

// buildEffectRegions merges the job's explicit regions with a
// full-frame erasure mask for each time segment.
func buildEffectRegions(job *models.EditJob) []models.EffectRegion {
	regions := make([]models.EffectRegion, 0, len(job.Regions)+len(job.Segments))
	regions = append(regions, job.Regions...)
	for _, seg := range job.Segments {
		regions = append(regions, models.EffectRegion{
			Type:      models.EffectErase,
			Rect:      models.Rect{X1: 0, Y1: 0, X2: 1, Y2: 1},
			StartTime: seg.StartTime,
			EndTime:   seg.EndTime,
		})
	}
	return regions
}

func (w *Worker) markFailed(ctx context.Context, job *models.EditJob, reason string) {
	now := time.Now()
	job.Status = models.JobStatusFailed
	job.ErrorMessage = &reason
	job.ProgressMessage = "submission failed"
	job.CompletedAt = &now
	if err := w.jobsRepo.UpdateJobStatus(ctx, job); err != nil {
		w.logger.Errorf("job %s: failed to mark job failed: %v", job.JobID, err)
	}
}
