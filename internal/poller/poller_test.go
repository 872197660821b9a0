package poller

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/tusharverma21/cloud-video-eraser/internal/config"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"
	"github.com/tusharverma21/cloud-video-eraser/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type statusReport struct {
	status *models.RemoteStatus
	err    error
}

type fakeChecker struct {
	mu      sync.Mutex
	reports []statusReport
	calls   int
}

func (f *fakeChecker) CheckStatus(_ context.Context, _ int64) (*models.RemoteStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := f.calls
	if idx >= len(f.reports) {
		idx = len(f.reports) - 1
	}
	f.calls++
	r := f.reports[idx]
	return r.status, r.err
}

type fakeJobStore struct {
	mu        sync.Mutex
	job       *models.EditJob
	getErr    error
	updateErr error
	updates   []models.EditJob
}

func (f *fakeJobStore) GetJobByID(_ context.Context, _ uuid.UUID) (*models.EditJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	cp := *f.job
	return &cp, nil
}

func (f *fakeJobStore) UpdateJobStatus(_ context.Context, job *models.EditJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, *job)
	return nil
}

type fakeProgressCache struct {
	mu      sync.Mutex
	entries []int
}

func (f *fakeProgressCache) SetProgress(_ context.Context, _ string, _ string, _ models.JobStatus, progress int, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, progress)
	return nil
}

func newTestPoller(t *testing.T, checker *fakeChecker, jobs *fakeJobStore, cache *fakeProgressCache) *Poller {
	t.Helper()
	cfg := &config.Config{
		Redis:  config.RedisConfig{ProgressKey: "job:progress:"},
		S3:     config.S3Config{OutputBucket: "video-results"},
		Logger: config.Logger{Development: true, Encoding: "console", Level: "error"},
	}
	apiLogger := logger.NewApiLogger(cfg)
	apiLogger.InitLogger()

	var progressCache ProgressCache
	if cache != nil {
		progressCache = cache
	}
	p := NewPoller(cfg, checker, jobs, progressCache, nil, apiLogger)
	p.interval = 2 * time.Millisecond
	return p
}

func pendingJob() *models.EditJob {
	return &models.EditJob{
		JobID:  uuid.New(),
		UserID: uuid.New(),
		Status: models.JobStatusProcessing,
	}
}

func TestMonitor_CompletesJob(t *testing.T) {
	t.Parallel()

	checker := &fakeChecker{reports: []statusReport{
		{status: &models.RemoteStatus{Status: models.RemoteStatusCompleted, Progress: 100, OutputURL: "https://cdn.example.com/out.mp4"}},
	}}
	jobs := &fakeJobStore{job: pendingJob()}
	cache := &fakeProgressCache{}

	p := newTestPoller(t, checker, jobs, cache)
	p.Monitor(context.Background(), jobs.job.JobID, 42)

	require.Equal(t, 1, checker.calls)
	require.Len(t, jobs.updates, 1)

	final := jobs.updates[0]
	require.Equal(t, models.JobStatusCompleted, final.Status)
	require.Equal(t, 100, final.Progress)
	require.NotNil(t, final.CompletedAt)
	require.NotNil(t, final.OutputURL)
	require.Equal(t, "https://cdn.example.com/out.mp4", *final.OutputURL)
	require.Equal(t, []int{100}, cache.entries)
}

func TestMonitor_ProgressFallbackAndCeiling(t *testing.T) {
	t.Parallel()

	checker := &fakeChecker{reports: []statusReport{
		{status: &models.RemoteStatus{Status: models.RemoteStatusPending, Progress: 0}},
		{status: &models.RemoteStatus{Status: models.RemoteStatusProcessing, Progress: 95}},
		{status: &models.RemoteStatus{Status: models.RemoteStatusCompleted, Progress: 100}},
	}}
	jobs := &fakeJobStore{job: pendingJob()}

	p := newTestPoller(t, checker, jobs, &fakeProgressCache{})
	p.Monitor(context.Background(), jobs.job.JobID, 42)

	require.Len(t, jobs.updates, 3)
	require.Equal(t, 50, jobs.updates[0].Progress)
	require.Equal(t, models.JobStatusProcessing, jobs.updates[0].Status)
	require.Equal(t, 90, jobs.updates[1].Progress)
	require.Equal(t, 100, jobs.updates[2].Progress)
}

func TestMonitor_FailureUsesRemoteMessage(t *testing.T) {
	t.Parallel()

	checker := &fakeChecker{reports: []statusReport{
		{status: &models.RemoteStatus{Status: models.RemoteStatusFailed, Error: "face detection failed"}},
	}}
	jobs := &fakeJobStore{job: pendingJob()}

	p := newTestPoller(t, checker, jobs, nil)
	p.Monitor(context.Background(), jobs.job.JobID, 42)

	require.Len(t, jobs.updates, 1)
	final := jobs.updates[0]
	require.Equal(t, models.JobStatusFailed, final.Status)
	require.NotNil(t, final.ErrorMessage)
	require.Equal(t, "face detection failed", *final.ErrorMessage)
	require.NotNil(t, final.CompletedAt)
}

func TestMonitor_FailureDefaultMessage(t *testing.T) {
	t.Parallel()

	checker := &fakeChecker{reports: []statusReport{
		{status: &models.RemoteStatus{Status: models.RemoteStatusError}},
	}}
	jobs := &fakeJobStore{job: pendingJob()}

	p := newTestPoller(t, checker, jobs, nil)
	p.Monitor(context.Background(), jobs.job.JobID, 42)

	require.Len(t, jobs.updates, 1)
	require.NotNil(t, jobs.updates[0].ErrorMessage)
	require.Equal(t, defaultFailureMessage, *jobs.updates[0].ErrorMessage)
}

func TestMonitor_CheckerErrorLeavesJobUntouched(t *testing.T) {
	t.Parallel()

	checker := &fakeChecker{reports: []statusReport{
		{err: fmt.Errorf("gateway timeout")},
	}}
	jobs := &fakeJobStore{job: pendingJob()}

	p := newTestPoller(t, checker, jobs, nil)
	p.Monitor(context.Background(), jobs.job.JobID, 42)

	require.Equal(t, 1, checker.calls)
	require.Empty(t, jobs.updates)
}

func TestMonitor_DeletedJobStopsQuietly(t *testing.T) {
	t.Parallel()

	checker := &fakeChecker{reports: []statusReport{
		{status: &models.RemoteStatus{Status: models.RemoteStatusProcessing, Progress: 20}},
	}}
	jobs := &fakeJobStore{
		job:    pendingJob(),
		getErr: fmt.Errorf("get job: %w", sql.ErrNoRows),
	}

	p := newTestPoller(t, checker, jobs, nil)
	p.Monitor(context.Background(), uuid.New(), 42)

	require.Empty(t, jobs.updates)
}

func TestMonitor_UpdateErrorStopsPolling(t *testing.T) {
	t.Parallel()

	checker := &fakeChecker{reports: []statusReport{
		{status: &models.RemoteStatus{Status: models.RemoteStatusProcessing, Progress: 20}},
	}}
	jobs := &fakeJobStore{
		job:       pendingJob(),
		updateErr: fmt.Errorf("connection reset"),
	}

	p := newTestPoller(t, checker, jobs, nil)
	p.Monitor(context.Background(), jobs.job.JobID, 42)

	require.Equal(t, 1, checker.calls)
	require.Empty(t, jobs.updates)
}

func TestMonitor_ContextCancel(t *testing.T) {
	t.Parallel()

	checker := &fakeChecker{reports: []statusReport{
		{status: &models.RemoteStatus{Status: models.RemoteStatusProcessing, Progress: 20}},
	}}
	jobs := &fakeJobStore{job: pendingJob()}

	p := newTestPoller(t, checker, jobs, nil)
	p.interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		p.Monitor(ctx, jobs.job.JobID, 42)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Monitor did not return after context cancellation")
	}
	require.Zero(t, checker.calls)
	require.Empty(t, jobs.updates)
}
